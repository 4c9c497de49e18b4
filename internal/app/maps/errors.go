package maps

import (
	"errors"
	"fmt"

	"gridcourier/internal/domain/world"
)

var (
	ErrInvalidRequest = errors.New("invalid map request")
	ErrInvalidMap     = errors.New("invalid map encoding")
)

type InvalidMapError struct {
	Reason world.LoadReason
	Line   int
}

func (e *InvalidMapError) Error() string {
	if e == nil {
		return ErrInvalidMap.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s at line %d", ErrInvalidMap.Error(), e.Reason, e.Line)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidMap.Error(), e.Reason)
}

func (e *InvalidMapError) Unwrap() error {
	return ErrInvalidMap
}

func asInvalidMap(err error) error {
	var loadErr *world.LoadError
	if errors.As(err, &loadErr) {
		return &InvalidMapError{Reason: loadErr.Reason, Line: loadErr.Line}
	}
	return err
}
