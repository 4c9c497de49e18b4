package maps

import (
	"context"
	"regexp"
	"strings"
	"time"

	"gridcourier/internal/app/ports"
	"gridcourier/internal/domain/world"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]{0,63}$`)

type UseCase struct {
	Maps ports.MapRepository
	Now  func() time.Time
}

// Save validates the encoding strictly and stores its canonical form.
func (u UseCase) Save(ctx context.Context, req SaveRequest) (SaveResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if !namePattern.MatchString(req.Name) || req.Name == InlineName {
		return SaveResponse{}, ErrInvalidRequest
	}
	w, err := world.Load(req.Encoding)
	if err != nil {
		return SaveResponse{}, asInvalidMap(err)
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rec := ports.MapRecord{
		Name:      req.Name,
		Encoding:  w.Encode(),
		Width:     w.Width(),
		Height:    w.Height(),
		CreatedAt: nowFn(),
	}
	if err := u.Maps.Save(ctx, rec); err != nil {
		return SaveResponse{}, err
	}
	return SaveResponse{Name: rec.Name, Width: rec.Width, Height: rec.Height}, nil
}

func (u UseCase) Get(ctx context.Context, name string) (GetResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GetResponse{}, ErrInvalidRequest
	}
	rec, err := u.Maps.GetByName(ctx, name)
	if err != nil {
		return GetResponse{}, err
	}
	w, err := world.Load(rec.Encoding)
	if err != nil {
		return GetResponse{}, asInvalidMap(err)
	}
	return GetResponse{Name: rec.Name, Encoding: rec.Encoding, Snapshot: w.Snapshot(0)}, nil
}

func (u UseCase) List(ctx context.Context) ([]ports.MapRecord, error) {
	return u.Maps.List(ctx)
}

// Resolve prefers an inline encoding over a stored map name.
func (u UseCase) Resolve(ctx context.Context, name, encoding string) (Resolved, error) {
	if strings.TrimSpace(encoding) != "" {
		w, err := world.Load(encoding)
		if err != nil {
			return Resolved{}, asInvalidMap(err)
		}
		return Resolved{Name: InlineName, Encoding: w.Encode(), World: w}, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Resolved{}, ErrInvalidRequest
	}
	rec, err := u.Maps.GetByName(ctx, name)
	if err != nil {
		return Resolved{}, err
	}
	w, err := world.Load(rec.Encoding)
	if err != nil {
		return Resolved{}, asInvalidMap(err)
	}
	return Resolved{Name: rec.Name, Encoding: rec.Encoding, World: w}, nil
}
