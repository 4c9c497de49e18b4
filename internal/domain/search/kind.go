package search

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	BreadthFirst Kind = iota
	UniformCost
	AStar
	HillClimb
)

var ErrUnknownKind = errors.New("unknown search algorithm")

var kindNames = map[Kind]string{
	BreadthFirst: "bfs",
	UniformCost:  "ucs",
	AStar:        "astar",
	HillClimb:    "hillclimb",
}

var kindAliases = map[string]Kind{
	"bfs":           BreadthFirst,
	"breadth-first": BreadthFirst,
	"ucs":           UniformCost,
	"uniform-cost":  UniformCost,
	"astar":         AStar,
	"a-star":        AStar,
	"hillclimb":     HillClimb,
	"hill-climbing": HillClimb,
}

func Kinds() []Kind {
	return []Kind{BreadthFirst, UniformCost, AStar, HillClimb}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(name string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
