package world

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	TokenStart    = "S"
	TokenGoal     = "G"
	TokenObstacle = "X"
)

type LoadReason string

const (
	ReasonEmpty           LoadReason = "empty"
	ReasonBlockedEndpoint LoadReason = "blocked_endpoint"
)

var ErrLoad = errors.New("map load failed")

type LoadError struct {
	Reason LoadReason
	Line   int
}

func (e *LoadError) Error() string {
	if e == nil {
		return ErrLoad.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s at line %d", ErrLoad.Error(), e.Reason, e.Line)
	}
	return fmt.Sprintf("%s: %s", ErrLoad.Error(), e.Reason)
}

func (e *LoadError) Unwrap() error {
	return ErrLoad
}

// Load parses the row-major grid encoding. Row i is y = i; cells past the
// first row's width are ignored and short rows keep default costs. The
// start and goal always cost MinCost.
func Load(text string) (*World, error) {
	rows := make([][]string, 0)
	lines := make([]int, 0)
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
		lines = append(lines, i+1)
	}
	if len(rows) == 0 {
		return nil, &LoadError{Reason: ReasonEmpty}
	}

	width := len(rows[0])
	w := New(width, len(rows))
	startLine, goalLine := 0, 0
	for y, cells := range rows {
		for x, token := range cells {
			if x >= width {
				break
			}
			c := Cell{X: x, Y: y}
			switch token = strings.TrimSpace(token); {
			case token == TokenStart:
				w.start = c
				startLine = lines[y]
			case token == TokenGoal:
				w.goal = c
				goalLine = lines[y]
			case token == TokenObstacle:
				w.static.Put(c)
			case isDigits(token):
				n, err := strconv.Atoi(token)
				if err != nil {
					n = MinCost
				}
				w.setCost(c, n)
			}
		}
	}

	if w.static.Has(w.start) {
		return nil, &LoadError{Reason: ReasonBlockedEndpoint, Line: startLine}
	}
	if w.static.Has(w.goal) {
		return nil, &LoadError{Reason: ReasonBlockedEndpoint, Line: goalLine}
	}
	w.setCost(w.start, MinCost)
	w.setCost(w.goal, MinCost)
	return w, nil
}

// LoadOrDefault falls back to the default 5x5 world on a load failure and
// still returns the error so callers can report the fallback.
func LoadOrDefault(text string) (*World, error) {
	w, err := Load(text)
	if err != nil {
		return Default(), err
	}
	return w, nil
}

func (w *World) Encode() string {
	var b strings.Builder
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			if x > 0 {
				b.WriteByte(',')
			}
			c := Cell{X: x, Y: y}
			switch {
			case c == w.start:
				b.WriteString(TokenStart)
			case c == w.goal:
				b.WriteString(TokenGoal)
			case w.static.Has(c):
				b.WriteString(TokenObstacle)
			default:
				b.WriteString(strconv.Itoa(w.Cost(c)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
