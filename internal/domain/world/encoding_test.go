package world

import (
	"errors"
	"testing"
)

func TestLoadParsesTokens(t *testing.T) {
	text := "S,1,3\n2,X,D\n1,1,G\n"
	w, err := Load(text)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Width() != 3 || w.Height() != 3 {
		t.Fatalf("expected 3x3, got %dx%d", w.Width(), w.Height())
	}
	if w.Start() != (Cell{X: 0, Y: 0}) || w.Goal() != (Cell{X: 2, Y: 2}) {
		t.Fatalf("unexpected endpoints %s %s", w.Start(), w.Goal())
	}
	if !w.IsStatic(Cell{X: 1, Y: 1}) {
		t.Fatalf("expected static obstacle at (1,1)")
	}
	if w.Cost(Cell{X: 2, Y: 0}) != 3 || w.Cost(Cell{X: 0, Y: 1}) != 2 {
		t.Fatalf("expected terrain costs 3 and 2")
	}
	if w.Cost(Cell{X: 2, Y: 1}) != 1 {
		t.Fatalf("expected marker token to cost 1")
	}
}

func TestLoadTrimsAndSkipsBlankLines(t *testing.T) {
	text := "\n  S , 2 ,1 \r\n\n1, X ,G\n\n"
	w, err := Load(text)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Height() != 2 || w.Width() != 3 {
		t.Fatalf("expected 3x2, got %dx%d", w.Width(), w.Height())
	}
	if w.Cost(Cell{X: 1, Y: 0}) != 2 || !w.IsStatic(Cell{X: 1, Y: 1}) {
		t.Fatalf("expected trimmed tokens to parse")
	}
	if w.Goal() != (Cell{X: 2, Y: 1}) {
		t.Fatalf("expected goal at (2,1), got %s", w.Goal())
	}
}

func TestLoadIgnoresCellsPastFirstRowWidth(t *testing.T) {
	w, err := Load("S,1\n1,1,X,X\n1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Width() != 2 || w.Height() != 3 {
		t.Fatalf("expected 2x3, got %dx%d", w.Width(), w.Height())
	}
	if len(w.StaticObstacles()) != 0 {
		t.Fatalf("expected overflow cells ignored, got %v", w.StaticObstacles())
	}
	if w.Goal() != (Cell{X: 1, Y: 2}) {
		t.Fatalf("expected default goal at (1,2), got %s", w.Goal())
	}
}

func TestLoadClampsZeroCost(t *testing.T) {
	w, err := Load("S,0\n1,G")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := w.Cost(Cell{X: 1, Y: 0}); got != 1 {
		t.Fatalf("expected zero cost clamped to 1, got %d", got)
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	for _, text := range []string{"", "\n\n", "   \n\t\n"} {
		_, err := Load(text)
		if !errors.Is(err, ErrLoad) {
			t.Fatalf("expected ErrLoad for %q, got %v", text, err)
		}
		var loadErr *LoadError
		if !errors.As(err, &loadErr) || loadErr.Reason != ReasonEmpty {
			t.Fatalf("expected empty reason, got %v", err)
		}
	}
}

func TestLoadRejectsObstacleOnDefaultEndpoint(t *testing.T) {
	_, err := Load("1,1\n1,X")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Reason != ReasonBlockedEndpoint {
		t.Fatalf("expected blocked endpoint, got %v", err)
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	w, err := LoadOrDefault("")
	if err == nil {
		t.Fatalf("expected the load error to be reported")
	}
	if w == nil || w.Width() != 5 || w.Height() != 5 {
		t.Fatalf("expected default 5x5 world, got %+v", w)
	}
	if w.Goal() != (Cell{X: 4, Y: 4}) {
		t.Fatalf("expected default goal (4,4), got %s", w.Goal())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	w := New(4, 3)
	w.SetStart(Cell{X: 1, Y: 0})
	w.SetGoal(Cell{X: 3, Y: 1})
	w.AddStaticObstacle(2, 2)
	w.AddStaticObstacle(0, 1)
	w.SetCost(3, 0, 7)
	w.SetCost(1, 2, 12)
	w.AddDynamic(Cell{X: 2, Y: 0}, 3)

	text := w.Encode()
	if text != "1,S,1,7\nX,1,1,G\n1,12,X,1\n" {
		t.Fatalf("unexpected encoding %q", text)
	}

	back, err := Load(text)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Start() != w.Start() || back.Goal() != w.Goal() {
		t.Fatalf("endpoints changed: %s %s", back.Start(), back.Goal())
	}
	statics := back.StaticObstacles()
	if len(statics) != 2 || statics[0] != (Cell{X: 0, Y: 1}) || statics[1] != (Cell{X: 2, Y: 2}) {
		t.Fatalf("statics changed: %v", statics)
	}
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			c := Cell{X: x, Y: y}
			if back.Cost(c) != w.Cost(c) {
				t.Fatalf("cost at %s: expected %d, got %d", c, w.Cost(c), back.Cost(c))
			}
		}
	}
	if len(back.DynamicTicks()) != 0 {
		t.Fatalf("expected dynamic layer not persisted")
	}
}

func TestRoundTripKeepsEndpointCosts(t *testing.T) {
	cases := []string{
		"5,1\n1,G\n",
		"S,3\n2,9\n",
		"1,S,1\n4,1,1\n",
	}
	for _, text := range cases {
		w, err := Load(text)
		if err != nil {
			t.Fatalf("load %q: %v", text, err)
		}
		if got := w.Cost(w.Start()); got != MinCost {
			t.Fatalf("%q: expected start cost %d, got %d", text, MinCost, got)
		}
		if got := w.Cost(w.Goal()); got != MinCost {
			t.Fatalf("%q: expected goal cost %d, got %d", text, MinCost, got)
		}
		back, err := Load(w.Encode())
		if err != nil {
			t.Fatalf("reload %q: %v", text, err)
		}
		for y := 0; y < w.Height(); y++ {
			for x := 0; x < w.Width(); x++ {
				c := Cell{X: x, Y: y}
				if back.Cost(c) != w.Cost(c) {
					t.Fatalf("%q: cost at %s: expected %d, got %d", text, c, w.Cost(c), back.Cost(c))
				}
			}
		}
	}
}

func TestLoadKeepsCostOfDisplacedDefaultStart(t *testing.T) {
	w, err := Load("5,1\nS,G\n")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := w.Cost(Cell{X: 0, Y: 0}); got != 5 {
		t.Fatalf("expected cost 5 at origin, got %d", got)
	}
}
