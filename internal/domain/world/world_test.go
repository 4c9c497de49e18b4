package world

import "testing"

func TestNewWorldDefaults(t *testing.T) {
	w := New(4, 3)
	if w.Start() != (Cell{X: 0, Y: 0}) {
		t.Fatalf("expected start at origin, got %s", w.Start())
	}
	if w.Goal() != (Cell{X: 3, Y: 2}) {
		t.Fatalf("expected goal at far corner, got %s", w.Goal())
	}
	if got := w.Cost(Cell{X: 2, Y: 1}); got != 1 {
		t.Fatalf("expected default cost 1, got %d", got)
	}
}

func TestSetCostClampsAndIgnoresOutOfRange(t *testing.T) {
	w := New(3, 3)
	w.SetCost(1, 1, 0)
	if got := w.Cost(Cell{X: 1, Y: 1}); got != 1 {
		t.Fatalf("expected cost clamped to 1, got %d", got)
	}
	w.SetCost(1, 1, -7)
	if got := w.Cost(Cell{X: 1, Y: 1}); got != 1 {
		t.Fatalf("expected negative cost clamped to 1, got %d", got)
	}
	w.SetCost(2, 0, 6)
	if got := w.Cost(Cell{X: 2, Y: 0}); got != 6 {
		t.Fatalf("expected cost 6, got %d", got)
	}
	w.SetCost(9, 9, 4)
	if got := w.Cost(Cell{X: 9, Y: 9}); got != 0 {
		t.Fatalf("expected off-grid cost 0, got %d", got)
	}
}

func TestEndpointsAlwaysCostMin(t *testing.T) {
	w := New(3, 3)
	w.SetCost(0, 0, 4)
	w.SetCost(2, 2, 5)
	if got := w.Cost(w.Start()); got != MinCost {
		t.Fatalf("expected start cost %d, got %d", MinCost, got)
	}
	if got := w.Cost(w.Goal()); got != MinCost {
		t.Fatalf("expected goal cost %d, got %d", MinCost, got)
	}

	w.SetCost(1, 1, 7)
	if !w.SetStart(Cell{X: 1, Y: 1}) {
		t.Fatalf("expected start move to succeed")
	}
	if got := w.Cost(Cell{X: 1, Y: 1}); got != MinCost {
		t.Fatalf("expected new start to cost %d, got %d", MinCost, got)
	}
	w.SetCost(0, 0, 4)
	if got := w.Cost(Cell{X: 0, Y: 0}); got != 4 {
		t.Fatalf("expected old start to accept cost 4, got %d", got)
	}
}

func TestStaticObstacleRejectsEndpoints(t *testing.T) {
	w := New(3, 3)
	if w.AddStaticObstacle(0, 0) {
		t.Fatalf("expected start to be rejected")
	}
	if w.AddStaticObstacle(2, 2) {
		t.Fatalf("expected goal to be rejected")
	}
	if w.AddStaticObstacle(5, 0) {
		t.Fatalf("expected off-grid cell to be rejected")
	}
	if !w.AddStaticObstacle(1, 1) {
		t.Fatalf("expected interior cell to be accepted")
	}
	if !w.IsBlocked(1, 1, 0) || !w.IsBlocked(1, 1, 42) {
		t.Fatalf("expected static obstacle blocked at every tick")
	}
	if w.SetStart(Cell{X: 1, Y: 1}) {
		t.Fatalf("expected start on a static obstacle to be rejected")
	}
}

func TestDynamicObstacleIsTickScoped(t *testing.T) {
	w := New(3, 3)
	w.AddDynamic(Cell{X: 1, Y: 0}, 2, 4)
	if w.IsBlocked(1, 0, 1) {
		t.Fatalf("expected cell free at tick 1")
	}
	if !w.IsBlocked(1, 0, 2) || !w.IsBlocked(1, 0, 4) {
		t.Fatalf("expected cell blocked at ticks 2 and 4")
	}
	ticks := w.DynamicTicks()
	if len(ticks) != 2 || ticks[0] != 2 || ticks[1] != 4 {
		t.Fatalf("expected dynamic ticks [2 4], got %v", ticks)
	}
	w.ClearDynamicAt(2)
	if w.IsBlocked(1, 0, 2) {
		t.Fatalf("expected tick 2 cleared")
	}
	w.ClearDynamic()
	if len(w.DynamicTicks()) != 0 {
		t.Fatalf("expected empty dynamic layer, got %v", w.DynamicTicks())
	}
}

func TestOutOfRangeIsBlocked(t *testing.T) {
	w := New(2, 2)
	if !w.IsBlocked(-1, 0, 0) || !w.IsBlocked(0, 2, 0) {
		t.Fatalf("expected off-grid cells blocked")
	}
}

func TestNeighborsOrderAndCosts(t *testing.T) {
	w := New(3, 3)
	w.SetCost(1, 2, 4)
	got := w.Neighbors(1, 1, 0)
	want := []Neighbor{
		{Cell: Cell{X: 1, Y: 2}, Cost: 4},
		{Cell: Cell{X: 2, Y: 1}, Cost: 1},
		{Cell: Cell{X: 1, Y: 0}, Cost: 1},
		{Cell: Cell{X: 0, Y: 1}, Cost: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d neighbors, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbor %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestNeighborsSkipBlocked(t *testing.T) {
	w := New(3, 3)
	w.AddStaticObstacle(1, 2)
	w.AddDynamic(Cell{X: 2, Y: 1}, 3)
	got := w.Neighbors(1, 1, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 neighbors, got %v", got)
	}
	if got[0].Cell != (Cell{X: 1, Y: 0}) || got[1].Cell != (Cell{X: 0, Y: 1}) {
		t.Fatalf("unexpected neighbors %v", got)
	}
	if len(w.Neighbors(0, 0, 0)) != 2 {
		t.Fatalf("expected corner to have 2 neighbors")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := New(3, 3)
	w.AddStaticObstacle(1, 1)
	w.AddDynamic(Cell{X: 2, Y: 0}, 1)
	cp := w.Clone()
	cp.AddStaticObstacle(0, 1)
	cp.AddDynamic(Cell{X: 0, Y: 2}, 1)
	cp.SetCost(2, 1, 9)

	if w.IsBlocked(0, 1, 0) || w.IsBlocked(0, 2, 1) {
		t.Fatalf("expected clone mutations not to leak")
	}
	if w.Cost(Cell{X: 2, Y: 1}) != 1 {
		t.Fatalf("expected original cost unchanged")
	}
	if !cp.IsBlocked(1, 1, 0) || !cp.IsBlocked(2, 0, 1) {
		t.Fatalf("expected clone to carry original obstacles")
	}
}

func TestSnapshotTileKinds(t *testing.T) {
	w := New(3, 2)
	w.AddStaticObstacle(1, 0)
	w.AddDynamic(Cell{X: 1, Y: 1}, 5)
	w.SetCost(2, 0, 3)
	snap := w.Snapshot(5)
	if len(snap.Tiles) != 6 {
		t.Fatalf("expected 6 tiles, got %d", len(snap.Tiles))
	}
	cases := map[Cell]TileKind{
		{X: 0, Y: 0}: TileStart,
		{X: 2, Y: 1}: TileGoal,
		{X: 1, Y: 0}: TileStatic,
		{X: 1, Y: 1}: TileDynamic,
		{X: 2, Y: 0}: TileTerrain,
	}
	for c, kind := range cases {
		tile, ok := snap.TileAt(c)
		if !ok || tile.Kind != kind {
			t.Fatalf("tile %s: expected %s, got %+v", c, kind, tile)
		}
	}
	if tile, _ := snap.TileAt(Cell{X: 2, Y: 0}); tile.Cost != 3 {
		t.Fatalf("expected terrain cost 3, got %d", tile.Cost)
	}
	if _, ok := snap.TileAt(Cell{X: 3, Y: 0}); ok {
		t.Fatalf("expected off-grid lookup to fail")
	}
}

func TestCellOrdering(t *testing.T) {
	cells := []Cell{{X: 2, Y: 1}, {X: 1, Y: 3}, {X: 1, Y: 0}}
	SortCells(cells)
	if cells[0] != (Cell{X: 1, Y: 0}) || cells[1] != (Cell{X: 1, Y: 3}) || cells[2] != (Cell{X: 2, Y: 1}) {
		t.Fatalf("unexpected order %v", cells)
	}
	if got := (Cell{X: 3, Y: 4}).String(); got != "(3,4)" {
		t.Fatalf("expected (3,4), got %s", got)
	}
}
