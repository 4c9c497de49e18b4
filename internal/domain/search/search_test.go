package search

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridcourier/internal/domain/world"
)

var optimalKinds = []Kind{BreadthFirst, UniformCost, AStar}

func separatedWorld() *world.World {
	w := world.New(5, 5)
	for y := 0; y < 5; y++ {
		w.AddStaticObstacle(2, y)
	}
	return w
}

func assertWalk(t *testing.T, w *world.World, path []world.Cell, start, goal world.Cell) {
	t.Helper()
	if len(path) == 0 || path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("expected path from %s to %s, got %v", start, goal, path)
	}
	for i := 1; i < len(path); i++ {
		if world.Manhattan(path[i-1], path[i]) != 1 {
			t.Fatalf("path jumps between %s and %s: %v", path[i-1], path[i], path)
		}
		if w.IsStatic(path[i]) {
			t.Fatalf("path crosses static obstacle %s", path[i])
		}
	}
}

func TestOpenWorldPathLength(t *testing.T) {
	cases := []struct {
		w, h        int
		start, goal world.Cell
	}{
		{w: 5, h: 5, start: world.Cell{X: 0, Y: 0}, goal: world.Cell{X: 4, Y: 4}},
		{w: 7, h: 3, start: world.Cell{X: 6, Y: 0}, goal: world.Cell{X: 1, Y: 2}},
		{w: 4, h: 6, start: world.Cell{X: 2, Y: 5}, goal: world.Cell{X: 2, Y: 0}},
	}
	for _, tc := range cases {
		w := world.New(tc.w, tc.h)
		want := world.Manhattan(tc.start, tc.goal) + 1
		for _, kind := range optimalKinds {
			res := Search(w, tc.start, tc.goal, kind, 0)
			if !res.Success {
				t.Fatalf("%s: expected success", kind)
			}
			if len(res.Path) != want {
				t.Fatalf("%s: expected %d cells, got %d (%v)", kind, want, len(res.Path), res.Path)
			}
			if res.TotalCost != want {
				t.Fatalf("%s: expected cost %d, got %d", kind, want, res.TotalCost)
			}
			if res.NodesExpanded <= 0 {
				t.Fatalf("%s: expected expanded nodes, got %d", kind, res.NodesExpanded)
			}
			if res.Kind != kind {
				t.Fatalf("expected kind %s recorded, got %s", kind, res.Kind)
			}
			assertWalk(t, w, res.Path, tc.start, tc.goal)
		}
	}
}

func TestUniformCostAndAStarAgreeOnCost(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 25; round++ {
		w := world.New(8, 8)
		for i := 0; i < 12; i++ {
			w.AddStaticObstacle(rng.Intn(8), rng.Intn(8))
		}
		for i := 0; i < 20; i++ {
			w.SetCost(rng.Intn(8), rng.Intn(8), 1+rng.Intn(9))
		}
		ucs := Search(w, w.Start(), w.Goal(), UniformCost, 0)
		astar := Search(w, w.Start(), w.Goal(), AStar, 0)
		if ucs.Success != astar.Success {
			t.Fatalf("round %d: success differs ucs=%v astar=%v", round, ucs.Success, astar.Success)
		}
		if !ucs.Success {
			continue
		}
		if ucs.TotalCost != astar.TotalCost {
			t.Fatalf("round %d: ucs cost %d, astar cost %d", round, ucs.TotalCost, astar.TotalCost)
		}
		if PathCost(w, astar.Path) != astar.TotalCost {
			t.Fatalf("round %d: reported cost does not match path", round)
		}
		if astar.NodesExpanded > ucs.NodesExpanded {
			t.Fatalf("round %d: astar expanded %d > ucs %d", round, astar.NodesExpanded, ucs.NodesExpanded)
		}
	}
}

func TestUniformCostPrefersCheaperDetour(t *testing.T) {
	w := world.New(3, 3)
	w.SetCost(1, 0, 9)
	w.SetCost(1, 1, 9)
	bfs := Search(w, world.Cell{X: 0, Y: 0}, world.Cell{X: 2, Y: 0}, BreadthFirst, 0)
	ucs := Search(w, world.Cell{X: 0, Y: 0}, world.Cell{X: 2, Y: 0}, UniformCost, 0)
	if len(bfs.Path) != 3 || bfs.TotalCost != 11 {
		t.Fatalf("expected bfs straight path cost 11, got %v cost %d", bfs.Path, bfs.TotalCost)
	}
	if ucs.TotalCost != 7 {
		t.Fatalf("expected ucs detour cost 7, got %d via %v", ucs.TotalCost, ucs.Path)
	}
}

func TestUniformCostTieBreakIsDeterministic(t *testing.T) {
	w := world.New(3, 3)
	want := []world.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	for _, kind := range []Kind{UniformCost, AStar} {
		res := Search(w, w.Start(), w.Goal(), kind, 0)
		if diff := cmp.Diff(want, res.Path); diff != "" {
			t.Fatalf("%s path mismatch (-want +got):\n%s", kind, diff)
		}
	}
}

func TestSeparatedWorldFailsEverywhere(t *testing.T) {
	w := separatedWorld()
	for _, kind := range Kinds() {
		res := Search(w, w.Start(), w.Goal(), kind, 0)
		if res.Success {
			t.Fatalf("%s: expected failure", kind)
		}
		if res.NodesExpanded <= 0 {
			t.Fatalf("%s: expected the reachable region explored", kind)
		}
		if len(res.Path) != 0 || res.TotalCost != 0 {
			t.Fatalf("%s: expected empty failed result, got %+v", kind, res)
		}
	}
}

func TestStartEqualsGoal(t *testing.T) {
	w := world.New(3, 3)
	w.SetCost(1, 1, 4)
	c := world.Cell{X: 1, Y: 1}
	for _, kind := range Kinds() {
		res := Search(w, c, c, kind, 0)
		if !res.Success || len(res.Path) != 1 || res.Path[0] != c {
			t.Fatalf("%s: expected trivial path, got %+v", kind, res)
		}
		if res.TotalCost != 4 || res.NodesExpanded != 0 {
			t.Fatalf("%s: expected cost 4 and no expansion, got %+v", kind, res)
		}
	}
}

func TestOutOfBoundsEndpointsFail(t *testing.T) {
	w := world.New(3, 3)
	res := Search(w, world.Cell{X: -1, Y: 0}, w.Goal(), AStar, 0)
	if res.Success {
		t.Fatalf("expected failure for off-grid start")
	}
	res = Search(w, w.Start(), world.Cell{X: 3, Y: 3}, BreadthFirst, 0)
	if res.Success {
		t.Fatalf("expected failure for off-grid goal")
	}
}

func TestSearchUsesPlanningTick(t *testing.T) {
	w := world.New(3, 1)
	w.AddDynamic(world.Cell{X: 1, Y: 0}, 4)
	if res := Search(w, w.Start(), w.Goal(), AStar, 4); res.Success {
		t.Fatalf("expected corridor blocked at tick 4")
	}
	if res := Search(w, w.Start(), w.Goal(), AStar, 3); !res.Success {
		t.Fatalf("expected corridor open at tick 3")
	}
}

func TestHillClimbOpenWorld(t *testing.T) {
	w := world.New(5, 5)
	res := Search(w, w.Start(), w.Goal(), HillClimb, 0)
	if !res.Success || res.Restarts != 0 {
		t.Fatalf("expected greedy success without restarts, got %+v", res)
	}
	if len(res.Path) != 9 {
		t.Fatalf("expected 9 cells, got %v", res.Path)
	}
	assertWalk(t, w, res.Path, w.Start(), w.Goal())
}

func trapWorld() *world.World {
	w := world.New(5, 3)
	w.SetStart(world.Cell{X: 0, Y: 1})
	w.SetGoal(world.Cell{X: 4, Y: 1})
	w.AddStaticObstacle(2, 1)
	w.AddStaticObstacle(2, 2)
	return w
}

func TestHillClimbRestartsOutOfLocalOptimum(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		w := trapWorld()
		res := Search(w, w.Start(), w.Goal(), HillClimb, 0,
			WithRand(rand.New(rand.NewSource(seed))), WithMaxRestarts(20))
		if !res.Success {
			t.Fatalf("seed %d: expected success with a generous restart budget, got %+v", seed, res)
		}
		if res.Restarts < 1 {
			t.Fatalf("seed %d: expected at least one restart", seed)
		}
		assertWalk(t, w, res.Path, w.Start(), w.Goal())
		if PathCost(w, res.Path) != res.TotalCost {
			t.Fatalf("seed %d: cost mismatch", seed)
		}
	}
}

func TestHillClimbWithoutRestartsFailsInTrap(t *testing.T) {
	w := trapWorld()
	res := Search(w, w.Start(), w.Goal(), HillClimb, 0, WithMaxRestarts(0))
	if res.Success || res.Restarts != 0 {
		t.Fatalf("expected failure at the local optimum, got %+v", res)
	}
	if res.NodesExpanded != 2 {
		t.Fatalf("expected 2 expansions before giving up, got %d", res.NodesExpanded)
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"bfs": BreadthFirst, "breadth-first": BreadthFirst,
		"ucs": UniformCost, "uniform-cost": UniformCost,
		"astar": AStar, "A-Star": AStar,
		"hillclimb": HillClimb, " hill-climbing ": HillClimb,
	}
	for name, want := range cases {
		got, err := ParseKind(name)
		if err != nil || got != want {
			t.Fatalf("%q: expected %s, got %s (%v)", name, want, got, err)
		}
	}
	if _, err := ParseKind("dijkstra"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	for _, k := range Kinds() {
		back, err := ParseKind(k.String())
		if err != nil || back != k {
			t.Fatalf("expected %s to parse back, got %v", k, err)
		}
	}
}
