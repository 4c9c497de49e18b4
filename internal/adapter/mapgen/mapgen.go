// Package mapgen builds the bundled sample maps and random maps.
package mapgen

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"gridcourier/internal/domain/search"
	"gridcourier/internal/domain/world"
)

const (
	Small   = "small"
	Medium  = "medium"
	Large   = "large"
	Dynamic = "dynamic"

	Ext = ".map"
)

var ErrUnknownSample = errors.New("unknown sample map")

const smallMap = `S,1,1,2,1
1,X,1,X,1
1,1,3,1,1
2,X,1,X,1
1,1,1,1,G
`

// dynamicMap keeps rows 1 and 5 open for the demo's moving obstacles.
const dynamicMap = `S,1,1,1,1,1,1
1,1,1,1,1,1,1
1,X,2,X,2,X,1
1,1,1,1,1,1,1
1,X,2,X,2,X,1
1,1,1,1,1,1,1
1,1,1,1,1,1,G
`

var samples = map[string]func() *world.World{
	Small:   func() *world.World { return mustLoad(smallMap) },
	Medium:  func() *world.World { return walled(10, 10) },
	Large:   func() *world.World { return walled(20, 20) },
	Dynamic: func() *world.World { return mustLoad(dynamicMap) },
}

// Names lists the sample maps in a stable order.
func Names() []string {
	out := make([]string, 0, len(samples))
	for name := range samples {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func Sample(name string) (*world.World, error) {
	build, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSample, name)
	}
	return build(), nil
}

// walled lays a vertical wall on every fourth column with a single gap that
// alternates between the top and bottom rows, over a banded cost field.
func walled(width, height int) *world.World {
	w := world.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w.SetCost(x, y, (x*7+y*3)%4+1)
		}
	}
	for x, n := 3, 0; x < width-1; x, n = x+4, n+1 {
		gap := 0
		if n%2 == 0 {
			gap = height - 1
		}
		for y := 0; y < height; y++ {
			if y != gap {
				w.AddStaticObstacle(x, y)
			}
		}
	}
	return w
}

func mustLoad(text string) *world.World {
	w, err := world.Load(text)
	if err != nil {
		panic(err)
	}
	return w
}

// Random scatters width*height/6 obstacle attempts over an open world. Draws
// that land on the start or goal are dropped, so the count is an upper bound.
func Random(width, height int, rng *rand.Rand) *world.World {
	w := world.New(width, height)
	for i := 0; i < w.Width()*w.Height()/6; i++ {
		w.AddStaticObstacle(rng.Intn(w.Width()), rng.Intn(w.Height()))
	}
	return w
}

// Solvable reports whether the goal is reachable ignoring dynamic obstacles.
func Solvable(w *world.World) bool {
	return search.Search(w, w.Start(), w.Goal(), search.BreadthFirst, 0).Success
}

// WriteAll writes every sample map as <name>.map under dir and returns the
// written paths.
func WriteAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create map dir: %w", err)
	}
	written := make([]string, 0, len(samples))
	for _, name := range Names() {
		w, _ := Sample(name)
		path := filepath.Join(dir, name+Ext)
		if err := os.WriteFile(path, []byte(w.Encode()), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
