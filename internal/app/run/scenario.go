package run

import (
	"fmt"
	"math/rand"

	"gridcourier/internal/domain/obstacle"
	"gridcourier/internal/domain/world"
)

const MaxRandomObstacles = 16

// RandomObstacleShape alternates between the two reference shapes:
// path 5 at speed 2 from tick 2, and path 4 at speed 3 from tick 5.
func RandomObstacleShape(i int) (pathLength, speed int, startTime world.Tick) {
	return 5 - i%2, 2 + i%2, world.Tick(2 + 3*(i%2))
}

// buildScenario populates a scheduler on w with the request's obstacles. The
// rng is consumed only by random placement so that equal seeds give equal
// scenarios for every algorithm.
func buildScenario(w *world.World, req Request, rng *rand.Rand) (*obstacle.Scheduler, int, error) {
	sched := obstacle.NewScheduler(w, obstacle.WithRand(rng))
	for i, m := range req.Moving {
		if _, err := sched.AddMovingObstacle(m.Start, m.Path, m.Speed, m.StartTime); err != nil {
			return nil, 0, fmt.Errorf("%w: moving obstacle %d: %v", ErrInvalidRequest, i, err)
		}
	}
	for _, s := range req.Scheduled {
		sched.AddScheduledObstacle(map[world.Tick]world.Cell{s.Tick: s.Cell})
	}
	skipped := 0
	for i := 0; i < req.RandomObstacles; i++ {
		pathLength, speed, startTime := RandomObstacleShape(i)
		if !sched.AddRandomMovingObstacle(pathLength, speed, startTime) {
			skipped++
		}
	}
	return sched, skipped, nil
}
