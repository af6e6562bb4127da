package experiment

import (
	"context"
	"fmt"
	"math"
)

// Grid sweeps every combination of body count and seed.
type Grid struct {
	Bodies []int
	Seeds  []int64
	Frames int
}

// Search runs the grid and returns every summary plus the one with the
// highest (maximize) or lowest value of metric. Cancellation stops the
// sweep with ctx's error.
func (g *Grid) Search(ctx context.Context, metric string, maximize bool) ([]Summary, Summary, error) {
	if len(g.Bodies) == 0 || len(g.Seeds) == 0 {
		return nil, Summary{}, fmt.Errorf("grid needs at least one body count and one seed")
	}

	all := make([]Summary, 0, len(g.Bodies)*len(g.Seeds))
	var best Summary
	bestVal := math.Inf(1)
	if maximize {
		bestVal = math.Inf(-1)
	}

	for _, n := range g.Bodies {
		e := &Ensemble{bodies: n, frames: g.Frames, numRuns: 1}
		for _, seed := range g.Seeds {
			e.seedStart = seed
			out, err := e.Run(ctx)
			if err != nil {
				return nil, Summary{}, err
			}
			s := out[0]
			all = append(all, s)

			val, ok := s.Metrics[metric]
			if !ok {
				return nil, Summary{}, fmt.Errorf("unknown metric: %s", metric)
			}
			if (maximize && val > bestVal) || (!maximize && val < bestVal) {
				bestVal, best = val, s
			}
		}
	}
	return all, best, nil
}
