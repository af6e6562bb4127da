package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/thorny/internal/metrics"
	"github.com/san-kum/thorny/internal/sim"
)

// Summary is what survives of one run in a batch: its inputs and final
// metric values, not the per-frame records.
type Summary struct {
	Seed        int64
	Bodies      int
	Frames      int
	FinalActive int
	Metrics     map[string]float64
}

// Ensemble runs the same system for consecutive seeds.
type Ensemble struct {
	bodies    int
	frames    int
	numRuns   int
	seedStart int64
}

func NewEnsemble(bodies, frames, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{bodies: bodies, frames: frames, numRuns: numRuns, seedStart: seedStart}
}

// Run executes every seed concurrently. Summaries are in seed order.
func (e *Ensemble) Run(ctx context.Context) ([]Summary, error) {
	if e.numRuns < 1 {
		return nil, fmt.Errorf("ensemble needs at least one run, got %d", e.numRuns)
	}

	results := make([]Summary, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = RunOne(ctx, e.bodies, e.seedStart+int64(idx), e.frames)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// RunOne runs a fresh simulation with the default metrics attached.
func RunOne(ctx context.Context, bodies int, seed int64, frames int) (Summary, error) {
	s, err := sim.New(bodies, seed)
	if err != nil {
		return Summary{}, err
	}
	for _, m := range metrics.Default() {
		s.AddMetric(m)
	}
	result, err := s.Run(ctx, frames)
	if err != nil {
		return Summary{}, fmt.Errorf("seed %d, %d bodies: %w", seed, bodies, err)
	}
	return Summary{
		Seed:        seed,
		Bodies:      bodies,
		Frames:      result.StepsTaken,
		FinalActive: s.ActiveIndex(),
		Metrics:     result.Metrics,
	}, nil
}

// Mean averages one metric over summaries.
func Mean(summaries []Summary, metric string) float64 {
	if len(summaries) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range summaries {
		sum += s.Metrics[metric]
	}
	return sum / float64(len(summaries))
}
