package sim

import (
	"context"
	"fmt"
)

// Run steps the simulation frames times and collects every Record plus the
// final metric values. Cancellation is checked between frames.
func (s *Simulation) Run(ctx context.Context, frames int) (*Result, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFrames, frames)
	}

	result := &Result{
		Records: make([]Record, 0, frames),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		result.Records = append(result.Records, s.Step())
		result.StepsTaken++
	}

	s.collect(result)
	return result, nil
}

// RunWithCallback steps until callback returns false or ctx is done.
func (s *Simulation) RunWithCallback(ctx context.Context, callback func(Record) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(s.Step()) {
			return nil
		}
	}
}

func (s *Simulation) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
