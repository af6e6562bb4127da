package sim

// Record is the outcome of one Step. Frame is the frame that step evaluated.
type Record struct {
	Frame       uint64 `json:"frame"`
	Active      int    `json:"active"`
	From        int    `json:"from"`
	Transferred bool   `json:"transferred"`
	Cleared     bool   `json:"cleared"`
	Overlaps    int    `json:"overlaps"`
	Cooldown    int    `json:"cooldown"`
}

type Metric interface {
	Name() string
	Observe(r Record)
	Value() float64
	Reset()
}

// Observer is notified after every Step with the simulation already in its
// post-step state.
type Observer interface {
	OnStep(s *Simulation, r Record)
}

type Result struct {
	Records    []Record
	Metrics    map[string]float64
	StepsTaken int
}

// ActiveSeries returns the holder of every recorded frame as floats, the
// shape plotting and spectrum code expects.
func (r *Result) ActiveSeries() []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = float64(rec.Active)
	}
	return out
}
