package metrics

import "github.com/san-kum/thorny/internal/sim"

// OverlapRatio is the fraction of frames on which the holder touched any
// other body.
type OverlapRatio struct {
	name     string
	touching int
	samples  int
}

func NewOverlapRatio() *OverlapRatio {
	return &OverlapRatio{name: "overlap_ratio"}
}

func (o *OverlapRatio) Name() string {
	return o.name
}

func (o *OverlapRatio) Observe(r sim.Record) {
	o.samples++
	if r.Overlaps > 0 {
		o.touching++
	}
}

func (o *OverlapRatio) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return float64(o.touching) / float64(o.samples)
}

func (o *OverlapRatio) Reset() {
	o.touching = 0
	o.samples = 0
}
