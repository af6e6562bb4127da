package metrics

import "github.com/san-kum/thorny/internal/sim"

// Tenure is the mean number of frames a body holds the token. The holding
// still in progress counts as a tenure.
type Tenure struct {
	name     string
	frames   int
	holdings int
}

func NewTenure() *Tenure {
	return &Tenure{name: "mean_tenure"}
}

func (t *Tenure) Name() string {
	return t.name
}

func (t *Tenure) Observe(r sim.Record) {
	if t.holdings == 0 || r.Transferred {
		t.holdings++
	}
	t.frames++
}

func (t *Tenure) Value() float64 {
	if t.holdings == 0 {
		return 0
	}
	return float64(t.frames) / float64(t.holdings)
}

func (t *Tenure) Reset() {
	t.frames = 0
	t.holdings = 0
}
