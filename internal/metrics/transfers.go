package metrics

import "github.com/san-kum/thorny/internal/sim"

type Transfers struct {
	name  string
	count int
}

func NewTransfers() *Transfers {
	return &Transfers{name: "transfers"}
}

func (t *Transfers) Name() string {
	return t.name
}

func (t *Transfers) Observe(r sim.Record) {
	if r.Transferred {
		t.count++
	}
}

func (t *Transfers) Value() float64 {
	return float64(t.count)
}

func (t *Transfers) Reset() {
	t.count = 0
}
