package metrics

import "github.com/san-kum/thorny/internal/sim"

// Default returns a fresh instance of every metric a run records.
func Default() []sim.Metric {
	return []sim.Metric{
		NewTransfers(),
		NewTenure(),
		NewCooldownResets(),
		NewMaxCooldown(),
		NewOverlapRatio(),
	}
}
