package metrics

import "github.com/san-kum/thorny/internal/sim"

// CooldownResets counts frames on which a non-empty cooldown set was cleared.
type CooldownResets struct {
	name   string
	resets int
}

func NewCooldownResets() *CooldownResets {
	return &CooldownResets{name: "cooldown_resets"}
}

func (c *CooldownResets) Name() string {
	return c.name
}

func (c *CooldownResets) Observe(r sim.Record) {
	if r.Cleared {
		c.resets++
	}
}

func (c *CooldownResets) Value() float64 {
	return float64(c.resets)
}

func (c *CooldownResets) Reset() {
	c.resets = 0
}

type MaxCooldown struct {
	name string
	max  int
}

func NewMaxCooldown() *MaxCooldown {
	return &MaxCooldown{name: "max_cooldown"}
}

func (m *MaxCooldown) Name() string {
	return m.name
}

func (m *MaxCooldown) Observe(r sim.Record) {
	if r.Cooldown > m.max {
		m.max = r.Cooldown
	}
}

func (m *MaxCooldown) Value() float64 {
	return float64(m.max)
}

func (m *MaxCooldown) Reset() {
	m.max = 0
}
