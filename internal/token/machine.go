// Package token tracks which body holds the active token and which bodies
// are cooling down after giving it up.
//
// The machine has no named states. Each frame it is handed the bodies that
// overlap the current holder and decides, from that list alone, whether the
// token moves:
//
//   - no overlaps: the cooldown set is emptied;
//   - otherwise the first overlapping body (ascending index) that is not
//     cooling receives the token and the old holder starts cooling;
//   - if every overlapping body is cooling, nothing changes.
//
// At most one transfer happens per frame.
package token

import "github.com/san-kum/thorny/internal/indexset"

// Transition describes what a single Apply did.
type Transition struct {
	From        int
	To          int
	Transferred bool
	// Cleared is set when the cooldown set was emptied this frame.
	Cleared bool
}

type Machine struct {
	active   int
	cooldown *indexset.Set
}

func NewMachine(active, capacity int) *Machine {
	return &Machine{
		active:   active,
		cooldown: indexset.New(capacity),
	}
}

func (m *Machine) Active() int { return m.active }

func (m *Machine) Cooling(i int) bool { return m.cooldown.Contains(i) }

// Cooldown returns the cooling indices in the order they were vacated.
func (m *Machine) Cooldown() []int { return m.cooldown.Items() }

func (m *Machine) CooldownLen() int { return m.cooldown.Len() }

// Apply runs one frame's transfer decision against the overlap list of the
// current holder. overlaps must be in ascending index order.
func (m *Machine) Apply(overlaps *indexset.Set) Transition {
	tr := Transition{From: m.active, To: m.active}

	if overlaps.Len() == 0 {
		tr.Cleared = m.cooldown.Len() > 0
		m.cooldown.Clear()
		return tr
	}

	next, ok := overlaps.First(func(i int) bool { return !m.cooldown.Contains(i) })
	if !ok {
		return tr
	}

	m.cooldown.Append(m.active)
	m.active = next
	tr.To = next
	tr.Transferred = true
	return tr
}

// Reset hands the token to active and forgets all cooldowns.
func (m *Machine) Reset(active int) {
	m.active = active
	m.cooldown.Clear()
}
