package sim

import (
	"fmt"

	"github.com/san-kum/thorny/internal/indexset"
	"github.com/san-kum/thorny/internal/orbit"
	"github.com/san-kum/thorny/internal/overlap"
	"github.com/san-kum/thorny/internal/token"
)

// Simulation owns the bodies, the frame counter and the token machine.
// It is not safe for concurrent use.
type Simulation struct {
	bodies    []orbit.Body
	seed      int64
	frame     uint64
	shown     uint64
	angles    []float64
	disks     []overlap.Disk
	overlaps  *indexset.Set
	token     *token.Machine
	metrics   []Metric
	observers []Observer
}

// New builds count bodies from seed with the token on body 0.
func New(count int, seed int64) (*Simulation, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoBodies, count)
	}
	s, err := NewWithBodies(orbit.Generate(count, seed))
	if err != nil {
		return nil, err
	}
	s.seed = seed
	return s, nil
}

// NewWithBodies builds a simulation over a caller-supplied layout.
func NewWithBodies(bodies []orbit.Body) (*Simulation, error) {
	if len(bodies) < 1 {
		return nil, ErrNoBodies
	}
	n := len(bodies)
	s := &Simulation{
		bodies:   append([]orbit.Body(nil), bodies...),
		angles:   make([]float64, n),
		disks:    make([]overlap.Disk, n),
		overlaps: indexset.New(n),
		token:    token.NewMachine(0, n),
	}
	s.refresh()
	return s, nil
}

func (s *Simulation) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Step evaluates the current frame (angles, overlap detection, token
// transition) and then advances the frame counter. Frame 0 is the first
// frame decided.
func (s *Simulation) Step() Record {
	s.shown = s.frame
	s.refresh()

	overlap.Detect(s.token.Active(), s.disks, s.overlaps)
	tr := s.token.Apply(s.overlaps)
	s.frame++

	r := Record{
		Frame:       s.shown,
		Active:      tr.To,
		From:        tr.From,
		Transferred: tr.Transferred,
		Cleared:     tr.Cleared,
		Overlaps:    s.overlaps.Len(),
		Cooldown:    s.token.CooldownLen(),
	}
	for _, m := range s.metrics {
		m.Observe(r)
	}
	for _, o := range s.observers {
		o.OnStep(s, r)
	}
	return r
}

// Reset rewinds to frame 0 with the token back on body 0. Bodies are kept.
func (s *Simulation) Reset() {
	s.frame = 0
	s.shown = 0
	s.token.Reset(0)
	s.overlaps.Clear()
	s.refresh()
	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Simulation) refresh() {
	f := int64(s.shown)
	for i, b := range s.bodies {
		a := b.Angle(f)
		x, y := orbit.Project(b.Radius, a)
		s.angles[i] = a
		s.disks[i] = overlap.Disk{X: x, Y: y, R: b.Size}
	}
}

// Frame is the number of steps taken, i.e. the next frame Step evaluates.
func (s *Simulation) Frame() uint64 { return s.frame }

// Shown is the frame whose layout decided the current holder: the frame
// the last Step evaluated, or 0 before any step. Renderers draw this frame.
func (s *Simulation) Shown() uint64 { return s.shown }

func (s *Simulation) Count() int    { return len(s.bodies) }
func (s *Simulation) Seed() int64   { return s.seed }

func (s *Simulation) ActiveIndex() int { return s.token.Active() }

// Cooldown lists bodies that gave up the token and may not take it back yet.
func (s *Simulation) Cooldown() []int { return s.token.Cooldown() }

func (s *Simulation) Cooling(i int) bool {
	s.check(i)
	return s.token.Cooling(i)
}

// Overlaps lists the bodies that overlapped the holder during the last Step.
func (s *Simulation) Overlaps() []int { return s.overlaps.Items() }

func (s *Simulation) Size(i int) float64 {
	s.check(i)
	return s.bodies[i].Size
}

func (s *Simulation) Radius(i int) float64 {
	s.check(i)
	return s.bodies[i].Radius
}

func (s *Simulation) AngularVelocity(i int) float64 {
	s.check(i)
	return s.bodies[i].AngularVelocity
}

// Angle is the body's angle at Shown().
func (s *Simulation) Angle(i int) float64 {
	s.check(i)
	return s.angles[i]
}

// ProjectedPosition evaluates body i at Frame()-frameOffset. It does not
// touch simulation state.
func (s *Simulation) ProjectedPosition(i int, frameOffset int64) (x, y float64) {
	s.check(i)
	return s.bodies[i].Position(int64(s.frame) - frameOffset)
}

// ShownPosition evaluates body i at Shown()-trail, so trail 0 is where the
// body was when the current holder was decided and positive values walk
// back along its trail.
func (s *Simulation) ShownPosition(i int, trail int64) (x, y float64) {
	s.check(i)
	return s.bodies[i].Position(int64(s.shown) - trail)
}

func (s *Simulation) check(i int) {
	if i < 0 || i >= len(s.bodies) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(s.bodies)))
	}
}
