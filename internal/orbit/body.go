package orbit

import (
	"math"
	"math/rand"
)

const (
	MinRadius    = 30.0
	Spacing      = 10.0
	DefaultCount = 28
	DefaultSeed  = 5

	// PhaseOffset shifts frame 0 away from the all-bodies-at-angle-0 alignment.
	PhaseOffset = 9000
	Damping     = 60.0

	BaseSize  = 30.0
	SizeScale = 10000.0

	CenterX = 350.0
	CenterY = 350.0
)

type Body struct {
	Radius          float64
	AngularVelocity float64
	Size            float64
}

// NewBody derives the visual size from the orbital radius.
func NewBody(radius, angularVelocity float64) Body {
	return Body{
		Radius:          radius,
		AngularVelocity: angularVelocity,
		Size:            SizeFor(radius),
	}
}

// SizeFor grows with the radius so outer bodies read as large as inner ones.
func SizeFor(radius float64) float64 {
	return (BaseSize + radius*radius/SizeScale) / 2
}

func RadiusAt(i int) float64 {
	return MinRadius + float64(i)*Spacing
}

// Generate builds count bodies with angular velocities drawn uniformly from
// [-0.5, 0.5)/Damping, one draw per body in index order.
func Generate(count int, seed int64) []Body {
	if count < 0 {
		count = 0
	}
	rng := rand.New(rand.NewSource(seed))
	bodies := make([]Body, count)
	for i := range bodies {
		w := (rng.Float64() - 0.5) / Damping
		bodies[i] = NewBody(RadiusAt(i), w)
	}
	return bodies
}

func (b Body) Angle(frame int64) float64 {
	return float64(frame+PhaseOffset) * b.AngularVelocity
}

func (b Body) Position(frame int64) (x, y float64) {
	return Project(b.Radius, b.Angle(frame))
}

// Project maps an orbital radius and angle to screen coordinates.
func Project(radius, angle float64) (x, y float64) {
	sin, cos := math.Sincos(angle)
	return CenterX + radius*cos, CenterY + radius*sin
}

// Extent is the farthest any body's disk reaches from the centre.
func Extent(bodies []Body) float64 {
	ext := 0.0
	for _, b := range bodies {
		if e := b.Radius + b.Size; e > ext {
			ext = e
		}
	}
	return ext
}
