package orbit

import (
	"math"
	"testing"
)

func TestGenerateRadiiAndSizes(t *testing.T) {
	bodies := Generate(DefaultCount, DefaultSeed)
	if len(bodies) != DefaultCount {
		t.Fatalf("expected %d bodies, got %d", DefaultCount, len(bodies))
	}

	if bodies[0].Radius != 30 {
		t.Errorf("first radius = %v, want 30", bodies[0].Radius)
	}
	if last := bodies[len(bodies)-1].Radius; last != 300 {
		t.Errorf("last radius = %v, want 300", last)
	}

	for i := 1; i < len(bodies); i++ {
		if d := bodies[i].Radius - bodies[i-1].Radius; d != Spacing {
			t.Errorf("spacing between %d and %d = %v", i-1, i, d)
		}
		if bodies[i].Size <= bodies[i-1].Size {
			t.Errorf("size not increasing at %d", i)
		}
	}
}

func TestSizeFor(t *testing.T) {
	tests := []struct {
		radius, want float64
	}{
		{0, 15},
		{100, 15.5},
		{300, 19.5},
	}
	for _, tt := range tests {
		if got := SizeFor(tt.radius); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("SizeFor(%v) = %v, want %v", tt.radius, got, tt.want)
		}
	}
}

func TestGenerateVelocityBounds(t *testing.T) {
	bound := 0.5 / Damping
	for _, b := range Generate(500, 42) {
		if b.AngularVelocity < -bound || b.AngularVelocity >= bound {
			t.Fatalf("angular velocity %v outside [-%v, %v)", b.AngularVelocity, bound, bound)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(DefaultCount, DefaultSeed)
	b := Generate(DefaultCount, DefaultSeed)
	for i := range a {
		if math.Float64bits(a[i].AngularVelocity) != math.Float64bits(b[i].AngularVelocity) {
			t.Fatalf("body %d: %v != %v", i, a[i].AngularVelocity, b[i].AngularVelocity)
		}
	}

	c := Generate(DefaultCount, DefaultSeed+1)
	same := true
	for i := range a {
		if a[i].AngularVelocity != c[i].AngularVelocity {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical velocities")
	}
}

func TestGeneratePrefixStable(t *testing.T) {
	short := Generate(5, 9)
	long := Generate(20, 9)
	for i := range short {
		if short[i] != long[i] {
			t.Errorf("body %d differs between counts", i)
		}
	}
}

func TestAngleClosedForm(t *testing.T) {
	w := 0.004
	b := NewBody(50, w)
	tests := []struct {
		frame int64
		base  float64
	}{
		{0, 9000},
		{1, 9001},
		{-33, 8967},
		{1_000_000, 1_009_000},
	}
	for _, tt := range tests {
		if got, want := b.Angle(tt.frame), tt.base*w; got != want {
			t.Errorf("Angle(%d) = %v, want %v", tt.frame, got, want)
		}
	}
}

func TestPosition(t *testing.T) {
	b := NewBody(100, 0)
	x, y := b.Position(12345)
	if x != CenterX+100 || y != CenterY {
		t.Errorf("stationary body at (%v, %v), want (%v, %v)", x, y, CenterX+100, CenterY)
	}

	b = NewBody(40, math.Pi/2/PhaseOffset)
	x, y = b.Position(0)
	if math.Abs(x-CenterX) > 1e-9 || math.Abs(y-(CenterY+40)) > 1e-9 {
		t.Errorf("quarter turn at (%v, %v)", x, y)
	}

	for _, frame := range []int64{0, 17, 9999} {
		b := NewBody(70, -0.003)
		x, y := b.Position(frame)
		if r := math.Hypot(x-CenterX, y-CenterY); math.Abs(r-70) > 1e-9 {
			t.Errorf("frame %d: distance from centre %v, want 70", frame, r)
		}
	}
}

func TestExtent(t *testing.T) {
	bodies := Generate(DefaultCount, DefaultSeed)
	if got, want := Extent(bodies), 300+SizeFor(300); got != want {
		t.Errorf("Extent = %v, want %v", got, want)
	}
	if Extent(nil) != 0 {
		t.Error("empty extent should be 0")
	}
}
