package overlap

import (
	"reflect"
	"testing"

	"github.com/san-kum/thorny/internal/indexset"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Disk
		want bool
	}{
		{"same centre", Disk{0, 0, 1}, Disk{0, 0, 1}, true},
		{"overlapping", Disk{0, 0, 2}, Disk{3, 0, 2}, true},
		{"tangent", Disk{0, 0, 2}, Disk{4, 0, 2}, false},
		{"apart", Disk{0, 0, 1}, Disk{10, 10, 1}, false},
		{"diagonal overlap", Disk{0, 0, 3}, Disk{3, 4, 2.5}, true},
		{"diagonal tangent", Disk{0, 0, 3}, Disk{3, 4, 2}, false},
		{"contained", Disk{0, 0, 10}, Disk{1, 1, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(a, b) = %v, want %v", got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectAscendingAndExcludesActive(t *testing.T) {
	disks := []Disk{
		{0, 0, 2},    // 0 overlaps active
		{50, 0, 1},   // 1 far away
		{1, 1, 1},    // 2 active
		{2, 2, 1},    // 3 overlaps active
		{1, -0.5, 1}, // 4 overlaps active
		{3.5, 1, 1},  // 5 just out of reach
	}
	dst := indexset.New(0)
	Detect(2, disks, dst)

	if got, want := dst.Items(), []int{0, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Detect = %v, want %v", got, want)
	}
}

func TestDetectEmpty(t *testing.T) {
	disks := []Disk{{0, 0, 1}, {10, 0, 1}, {0, 10, 1}}
	dst := indexset.New(0)
	dst.Append(42)

	Detect(0, disks, dst)
	if dst.Len() != 0 {
		t.Errorf("expected no overlaps, got %v", dst.Items())
	}
}

func TestDetectSingleDisk(t *testing.T) {
	dst := indexset.New(0)
	Detect(0, []Disk{{0, 0, 5}}, dst)
	if dst.Len() != 0 {
		t.Errorf("single disk cannot overlap anything, got %v", dst.Items())
	}
}
