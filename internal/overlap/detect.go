// Package overlap finds which projected disks intersect the active one.
package overlap

import (
	"math"

	"github.com/san-kum/thorny/internal/indexset"
)

// Disk is a body's projected footprint for one frame.
type Disk struct {
	X, Y, R float64
}

// Intersects reports whether two disks overlap. Tangent disks do not.
func Intersects(a, b Disk) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) < a.R+b.R
}

// Detect clears dst and fills it with the indices of every disk other than
// disks[active] that intersects it, in ascending index order.
func Detect(active int, disks []Disk, dst *indexset.Set) {
	dst.Clear()
	ref := disks[active]
	for i, d := range disks {
		if i == active {
			continue
		}
		if Intersects(ref, d) {
			dst.Append(i)
		}
	}
}
