package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/thorny/internal/orbit"
	"github.com/san-kum/thorny/internal/sim"
)

type Point struct {
	X, Y float64
}

// FrameSVG draws the current frame the way the window renderer does: fading
// trail outlines, spokes from the centre, then the disks with the token holder
// in red on top.
func FrameSVG(s *sim.Simulation, trail int) string {
	if s == nil {
		return ""
	}

	width := 2 * orbit.CenterX
	height := 2 * orbit.CenterY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	if trail > 0 {
		sb.WriteString(`<g fill="none" stroke="#ffffff">` + "\n")
		for t := 1; t <= trail; t++ {
			opacity := float64(trail-t) / float64(trail)
			for i := 0; i < s.Count(); i++ {
				x, y := s.ShownPosition(i, int64(t))
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" stroke-opacity="%.3f"/>
`, x, y, s.Size(i), opacity))
			}
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(`<g stroke="#ffffff">` + "\n")
	for i := 0; i < s.Count(); i++ {
		x, y := s.ShownPosition(i, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, orbit.CenterX, orbit.CenterY, x, y))
	}
	sb.WriteString("</g>\n")

	active := s.ActiveIndex()
	sb.WriteString(`<g stroke="#ffffff">` + "\n")
	for i := 0; i < s.Count(); i++ {
		if i == active {
			continue
		}
		x, y := s.ShownPosition(i, 0)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#000000"/>
`, x, y, s.Size(i)))
	}
	x, y := s.ShownPosition(active, 0)
	sb.WriteString(fmt.Sprintf(`<circle id="active" cx="%.1f" cy="%.1f" r="%.1f" fill="#ff0000"/>
`, x, y, s.Size(active)))
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}

// TokenPath maps recorded frames to where the token sat on each of them.
// Records must come from s; frames after s.Shown() are evaluated ahead.
func TokenPath(s *sim.Simulation, records []sim.Record) []Point {
	points := make([]Point, 0, len(records))
	shown := int64(s.Shown())
	for _, r := range records {
		x, y := s.ShownPosition(r.Active, shown-int64(r.Frame))
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// TokenPathSVG draws a polyline through points in a fixed frame matching the
// simulation's screen space.
func TokenPathSVG(points []Point, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	width := 2 * orbit.CenterX
	height := 2 * orbit.CenterY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<circle cx="%.1f" cy="%.1f" r="2" fill="#444444"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, orbit.CenterX, orbit.CenterY, strokeColor))

	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
