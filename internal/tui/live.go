package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/san-kum/thorny/internal/orbit"
	"github.com/san-kum/thorny/internal/sim"
)

const (
	width       = 70
	height      = 35
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	red         = "\033[31m"
	reset       = "\033[0m"
)

// LiveRenderer redraws the system in plain ANSI after each step. It is
// attached to a headless run as an Observer, so frames are dropped when
// steps arrive faster than frameRate.
type LiveRenderer struct {
	out       io.Writer
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	transfers int
}

func NewLiveRenderer(frameRate int) *LiveRenderer {
	return NewLiveRendererTo(os.Stdout, frameRate)
}

// NewLiveRendererTo writes frames to out. A frameRate of zero or less
// draws every step.
func NewLiveRendererTo(out io.Writer, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		out:       out,
		frameRate: frameRate,
		canvas:    canvas,
	}
}

func (r *LiveRenderer) OnStep(s *sim.Simulation, rec sim.Record) {
	if rec.Transferred {
		r.transfers++
	}
	if r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
		r.lastFrame = time.Now()
	}

	r.clear()
	r.draw(s)
	r.render(s, rec)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) line(x1, y1, x2, y2 int, c rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// cell maps world coordinates onto the character grid. Cells are about
// twice as tall as they are wide, so x gets double the scale.
func cell(x, y, scale float64) (int, int) {
	return width/2 + int(math.Round((x-orbit.CenterX)*scale*2)),
		height/2 + int(math.Round((y-orbit.CenterY)*scale))
}

func scaleFor(s *sim.Simulation) float64 {
	ext := 0.0
	for i := 0; i < s.Count(); i++ {
		if e := s.Radius(i) + s.Size(i); e > ext {
			ext = e
		}
	}
	return float64(height-2) / (2 * ext)
}

func (r *LiveRenderer) draw(s *sim.Simulation) {
	scale := scaleFor(s)
	cx, cy := cell(orbit.CenterX, orbit.CenterY, scale)
	for i := 0; i < s.Count(); i++ {
		px, py := s.ShownPosition(i, 0)
		x, y := cell(px, py, scale)
		r.line(cx, cy, x, y, '.')
	}
	for i := 0; i < s.Count(); i++ {
		px, py := s.ShownPosition(i, 0)
		x, y := cell(px, py, scale)
		r.set(x, y, 'o')
	}
	r.set(cx, cy, '+')
}

func (r *LiveRenderer) render(s *sim.Simulation, rec sim.Record) {
	px, py := s.ShownPosition(rec.Active, 0)
	ax, ay := cell(px, py, scaleFor(s))

	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  thorny  frame=%d  bodies=%d\n", rec.Frame, s.Count())
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for y, row := range r.canvas {
		b.WriteString("  ")
		if y == ay && ax >= 0 && ax < width {
			b.WriteString(string(row[:ax]))
			b.WriteString(red + "@" + reset)
			b.WriteString(string(row[ax+1:]))
		} else {
			b.WriteString(string(row))
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	fmt.Fprintf(&b, "  active=%d  overlaps=%d  cooldown=%d  transfers=%d\n",
		rec.Active, rec.Overlaps, rec.Cooldown, r.transfers)

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
