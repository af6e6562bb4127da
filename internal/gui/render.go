package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (a *App) position(i int, offset int64) rl.Vector2 {
	x, y := a.Sim.ShownPosition(i, offset)
	return rl.NewVector2(float32(x), float32(y))
}

// drawTrails outlines each body at its previous Trail positions, fading
// linearly to transparent.
func (a *App) drawTrails() {
	for t := 1; t <= a.Trail; t++ {
		alpha := float32(a.Trail-t) / float32(a.Trail)
		col := rl.Fade(ColOutline, alpha)
		for i := 0; i < a.Sim.Count(); i++ {
			p := a.position(i, int64(t))
			rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(a.Sim.Size(i)), col)
		}
	}
}

func (a *App) drawSpokes() {
	c := centre()
	for i := 0; i < a.Sim.Count(); i++ {
		rl.DrawLineV(c, a.position(i, 0), ColSpoke)
	}
}

func (a *App) drawBodies() {
	active := a.Sim.ActiveIndex()
	for i := 0; i < a.Sim.Count(); i++ {
		if i == active {
			continue
		}
		p := a.position(i, 0)
		r := float32(a.Sim.Size(i))
		rl.DrawCircleV(p, r, ColBody)
		rl.DrawCircleLines(int32(p.X), int32(p.Y), r, ColOutline)
	}

	// Drawn last so it sits above any body it overlaps.
	p := a.position(active, 0)
	r := float32(a.Sim.Size(active))
	rl.DrawCircleV(p, r, ColToken)
	rl.DrawCircleLines(int32(p.X), int32(p.Y), r, ColOutline)
}
