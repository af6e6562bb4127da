package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/thorny/internal/orbit"
	"github.com/san-kum/thorny/internal/sim"
)

const (
	windowSize = 700
	title      = "Red dot thorny journey"
	maxHistory = 200
)

var (
	ColBg      = rl.Black
	ColBody    = rl.Black
	ColOutline = rl.White
	ColSpoke   = rl.NewColor(255, 255, 255, 90)
	ColToken   = rl.Red
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type App struct {
	Sim       *sim.Simulation
	FPS       int32
	Trail     int
	Running   bool
	ShowTrail bool
	ShowHUD   bool
	Transfers int
	History   []float64 // active index per frame, for the strip chart
}

func NewApp(s *sim.Simulation, fps, trail int) *App {
	return &App{
		Sim:       s,
		FPS:       int32(fps),
		Trail:     trail,
		Running:   true,
		ShowTrail: trail > 0,
		ShowHUD:   true,
		History:   make([]float64, 0, maxHistory),
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *sim.Simulation, fps, trail int) {
	rl.InitWindow(windowSize, windowSize, title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(fps))

	app := NewApp(s, fps, trail)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Sim.Reset()
		a.Transfers = 0
		a.History = a.History[:0]
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.ShowTrail = !a.ShowTrail && a.Trail > 0
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	step := a.Running || rl.IsKeyPressed(rl.KeyN)
	if !step {
		return
	}
	r := a.Sim.Step()
	if r.Transferred {
		a.Transfers++
	}
	a.History = append(a.History, float64(r.Active))
	if len(a.History) > maxHistory {
		a.History = a.History[1:]
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.ShowTrail {
		a.drawTrails()
	}
	a.drawSpokes()
	a.drawBodies()
	if a.ShowHUD {
		a.drawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	rl.DrawText(fmt.Sprintf("frame %d", a.Sim.Shown()), 10, 10, 16, ColText)
	rl.DrawText(fmt.Sprintf("token %d  transfers %d", a.Sim.ActiveIndex(), a.Transfers), 10, 30, 16, ColToken)
	rl.DrawText(fmt.Sprintf("cooldown %d", len(a.Sim.Cooldown())), 10, 50, 16, ColText)

	status := "RUNNING"
	if !a.Running {
		status = "PAUSED"
	}
	rl.DrawText(status, windowSize-90, 10, 16, ColText)
	rl.DrawText("[SPACE] PAUSE  [N] STEP  [R] RESET  [T] TRAILS  [H] HUD", 10, windowSize-20, 12, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), windowSize-60, windowSize-20, 12, ColTextDim)

	a.drawHistory()
}

// drawHistory plots which body held the token over recent frames.
func (a *App) drawHistory() {
	if len(a.History) < 2 {
		return
	}
	rectX, rectY := float32(windowSize-210), float32(40)
	w, h := float32(200), float32(50)
	top := float32(a.Sim.Count() - 1)
	if top == 0 {
		top = 1
	}

	points := make([]rl.Vector2, len(a.History))
	for i, v := range a.History {
		px := rectX + float32(i)/float32(maxHistory)*w
		py := rectY + h - float32(v)/top*h
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColToken)
}

func centre() rl.Vector2 {
	return rl.NewVector2(orbit.CenterX, orbit.CenterY)
}
