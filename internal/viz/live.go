package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/thorny/internal/orbit"
	"github.com/san-kum/thorny/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 240
	graphWidth      = 30
)

type TickMsg time.Time

// Model drives one Simulation, one Step per tick, and redraws it.
type Model struct {
	sim       *sim.Simulation
	canvas    *Canvas
	width     int
	height    int
	fps       int
	trail     int
	showTrail bool
	running   bool
	showHelp  bool
	theme     Theme
	styles    styles
	last      sim.Record
	transfers int
	history   []float64
	cooldowns []float64
}

func NewModel(s *sim.Simulation, fps, trail int, theme string) Model {
	if fps <= 0 {
		fps = 30
	}
	t := GetTheme(theme)
	m := Model{
		sim:       s,
		canvas:    NewCanvas(width, height),
		width:     width,
		height:    height,
		fps:       fps,
		trail:     trail,
		showTrail: trail > 0,
		running:   true,
		theme:     t,
		styles:    stylesFor(t),
		history:   make([]float64, 0, historyCapacity),
		cooldowns: make([]float64, 0, historyCapacity),
	}
	m.draw()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n", ".":
			if !m.running {
				m.step()
				m.draw()
			}
		case "r":
			m.reset()
			m.draw()
		case "t":
			m.showTrail = !m.showTrail && m.trail > 0
			m.draw()
		case "c":
			m.theme = NextTheme(m.theme)
			m.styles = stylesFor(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
			m.draw()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.last = m.sim.Step()
	if m.last.Transferred {
		m.transfers++
	}
	m.history = pushCapped(m.history, float64(m.last.Active))
	m.cooldowns = pushCapped(m.cooldowns, float64(m.last.Cooldown))
}

func (m *Model) reset() {
	m.sim.Reset()
	m.last = sim.Record{}
	m.transfers = 0
	m.history = m.history[:0]
	m.cooldowns = m.cooldowns[:0]
}

func pushCapped(buf []float64, v float64) []float64 {
	buf = append(buf, v)
	if len(buf) > historyCapacity {
		buf = buf[1:]
	}
	return buf
}

// scale fits the outermost disk into the canvas.
func (m *Model) scale() float64 {
	ext := 0.0
	for i := 0; i < m.sim.Count(); i++ {
		if e := m.sim.Radius(i) + m.sim.Size(i); e > ext {
			ext = e
		}
	}
	cw, ch := m.width*2, m.height*4
	side := math.Min(float64(cw), float64(ch)) - 2
	if ext == 0 {
		return 1
	}
	return side / (2 * ext)
}

func (m *Model) project(x, y, scale float64) (int, int) {
	cw, ch := m.width*2, m.height*4
	return cw/2 + int(math.Round((x-orbit.CenterX)*scale)), ch/2 + int(math.Round((y-orbit.CenterY)*scale))
}

func (m *Model) draw() {
	m.canvas.Clear()
	scale := m.scale()
	cx, cy := m.project(orbit.CenterX, orbit.CenterY, scale)

	if m.showTrail {
		for t := 1; t <= m.trail; t++ {
			for i := 0; i < m.sim.Count(); i++ {
				px, py := m.sim.ShownPosition(i, int64(t))
				m.canvas.Set(m.project(px, py, scale))
			}
		}
	}

	active := m.sim.ActiveIndex()
	for i := 0; i < m.sim.Count(); i++ {
		px, py := m.sim.ShownPosition(i, 0)
		x, y := m.project(px, py, scale)
		m.canvas.DrawLine(cx, cy, x, y)
		r := int(math.Round(m.sim.Size(i) * scale))
		if i == active {
			m.canvas.FillCircle(x, y, r)
		} else {
			m.canvas.DrawCircle(x, y, r)
		}
	}
}

func (m Model) View() string {
	st := m.styles
	var s strings.Builder

	s.WriteString(st.header.Render("THORNY JOURNEY") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(st.status.Render(status) + "\n\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.sim.Shown()))
	row("Bodies", fmt.Sprintf("%d", m.sim.Count()))
	row("Seed", fmt.Sprintf("%d", m.sim.Seed()))
	s.WriteString(st.label.Render("Token") + st.token.Render(fmt.Sprintf("body %d", m.sim.ActiveIndex())) + "\n")
	row("Overlaps", formatIndices(m.sim.Overlaps()))
	row("Cooldown", formatIndices(m.sim.Cooldown()))
	row("Transfers", fmt.Sprintf("%d", m.transfers))

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(graphWidth), asciigraph.Caption("token holder"))
		s.WriteString(st.graph.Render(chart) + "\n")
		s.WriteString(st.label.Render("Cooling") + st.value.Render(SparklineChart(m.cooldowns, graphWidth-12)) + "\n")
	}

	s.WriteString(st.help.Render("─────────────────────\nSP:Pause N:Step R:Reset\nT:Trails C:Theme ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.canvas.String()), st.stats.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N        - Single step (paused)     ║
║  R        - Reset to frame 0         ║
║  T        - Toggle trails            ║
║  C        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

func formatIndices(idx []int) string {
	if len(idx) == 0 {
		return "-"
	}
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprintf("%d", v)
	}
	out := strings.Join(parts, ",")
	if len(out) > 24 {
		out = out[:21] + "..."
	}
	return out
}

// Run takes over the terminal until the user quits.
func Run(s *sim.Simulation, fps, trail int, theme string) error {
	_, err := tea.NewProgram(NewModel(s, fps, trail, theme), tea.WithAltScreen()).Run()
	return err
}
