// Package tui is the interactive driver for a Simulation. The core has
// no run/pause state of its own; the ticker here decides when Step is
// called, and the keybindings stand in for the slider-and-button surface
// of a desktop UI.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/sim"
	"github.com/san-kum/gravlab/internal/viz"
)

const (
	canvasWidth    = 72
	canvasHeight   = 22
	historyCap     = 240
	secondsPerDay  = 86400.0
	trailCapNudge  = 50
	timeStepFactor = 1.5
)

type TickMsg time.Time

type Model struct {
	sim     *sim.Simulation
	initial []sim.BodySpec
	preset  string
	fps     int

	canvas  *viz.Canvas
	paused  bool
	err     error
	energy0 float64
	drift   []float64
}

func New(s *sim.Simulation, initial []sim.BodySpec, preset string, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		sim:     s,
		initial: initial,
		preset:  preset,
		fps:     fps,
		canvas:  viz.NewCanvas(canvasWidth, canvasHeight),
		energy0: s.Energy(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.paused {
			m.err = m.sim.Step()
			m.observe()
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) observe() {
	if m.energy0 == 0 {
		return
	}
	drift := (m.sim.Energy() - m.energy0) / m.energy0
	m.drift = append(m.drift, drift)
	if len(m.drift) > historyCap {
		m.drift = m.drift[len(m.drift)-historyCap:]
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "+", "=":
		m.err = m.sim.SetTimeStep(m.sim.TimeStep() * timeStepFactor)
	case "-", "_":
		m.err = m.sim.SetTimeStep(m.sim.TimeStep() / timeStepFactor)
	case "t":
		n := m.sim.TrailCapacity() - trailCapNudge
		if n < 0 {
			n = 0
		}
		m.err = m.sim.SetTrailCapacity(n)
	case "T":
		m.err = m.sim.SetTrailCapacity(m.sim.TrailCapacity() + trailCapNudge)
	case "r":
		m.err = m.sim.Load(m.initial)
		m.energy0 = m.sim.Energy()
		m.drift = nil
	}
	return m, nil
}

func (m Model) View() string {
	snapshot := m.sim.Snapshot()
	trails := m.sim.Trails()

	canvas := m.canvas
	canvas.Clear()

	positions := make([]physics.Vec2, len(snapshot))
	for i, b := range snapshot {
		positions[i] = b.Pos
	}
	proj := viz.FitProjection(positions, canvas)

	points := make([]vizPoint, 0, len(snapshot))

	for _, trail := range trails {
		for _, p := range trail {
			if x, y, ok := proj.ToCanvas(p); ok {
				canvas.Set(x, y)
			}
		}
	}
	for _, b := range snapshot {
		if x, y, ok := proj.ToCanvas(b.Pos); ok {
			points = append(points, vizPoint{row: y / 4, col: x / 2, color: b.Color})
		}
	}

	left := viz.CanvasStyle.Render(renderCanvas(canvas, points))
	right := viz.StatsStyle.Render(m.statsPanel(snapshot))

	header := viz.HeaderStyle.Render(fmt.Sprintf("gravlab · %s", m.preset))
	help := viz.HelpStyle.Render("space pause · +/- step size · t/T trail length · r reset · q quit")

	return header + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + help + "\n"
}

type vizPoint struct {
	row, col int
	color    string
}

func renderCanvas(c *viz.Canvas, bodies []vizPoint) string {
	markers := make(map[[2]int]string, len(bodies))
	for _, b := range bodies {
		markers[[2]int{b.row, b.col}] = viz.BodyStyle(b.color).Render("●")
	}

	rows := c.Rows()
	var sb strings.Builder
	for i, row := range rows {
		col := 0
		for _, r := range row {
			if marker, ok := markers[[2]int{i, col}]; ok {
				sb.WriteString(marker)
			} else {
				sb.WriteRune(r)
			}
			col++
		}
		if i < len(rows)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m Model) statsPanel(snapshot []sim.BodyState) string {
	status := viz.RunningTag.Render("running")
	if m.paused {
		status = viz.PausedTag.Render("paused")
	}

	line := func(label, value string) string {
		return viz.LabelStyle.Render(label) + viz.ValueStyle.Render(value)
	}

	lines := []string{
		line("status", status),
		line("bodies", fmt.Sprintf("%d", len(snapshot))),
		line("steps", fmt.Sprintf("%d", m.sim.Steps())),
		line("sim time", fmt.Sprintf("%.1f days", m.sim.Time()/secondsPerDay)),
		line("step size", fmt.Sprintf("%.2f days", m.sim.TimeStep()/secondsPerDay)),
		line("trail len", fmt.Sprintf("%d", m.sim.TrailCapacity())),
		line("momentum", fmt.Sprintf("%.3e", m.sim.Momentum().Norm())),
	}

	if len(m.drift) >= 2 {
		graph := asciigraph.Plot(m.drift,
			asciigraph.Height(5), asciigraph.Width(28), asciigraph.Precision(2))
		lines = append(lines, "", viz.LabelStyle.Render("energy drift"), viz.GraphStyle.Render(graph))
	}

	if m.err != nil {
		lines = append(lines, "", viz.ErrorStyle.Render(m.err.Error()))
	}

	return strings.Join(lines, "\n")
}

// Run starts the live view and blocks until the user quits.
func Run(s *sim.Simulation, initial []sim.BodySpec, preset string, fps int) error {
	_, err := tea.NewProgram(New(s, initial, preset, fps)).Run()
	return err
}
