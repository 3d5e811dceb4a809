package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/scene"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	trailCapacity   = 2000
	maxSpeed        = 64
)

type TickMsg time.Time

type Options struct {
	Name   string
	FPS    int
	World  mgl64.Vec2
	Energy metrics.Hamiltonian
}

type point struct{ x, y int }

// Model draws the scene on a braille canvas and advances the simulator
// Speed ticks per frame.
type Model struct {
	sim   *dynamo.Simulator
	scene *scene.Scene
	opts  Options

	canvas        *Canvas
	trail         []point
	running       bool
	speed         int
	energyHistory []float64
	showHelp      bool
}

// NewModel expects sc to already be the simulator's position sink.
func NewModel(sim *dynamo.Simulator, sc *scene.Scene, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.World[0] <= 0 || opts.World[1] <= 0 {
		opts.World = mgl64.Vec2{800, 600}
	}
	m := Model{
		sim:           sim,
		scene:         sc,
		opts:          opts,
		canvas:        NewCanvas(width, height),
		trail:         make([]point, 0, trailCapacity),
		running:       true,
		speed:         1,
		energyHistory: make([]float64, 0, historyCapacity),
	}
	m.recordEnergy()
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			if m.speed < maxSpeed {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "c":
			m.trail = m.trail[:0]
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
		m.draw()
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < m.speed; i++ {
		m.sim.Tick()
	}
	m.recordTrail()
	m.recordEnergy()
}

// recordTrail appends one point per body for the frame just stepped.
func (m *Model) recordTrail() {
	for _, s := range m.scene.Shapes() {
		x, y, _ := m.project(s.Position)
		m.trail = append(m.trail, point{x, y})
	}
	if over := len(m.trail) - trailCapacity; over > 0 {
		m.trail = m.trail[over:]
	}
}

func (m *Model) recordEnergy() {
	if m.opts.Energy == nil {
		return
	}
	e := m.opts.Energy.Energy(m.sim.Bodies())
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return
	}
	if len(m.energyHistory) >= historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
	m.energyHistory = append(m.energyHistory, e)
}

func (m *Model) reset() {
	m.sim.Reset()
	m.trail = m.trail[:0]
	m.energyHistory = m.energyHistory[:0]
	m.recordEnergy()
}

// project maps world coordinates to canvas sub-pixels, keeping the aspect.
func (m *Model) project(p mgl64.Vec2) (int, int, float64) {
	cw, ch := m.canvas.Dots()
	scale := math.Min(float64(cw)/m.opts.World[0], float64(ch)/m.opts.World[1])
	return int(math.Round(p[0] * scale)), int(math.Round(p[1] * scale)), scale
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, pt := range m.trail {
		m.canvas.Set(pt.x, pt.y)
	}

	for _, s := range m.scene.Shapes() {
		x, y, scale := m.project(s.Position)
		m.canvas.Disc(x, y, int(s.Radius*scale))
	}
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle().Render(strings.ToUpper(m.opts.Name)) + "\n")
	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING"))
	} else {
		s.WriteString(StatusPaused.Render("PAUSED"))
	}
	s.WriteString(fmt.Sprintf("  x%d\n\n", m.speed))

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Foreground(CurrentTheme.Graph).Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.sim.TickCount())) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1f", m.sim.Time())) + "\n")
	if n := len(m.energyHistory); n > 0 {
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4g", m.energyHistory[n-1])) + "\n")
	}
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Len())) + "\n")

	s.WriteString("\n" + Separator(24) + "\n")
	bodies := m.sim.Bodies()
	for i, sh := range m.scene.Shapes() {
		if i >= 8 {
			s.WriteString(valueStyle.Render(fmt.Sprintf("  ... %d more", len(bodies)-i)) + "\n")
			break
		}
		pos := bodies[i].Position
		s.WriteString(fmt.Sprintf("%s %-2d %s\n", Swatch(scene.Hex(sh.Color)), i,
			valueStyle.Render(fmt.Sprintf("(%7.1f, %7.1f)", pos[0], pos[1]))))
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit\n+/-:Speed C:Trail T:Theme ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return KeyHint.Render(helpText) + "\n\n" + mainView
	}
	return mainView
}

const helpText = `Space  pause or resume
R      reset to the initial bodies
+ -    double or halve ticks per frame
C      clear trails
T      cycle themes
Q      quit`

// Run starts the full screen viewer and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
