package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/config"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/debris"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/material"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/metrics"
	"github.com/Prateek9456/Advanced-Debris-Simulation/internal/vec"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600

	forceStep = 50.0
	countStep = 5
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model owns the particle system and the blast parameters the user
// tunes at runtime.
type Model struct {
	cfg       *config.Config
	system    *debris.System
	canvas    *Canvas
	rng       *rand.Rand
	force     float64
	count     int
	mt        material.Type
	t         float64
	running   bool
	showHelp  bool
	keHistory []float64
}

// NewModel builds the live view from a validated config.
func NewModel(cfg *config.Config) (Model, error) {
	system, err := debris.NewSystem(cfg.Environment(), cfg.Simulation.MaxParticles, cfg.Simulation.Seed)
	if err != nil {
		return Model{}, err
	}
	mt, err := cfg.MaterialType()
	if err != nil {
		return Model{}, err
	}
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Model{
		cfg:       cfg,
		system:    system,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		rng:       rand.New(rand.NewSource(seed)),
		force:     cfg.Explosion.Force,
		count:     cfg.Explosion.Count,
		mt:        mt,
		running:   true,
		keHistory: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "c":
			m.system.Clear()
		case "r":
			m.reset()
		case "1":
			m.mt = material.Rigid
		case "2":
			m.mt = material.SemiRigid
		case "3":
			m.mt = material.Soft
		case "up", "k":
			m.force = clamp(m.force+forceStep, debris.MinForce, debris.MaxForce)
		case "down", "j":
			m.force = clamp(m.force-forceStep, debris.MinForce, debris.MaxForce)
		case "right", "l":
			m.count = clampInt(m.count+countStep, debris.MinCount, debris.MaxCount)
		case "left", "h":
			m.count = clampInt(m.count-countStep, debris.MinCount, debris.MaxCount)
		case "e":
			m.explodeAt(m.randomPoint())
		case "x":
			m.explodeAt(m.system.Environment().Bounds.Center())
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	dt := m.cfg.Simulation.Dt
	if err := m.system.Update(dt); err != nil {
		return
	}
	m.t += dt

	ke := metrics.TotalKinetic(m.system.Snapshots())
	m.keHistory = append(m.keHistory, ke)
	if len(m.keHistory) > historyCapacity {
		m.keHistory = m.keHistory[1:]
	}
}

func (m *Model) reset() {
	m.system.Clear()
	m.t = 0
	m.force = m.cfg.Explosion.Force
	m.count = m.cfg.Explosion.Count
	m.keHistory = m.keHistory[:0]
}

func (m *Model) explodeAt(center vec.Vec) {
	m.system.Spawn(center, m.force, m.count, m.mt)
}

// randomPoint picks a blast site in the upper two thirds of the field
// so the debris has room to fall.
func (m *Model) randomPoint() vec.Vec {
	b := m.system.Environment().Bounds
	x := b.MinX + m.rng.Float64()*b.Width()
	y := b.MinY + m.rng.Float64()*b.Height()*0.66
	return vec.New(x, y)
}

// toCanvas maps world coordinates to sub-pixel canvas coordinates.
func (m *Model) toCanvas(p vec.Vec) (int, int) {
	b := m.system.Environment().Bounds
	cw := float64(canvasWidth * 2)
	ch := float64(canvasHeight * 4)
	x := (p.X - b.MinX) / b.Width() * cw
	y := (p.Y - b.MinY) / b.Height() * ch
	return int(x), int(y)
}

func (m *Model) draw() {
	m.canvas.Clear()

	// Ground line.
	m.canvas.DrawLine(0, canvasHeight*4-1, canvasWidth*2-1, canvasHeight*4-1)

	for _, s := range m.system.Snapshots() {
		px, py := m.toCanvas(s.Pos)

		if len(s.Trail) > 1 {
			prevX, prevY := m.toCanvas(s.Trail[0])
			for _, tp := range s.Trail[1:] {
				tx, ty := m.toCanvas(tp)
				m.canvas.DrawLine(prevX, prevY, tx, ty)
				prevX, prevY = tx, ty
			}
		}

		r := int(s.Size / 4)
		if s.Material == material.Rigid {
			m.canvas.DrawSquare(px, py, r, s.Rotation)
		} else {
			m.canvas.FillCircle(px, py, r)
		}
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("DEBRIS FIELD") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.keHistory) > 1 {
		chart := asciigraph.Plot(m.keHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d / %d", m.system.Len(), m.system.Capacity())) + "\n")

	matStyle := lipgloss.NewStyle().Foreground(MaterialColor(m.mt)).Bold(true)
	s.WriteString(labelStyle.Render("Material") + matStyle.Render(m.mt.String()) + "\n")
	s.WriteString(labelStyle.Render("Force") + valueStyle.Render(fmt.Sprintf("%.0f", m.force)) + "\n")
	s.WriteString(labelStyle.Render("Count") + valueStyle.Render(fmt.Sprintf("%d", m.count)) + "\n")

	ke := 0.0
	if len(m.keHistory) > 0 {
		ke = m.keHistory[len(m.keHistory)-1]
	}
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.0f", ke)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nE:Explode X:Center C:Clear\n1/2/3:Material ↑↓:Force ←→:Count\nSP:Pause R:Reset T:Theme ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  E        - Explode at random spot   ║
║  X        - Explode at field center  ║
║  C        - Clear all particles      ║
║  1/2/3    - Rigid/SemiRigid/Soft     ║
║  Up/K     - Increase blast force     ║
║  Down/J   - Decrease blast force     ║
║  Left/H   - Fewer particles          ║
║  Right/L  - More particles           ║
║  Space    - Pause/Resume             ║
║  R        - Reset                    ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
