package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

var (
	canvasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb8500"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#008080")).Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model drives a scene from the terminal. Keys stand in for the pointer:
// c/s/t (or 1/2/3) press a button, space releases.
type Model struct {
	scene  *scene.Scene
	canvas *Braille
	paused bool
}

func NewModel(s *scene.Scene, cols, rows int) Model {
	m := Model{scene: s}
	m.resize(cols, rows)
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c", "1":
			m.scene.Activate(swarm.ShapeCircle)
		case "s", "2":
			m.scene.Activate(swarm.ShapeSquare)
		case "t", "3":
			m.scene.Activate(swarm.ShapeTriangle)
		case " ":
			m.scene.Release()
		case "p":
			m.paused = !m.paused
		}
	case tea.WindowSizeMsg:
		// leave room for header, status and help
		m.resize(msg.Width-2, msg.Height-6)
	case TickMsg:
		if !m.paused {
			m.scene.Tick()
		}
		m.draw()
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	status := m.scene.Status()
	if m.paused {
		status += " | paused"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("pixelswarm"),
		canvasStyle.Render(m.canvas.String()),
		statusStyle.Render(status),
		helpStyle.Render("c/s/t: congregate  space: release  p: pause  q: quit"),
	)
}

func (m *Model) resize(cols, rows int) {
	cols, rows = max(cols, 8), max(rows, 4)
	w, h := m.scene.Size()
	m.canvas = NewBraille(cols, rows, float64(w), float64(h))
	m.draw()
}

func (m *Model) draw() {
	m.canvas.Clear(nil)
	m.scene.Draw(m.canvas)
}

// Run blocks until the user quits the preview.
func Run(s *scene.Scene, cols, rows int) error {
	_, err := tea.NewProgram(NewModel(s, cols, rows), tea.WithAltScreen()).Run()
	return err
}
