package term

import (
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"

	"github.com/iburimskiy/pixelswarm/internal/config"
	"github.com/iburimskiy/pixelswarm/internal/log"
	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

func newModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Particles = 30
	opts, err := scene.OptionsFromConfig(cfg, rand.New(rand.NewSource(1)), log.Discard())
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(scene.New(opts), 60, 30)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestPreviewKeysDriveTransitions(t *testing.T) {
	g := NewWithT(t)
	m := newModel(t)

	tests := []struct {
		key  string
		want swarm.Shape
	}{
		{"c", swarm.ShapeCircle},
		{"s", swarm.ShapeSquare},
		{"3", swarm.ShapeTriangle},
	}
	for _, tt := range tests {
		m = update(m, key(tt.key))
		cong, ok := m.scene.State().(*swarm.Congregated)
		g.Expect(ok).To(BeTrue(), tt.key)
		g.Expect(cong.Pattern().Shape()).To(Equal(tt.want))
	}

	m = update(m, key(" "))
	g.Expect(m.scene.State()).To(BeAssignableToTypeOf(&swarm.Idle{}))
	g.Expect(m.scene.Swarm().Particles[0].Returning).To(BeTrue())
}

func TestPreviewTickAdvancesUnlessPaused(t *testing.T) {
	g := NewWithT(t)
	m := newModel(t)

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(m.scene.Frame()).To(Equal(1))

	m = update(m, key("p"))
	m = update(m, TickMsg(time.Now()))
	g.Expect(m.scene.Frame()).To(Equal(1))
	g.Expect(m.View()).To(ContainSubstring("paused"))
}

func TestPreviewQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestPreviewResize(t *testing.T) {
	g := NewWithT(t)
	m := newModel(t)
	m = update(m, tea.WindowSizeMsg{Width: 42, Height: 26})

	g.Expect(m.canvas.Width).To(Equal(40))
	g.Expect(m.canvas.Height).To(Equal(20))
	g.Expect(m.View()).To(ContainSubstring("pixelswarm"))
}
