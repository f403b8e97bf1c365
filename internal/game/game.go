package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/pixelswarm/internal/chime"
	"github.com/iburimskiy/pixelswarm/internal/log"
	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/snapshot"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

const windowTitle = "pixelswarm - click a button and hold, S: save SVG, M: mute, Esc/Q: quit"

var shapeKeys = map[ebiten.Key]swarm.Shape{
	ebiten.Key1: swarm.ShapeCircle,
	ebiten.Key2: swarm.ShapeSquare,
	ebiten.Key3: swarm.ShapeTriangle,
}

type Game struct {
	scene  *scene.Scene
	player *chime.Player
	logger *log.Logger

	started   time.Time
	lastErr   error
	lastSaved string
}

func New(s *scene.Scene, player *chime.Player, logger *log.Logger) *Game {
	return &Game{
		scene:   s,
		player:  player,
		logger:  logger,
		started: time.Now(),
	}
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	g.scene.Hover(float64(mouseX), float64(mouseY))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if shape, ok := g.scene.Press(float64(mouseX), float64(mouseY)); ok {
			g.activated(shape)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.scene.Release()
	}

	// number keys behave like holding a button down
	for key, shape := range shapeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.scene.Activate(shape)
			g.activated(shape)
		}
		if inpututil.IsKeyJustReleased(key) {
			g.scene.Release()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshotDialog(); err != nil {
			g.logger.Errorf("save snapshot: %v", err)
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.player != nil {
		g.logger.Infof("audio muted: %v", g.player.ToggleMute())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.player != nil {
		g.scene.SetPulse(g.player.Level())
	}
	g.scene.Tick()
	return nil
}

func (g *Game) activated(shape swarm.Shape) {
	if g.player != nil {
		g.player.Play(shape)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screenCanvas{screen: screen})

	status := formatDuration(time.Since(g.started)) + " | " + g.scene.Status()
	if g.lastSaved != "" {
		status += " | saved " + g.lastSaved
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Size()
}

func (g *Game) saveSnapshotDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("pixelswarm.svg"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "SVG image",
			Patterns: []string{"*.svg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := SaveSnapshot(filename, g.scene); err != nil {
		return err
	}
	g.lastSaved = filename
	g.lastErr = nil
	g.logger.Infof("saved snapshot at frame %d to %s", g.scene.Frame(), filename)
	return nil
}

// SaveSnapshot writes the current frame of s to path as SVG.
func SaveSnapshot(path string, s *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := snapshot.Write(f, s); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	w, h := g.scene.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle)

	g.logger.Infof("window %dx%d open", w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
