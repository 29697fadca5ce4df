// Package game is the window view: the counter, the floating hearts and the
// music toggle, driven by the Ebitengine frame loop.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heartclock/internal/config"
	"github.com/iburimskiy/heartclock/internal/counter"
	"github.com/iburimskiy/heartclock/internal/hearts"
	"github.com/iburimskiy/heartclock/internal/layout"
	"github.com/iburimskiy/heartclock/internal/logger"
	"github.com/iburimskiy/heartclock/internal/music"
)

// Music is the playback side the view needs.
type Music interface {
	music.Player
	Load(path string) error
	Loaded() string
	Level() float64
}

type pickResult struct {
	path string
	err  error
}

// Game implements ebiten.Game.
type Game struct {
	log     *logger.Logger
	counter *counter.Counter
	field   *hearts.Field
	player  Music
	toggle  *music.Toggle

	// viewport in window pixels; the surface is scale times larger
	viewW, viewH float64
	scale        float64

	// button state
	buttonHovered bool
	buttonPressed bool

	// viz
	time  float64
	level float64

	// file dialog
	dialogOpen bool
	picked     chan pickResult

	lastErr error

	textImg  *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates the view. The counter is expected to be started already.
func New(cfg *config.Config, c *counter.Counter, player Music, toggle *music.Toggle, log *logger.Logger) *Game {
	if log == nil {
		log = logger.Discard()
	}
	return &Game{
		log:     log.WithFields("component", "game"),
		counter: c,
		field:   hearts.NewField(cfg.MaxParticles, nil),
		player:  player,
		toggle:  toggle,
		viewW:   float64(cfg.Window.Width),
		viewH:   float64(cfg.Window.Height),
		scale:   1,
		picked:  make(chan pickResult, 1),
		textImg: ebiten.NewImage(textImageWidth, debugGlyphHeight),
	}
}

// Update ends the loop once the counter has stopped, which happens when the
// run context is cancelled.
func (g *Game) Update() error {
	select {
	case <-g.counter.Done():
		g.log.Info("counter stopped, closing window")
		return ebiten.Termination
	default:
	}

	g.handlePointer()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggle.Click()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.chooseTrack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.receiveTrack()

	g.time += 1.0 / float64(ebiten.TPS())
	g.field.Step()
	g.level = music.Smooth(g.level, g.player.Level(), config.SmoothingFactor)
	return nil
}

func (g *Game) handlePointer() {
	mouseX, mouseY := ebiten.CursorPosition()
	x, y := float64(mouseX)/g.scale, float64(mouseY)/g.scale

	g.buttonHovered = layout.ToggleButton(g.viewW).Contains(x, y)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.toggle.Click()
		} else {
			g.toggle.Unlock()
		}
		g.buttonPressed = false
	}
}

// Layout sizes the drawing surface to the window at the monitor's scale
// factor, capped at layout.MaxDeviceScale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	factor := 1.0
	if m := ebiten.Monitor(); m != nil {
		factor = m.DeviceScaleFactor()
	}
	g.scale = layout.DeviceScale(factor)

	if g.field.Resize(float64(outsideWidth), float64(outsideHeight)) {
		g.viewW, g.viewH = g.field.Size()
		g.log.Debug("viewport resized", "width", outsideWidth, "height", outsideHeight, "scale", g.scale)
	}
	return layout.Surface(outsideWidth, outsideHeight, g.scale)
}

func (g *Game) chooseTrack() {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Choose background music"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: music.Patterns,
			}},
		)
		g.picked <- pickResult{path: path, err: err}
	}()
}

// receiveTrack loads a file picked in the dialog on the update goroutine.
func (g *Game) receiveTrack() {
	var res pickResult
	select {
	case res = <-g.picked:
	default:
		return
	}
	g.dialogOpen = false

	if res.err != nil {
		if !errors.Is(res.err, zenity.ErrCanceled) {
			g.fail(fmt.Errorf("file dialog: %w", res.err))
		}
		return
	}
	if err := g.player.Load(res.path); err != nil {
		g.fail(err)
		return
	}
	g.lastErr = nil
	g.toggle.Autoplay()
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.log.Error("window action failed", "error", err)
}
