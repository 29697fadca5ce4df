package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heartclock/internal/config"
	"github.com/iburimskiy/heartclock/internal/hearts"
	"github.com/iburimskiy/heartclock/internal/layout"
	"github.com/iburimskiy/heartclock/internal/music"
)

const (
	// ebitenutil debug font cell
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
	textImageWidth   = 64 * debugGlyphWidth

	backgroundBand = 8
)

const (
	heartR uint8 = 120
	heartG uint8 = 230
	heartB uint8 = 196

	heartAlpha = 0.9
	shineAlpha = 0.45
	shineScale = 0.6
	shineFade  = 0.8
)

var labels = [6]string{"years", "months", "days", "hours", "minutes", "seconds"}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawGlow(screen)
	g.drawHearts(screen)
	g.drawCounter(screen)
	g.drawButton(screen)

	status := ""
	switch {
	case g.player.Loaded() == "":
		status = "No music loaded - O to choose a track, Esc/Q to quit"
	case g.toggle.Indicator() == music.IndicatorPlaying:
		status = "Playing - Space to pause, O for another track"
	default:
		status = "Paused - Space to play, O for another track"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for y := 0; y < h; y += backgroundBand {
		ratio := float64(y) / float64(h)
		hue := 165 + 10*math.Sin(g.time*config.ColorShiftSpeed*10+ratio*math.Pi)
		r, gv, b := hsvToRgb(hue, 0.6, 0.06+0.06*ratio)
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), backgroundBand, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawGlow(screen *ebiten.Image) {
	peak := hearts.GlowAlpha + config.GlowMusicBoost*g.level
	for _, ring := range hearts.Glow(g.viewW, g.viewH, peak, config.GlowSteps) {
		s := g.scale
		vector.DrawFilledCircle(screen,
			float32(ring.X*s), float32(ring.Y*s), float32(ring.Radius*s),
			nrgba(heartR, heartG, heartB, ring.Alpha), true)
	}
}

func (g *Game) drawHearts(screen *ebiten.Image) {
	for _, p := range g.field.Particles() {
		alpha := clamp01(p.Alpha)
		g.fillHeart(screen, p, p.Size, nrgba(heartR, heartG, heartB, heartAlpha*alpha))
		if p.Shine {
			g.fillHeart(screen, p, p.Size*shineScale, nrgba(255, 255, 255, shineAlpha*alpha*shineFade))
		}
	}
}

func (g *Game) fillHeart(screen *ebiten.Image, p hearts.Particle, size float64, clr color.NRGBA64) {
	place := func(q hearts.Point) (float32, float32) {
		q = q.Place(p.Rotation, p.X, p.Y).Scale(g.scale)
		return float32(q.X), float32(q.Y)
	}

	var path vector.Path
	start, curves := hearts.Outline(size)
	path.MoveTo(place(start))
	for _, c := range curves {
		x1, y1 := place(c.C1)
		x2, y2 := place(c.C2)
		x3, y3 := place(c.To)
		path.CubicTo(x1, y1, x2, y2, x3, y3)
	}
	path.Close()

	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	cr := float32(clr.R) / 0xffff
	cg := float32(clr.G) / 0xffff
	cb := float32(clr.B) / 0xffff
	ca := float32(clr.A) / 0xffff
	for i := range g.vertices {
		v := &g.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.NonZero
	screen.DrawTriangles(g.vertices, g.indices, whiteSubImage, op)
}

func (g *Game) drawCounter(screen *ebiten.Image) {
	reading := g.counter.Latest()
	fields := reading.Breakdown.Fields()

	cellW := math.Min(140, g.viewW/8)
	cellH := cellW * 0.9
	s := float32(g.scale)
	for i, value := range fields {
		cell := layout.CounterCell(i, g.viewW, g.viewH, cellW, cellH)
		x, y := float32(cell.X)*s, float32(cell.Y)*s
		w, h := float32(cell.W)*s, float32(cell.H)*s
		vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 255, G: 255, B: 255, A: 14}, false)
		vector.StrokeRect(screen, x, y, w, h, 1.5*s, color.RGBA{R: heartR, G: heartG, B: heartB, A: 90}, true)

		cx, cy := cell.Center()
		g.drawText(screen, value, cx, cy-cell.H*0.1, cell.H*0.4, color.White)
		g.drawText(screen, labels[i], cx, cell.Y+cell.H*0.8, cell.H*0.14, color.RGBA{R: heartR, G: heartG, B: heartB, A: 255})
	}

	caption := "together since " + g.counter.Reference().Format("02/01/2006 15:04")
	if !reading.Started {
		caption = "counting starts " + g.counter.Reference().Format("02/01/2006 15:04")
	}
	bottom := layout.CounterCell(0, g.viewW, g.viewH, cellW, cellH)
	g.drawText(screen, caption, g.viewW/2, bottom.Y+bottom.H+cellH*0.35, cellH*0.16, color.RGBA{R: 220, G: 240, B: 235, A: 200})
}

func (g *Game) drawButton(screen *ebiten.Image) {
	button := layout.ToggleButton(g.viewW)
	playing := g.toggle.Indicator() == music.IndicatorPlaying

	var bgColor color.Color
	switch {
	case g.buttonPressed:
		bgColor = color.RGBA{R: 40, G: 90, B: 80, A: 255} // Pressed
	case g.buttonHovered:
		bgColor = color.RGBA{R: 60, G: 120, B: 105, A: 255} // Hovered
	case playing:
		bgColor = color.RGBA{R: 70, G: 140, B: 120, A: 230}
	default:
		bgColor = color.RGBA{R: 50, G: 60, B: 60, A: 200} // Paused
	}

	s := float32(g.scale)
	x, y := float32(button.X)*s, float32(button.Y)*s
	w, h := float32(button.W)*s, float32(button.H)*s
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2*s, color.RGBA{R: heartR, G: heartG, B: heartB, A: 255}, false)

	text := "Music: off"
	if playing {
		text = "Music: on"
	}
	cx, cy := button.Center()
	g.drawText(screen, text, cx, cy, debugGlyphHeight, color.White)
}

// drawText renders s with the debug font centred on (cx, cy) in viewport
// pixels, scaled so a glyph is size pixels tall.
func (g *Game) drawText(screen *ebiten.Image, s string, cx, cy, size float64, clr color.Color) {
	n := min(len(s), textImageWidth/debugGlyphWidth)
	if n == 0 {
		return
	}
	g.textImg.Clear()
	ebitenutil.DebugPrint(g.textImg, s[:n])
	src := g.textImg.SubImage(image.Rect(0, 0, n*debugGlyphWidth, debugGlyphHeight)).(*ebiten.Image)

	k := size / debugGlyphHeight * g.scale
	w := float64(n*debugGlyphWidth) * k
	h := debugGlyphHeight * k

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(cx*g.scale-w/2, cy*g.scale-h/2)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(src, op)
}
