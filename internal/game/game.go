// Package game hosts the stats chart in an ebiten window: it wires the frame
// loop to the widget, paints it through an ebiten canvas and adds the demo
// UI (open button, status line, fade-in, completion chime).
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/statsview/internal/anim"
	"github.com/iburimskiy/statsview/internal/chart"
	"github.com/iburimskiy/statsview/internal/config"
	"github.com/iburimskiy/statsview/internal/dataset"
)

var (
	backgroundColor = color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}
	headerColor     = color.RGBA{R: 20, G: 25, B: 35, A: 255}
)

// Options configure a Game.
type Options struct {
	Config *config.Config
	Style  chart.Style
	Rand   *rand.Rand
	// Snapshot, when set, is the PNG path the finished frame is written to
	// before the game quits.
	Snapshot string
}

// Game is the ebiten host of a single stats chart.
type Game struct {
	cfg       *config.Config
	rng       *rand.Rand
	scheduler *anim.Scheduler
	chart     *chart.PieChart
	canvas    *ebitenCanvas
	layer     *ebiten.Image
	chime     *chime

	// fade-in of the chart layer
	fade  *anim.Ticker
	alpha float64

	width, height int
	dirty         bool

	runStart  time.Time
	runTime   time.Duration
	runFrames int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	snapshot      string
	snapshotTaken bool
	lastErr       error
}

// New builds the host and its chart. The chart starts with the configured
// data.
func New(opts Options) (*Game, error) {
	canvas, err := newEbitenCanvas()
	if err != nil {
		return nil, err
	}
	ch, err := newChime(opts.Config.Sound.Enabled, opts.Config.Sound.Volume)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       opts.Config,
		rng:       opts.Rand,
		scheduler: anim.NewScheduler(nil),
		canvas:    canvas,
		chime:     ch,
		dirty:     true,
		prevKey:   map[ebiten.Key]bool{},
		snapshot:  opts.Snapshot,
	}
	g.chart = chart.New(opts.Style, g.scheduler,
		chart.WithRand(opts.Rand),
		chart.WithInvalidate(g.invalidate),
	)
	g.chart.OnAnimationStart(g.onAnimationStart)
	g.chart.OnAnimationEnd(g.onAnimationEnd)

	g.fade = g.scheduler.NewTicker()
	g.fade.Start(time.Duration(opts.Config.Fade.DurationMS)*time.Millisecond, func(p float64) {
		g.alpha = p
		g.invalidate()
	}, nil)

	if len(opts.Config.Data) > 0 {
		g.SetData(opts.Config.Data)
	}
	return g, nil
}

// Run opens the window and blocks until the game quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Frames are only repainted when something changed.
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// SetData assigns a new value series, restarting the reveal.
func (g *Game) SetData(values []float64) {
	g.chart.SetData(values)
	log.Printf("data set: %v", values)
}

func (g *Game) invalidate() {
	g.dirty = true
	if g.chart != nil && g.chart.Animating() {
		g.runFrames++
	}
}

func (g *Game) onAnimationStart() {
	g.runStart = time.Now()
	g.runTime = 0
	g.runFrames = 0
	log.Println("animation start")
}

func (g *Game) onAnimationEnd() {
	g.runTime = time.Since(g.runStart)
	log.Printf("animation end after %s", formatDuration(g.runTime))
	if g.cfg.Logging.Level == "debug" {
		log.Printf("animation ticks: %d", g.runFrames)
	}
	g.chime.play()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// Handle button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	hovered := pointIn(mouseX, mouseY, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight)
	if hovered != g.buttonHovered {
		g.buttonHovered = hovered
		g.dirty = true
	}

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
		g.dirty = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			// Button was clicked
			if err := g.openValuesFile(); err != nil {
				g.setErr(err)
			}
		}
		g.buttonPressed = false
		g.dirty = true
	}

	if justPressed(ebiten.KeySpace) {
		g.SetData(g.chart.Data())
	}
	if justPressed(ebiten.KeyR) {
		g.SetData(dataset.Random(g.rng))
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.snapshotTaken {
		return ebiten.Termination
	}

	g.scheduler.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	screen.Fill(backgroundColor)

	if g.layer != nil {
		g.layer.Clear()
		g.canvas.setTarget(g.layer)
		g.chart.OnDraw(g.canvas)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(config.ChartPadding, config.HeaderHeight+config.ChartPadding)
		op.ColorScale.ScaleAlpha(float32(g.alpha))
		screen.DrawImage(g.layer, op)
	}

	g.drawHeader(screen)

	if g.snapshot != "" && !g.snapshotTaken && !g.chart.Animating() && g.fade.State() == anim.Idle {
		if err := savePNG(screen, g.snapshot); err != nil {
			log.Printf("snapshot error: %v", err)
		} else {
			log.Printf("snapshot written to %s", g.snapshot)
		}
		g.snapshotTaken = true
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == g.width && outsideHeight == g.height {
		return g.width, g.height
	}
	g.width, g.height = outsideWidth, outsideHeight

	chartW := outsideWidth - 2*config.ChartPadding
	chartH := outsideHeight - config.HeaderHeight - 2*config.ChartPadding
	g.chart.OnBoundsChanged(float64(max(chartW, 0)), float64(max(chartH, 0)))

	if g.layer != nil {
		g.layer.Deallocate()
		g.layer = nil
	}
	if chartW > 0 && chartH > 0 {
		g.layer = ebiten.NewImage(chartW, chartH)
	}
	g.dirty = true
	return g.width, g.height
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), config.HeaderHeight, headerColor, false)

	g.drawButton(screen)

	textX := config.ButtonX + config.ButtonWidth + 16
	ebitenutil.DebugPrintAt(screen, g.status(), textX, config.ButtonY+4)
	ebitenutil.DebugPrintAt(screen, "Space: replay  R: random data  Esc/Q: quit", textX, config.ButtonY+20)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	// Button text
	label := "Open data"
	textWidth := len(label) * 6 // debug font glyph width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}

func (g *Game) status() string {
	var status string
	switch {
	case len(g.chart.Data()) == 0:
		status = "No data - click the button to open a values file"
	case g.chart.Animating():
		status = fmt.Sprintf("Animating %3.0f%%", g.chart.Progress()*100)
	default:
		status = "Done in " + formatDuration(g.runTime)
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) setErr(err error) {
	log.Printf("error: %v", err)
	g.lastErr = err
	g.dirty = true
}

func (g *Game) openValuesFile() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Values File"),
		zenity.FileFilters{{
			Name:     "Values",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	values, err := dataset.Load(filename)
	if err != nil {
		return err
	}
	log.Printf("loaded %d values from %s", len(values), filename)
	g.lastErr = nil
	g.SetData(values)
	return nil
}
