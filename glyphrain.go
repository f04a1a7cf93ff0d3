package drift

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultStepInterval = 0.05
	defaultResetChance  = 0.025
	defaultCellWidth    = 14
	defaultCellHeight   = 16
	// trailFade is the alpha of the dimming pass applied to the overlay each
	// step; it controls how long glyph trails linger.
	trailFade = 0.08
)

// defaultAlphabet is the glyph set columns draw from.
const defaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()<>[]{}"

// RainConfig controls the glyph rain overlay.
type RainConfig struct {
	// Alphabet is the set of runes glyphs are drawn from.
	Alphabet []rune
	// CellWidth and CellHeight are the glyph grid spacing in pixels.
	CellWidth  float64
	CellHeight float64
	// StepInterval is the fixed simulation step in seconds. The rain runs on
	// its own cadence, independent of the display frame rate.
	StepInterval float64
	// ResetChance is the per-step probability that a column which has fallen
	// past the bottom edge restarts at the top. Low values stagger restarts.
	ResetChance float64
	// Color is the glyph color. Heads draw at full alpha, trails decay.
	Color Color
}

// DefaultRainConfig returns the classic green rain tuning.
func DefaultRainConfig() RainConfig {
	return RainConfig{
		Alphabet:     []rune(defaultAlphabet),
		CellWidth:    defaultCellWidth,
		CellHeight:   defaultCellHeight,
		StepInterval: defaultStepInterval,
		ResetChance:  defaultResetChance,
		Color:        Color{R: 0.25, G: 1, B: 0.45, A: 1},
	}
}

// GlyphRain is the falling-glyph overlay. It is structurally independent of
// the starfield: its own fixed-step clock, its own per-column state, its own
// overlay surface. Unlike the starfield it is explicitly cancellable; the
// GlyphRain value is the lifecycle handle, owned by whoever toggles it.
type GlyphRain struct {
	config RainConfig

	running bool
	width   float64
	height  float64
	heads   []float64 // head row per column
	accum   float64
	overlay *ebiten.Image
}

// NewGlyphRain creates a stopped GlyphRain with the given config.
func NewGlyphRain(cfg RainConfig) *GlyphRain {
	if len(cfg.Alphabet) == 0 {
		cfg.Alphabet = []rune(defaultAlphabet)
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = defaultCellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = defaultCellHeight
	}
	if cfg.StepInterval <= 0 {
		cfg.StepInterval = defaultStepInterval
	}
	if cfg.ResetChance <= 0 || cfg.ResetChance > 1 {
		cfg.ResetChance = defaultResetChance
	}
	return &GlyphRain{config: cfg}
}

// Running reports whether the rain is active.
func (g *GlyphRain) Running() bool {
	return g.running
}

// Columns returns the number of active columns (0 when stopped).
func (g *GlyphRain) Columns() int {
	return len(g.heads)
}

// Start activates the rain over a surface of the given size. Columns enter
// staggered from above the top edge. Restartable after Stop.
func (g *GlyphRain) Start(width, height float64) {
	g.running = true
	g.accum = 0
	g.allocColumns(width, height)
}

// Stop deactivates the rain, drops column state, and releases the overlay
// surface.
func (g *GlyphRain) Stop() {
	g.running = false
	g.heads = nil
	if g.overlay != nil {
		g.overlay.Deallocate()
		g.overlay = nil
	}
}

// Resize reallocates column state and the overlay for a new surface size.
// No-op while stopped.
func (g *GlyphRain) Resize(width, height float64) {
	if !g.running {
		return
	}
	g.allocColumns(width, height)
	if g.overlay != nil {
		g.overlay.Deallocate()
		g.overlay = nil
	}
}

func (g *GlyphRain) allocColumns(width, height float64) {
	g.width = width
	g.height = height
	cols := int(width / g.config.CellWidth)
	if cols < 1 {
		cols = 1
	}
	rows := height / g.config.CellHeight
	g.heads = make([]float64, cols)
	for i := range g.heads {
		g.heads[i] = -rand.Float64() * rows
	}
}

// Update advances the fixed-step clock by dt seconds, running as many
// simulation steps as have accrued. No-op while stopped.
func (g *GlyphRain) Update(dt float64) {
	if !g.running {
		return
	}
	g.accum += dt
	for g.accum >= g.config.StepInterval {
		g.accum -= g.config.StepInterval
		g.step()
	}
}

// step advances every column head by one row and repaints the overlay:
// one fade pass over the whole surface, then a fresh glyph at each head.
func (g *GlyphRain) step() {
	g.fadeOverlay()

	rows := g.height / g.config.CellHeight
	for i := range g.heads {
		g.heads[i]++
		if g.heads[i] > rows && rand.Float64() < g.config.ResetChance {
			g.heads[i] = 0
		}
		if g.overlay == nil {
			continue
		}
		row := g.heads[i]
		if row < 0 || row > rows {
			continue
		}
		glyph := g.config.Alphabet[rand.IntN(len(g.config.Alphabet))]
		x := float64(i) * g.config.CellWidth
		y := row * g.config.CellHeight
		DrawText(g.overlay, string(glyph), x, y, 1, g.config.Color)
	}
}

// fadeOverlay erases a fraction of the overlay's alpha so older glyphs decay
// toward transparency instead of accumulating.
func (g *GlyphRain) fadeOverlay() {
	if g.overlay == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.width, g.height)
	op.ColorScale.ScaleAlpha(trailFade)
	op.Blend = ebiten.BlendDestinationOut
	g.overlay.DrawImage(whitePixel(), op)
}

// Draw composites the overlay onto screen. The overlay surface is created on
// first draw so the simulation can run headless.
func (g *GlyphRain) Draw(screen *ebiten.Image) {
	if !g.running || screen == nil {
		return
	}
	if g.overlay == nil {
		w, h := int(g.width), int(g.height)
		if w < 1 || h < 1 {
			return
		}
		g.overlay = ebiten.NewImage(w, h)
	}
	screen.DrawImage(g.overlay, nil)
}
