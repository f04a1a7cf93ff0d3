package drift

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// star holds per-star simulation state. Unexported; managed by Field.
type star struct {
	x, y         float64
	z            float64 // depth; acts as a fall-speed multiplier
	radius       float64
	opacity      float64
	twinkleSpeed float64
	twinkleDir   float64 // +1 brightening, -1 dimming
}

// DefaultPoolSize is the pool size used when FieldConfig.PoolSize is not positive.
const DefaultPoolSize = 400

// fallFactor scales depth into per-frame vertical movement.
const fallFactor = 0.2

// FieldConfig controls how stars are spawned and behave.
type FieldConfig struct {
	// PoolSize is the fixed pool length. Values <= 0 select DefaultPoolSize.
	PoolSize int
	// Depth is the range of depth/speed factors assigned at spawn.
	Depth Range
	// Radius is the range of star radii in pixels.
	Radius Range
	// Opacity is the range of initial opacities.
	Opacity Range
	// TwinkleSpeed is the range of per-frame opacity deltas.
	TwinkleSpeed Range
	// MinOpacity and MaxOpacity bound the twinkle bounce. Opacity may
	// overshoot by at most one twinkle step before the direction flips.
	MinOpacity float64
	MaxOpacity float64
	// BaseFraction is the fraction of the pool drawn at scroll progress 0.
	BaseFraction float64
	// Color is the fill color for every star. Alpha is derived per star.
	Color Color
}

// DefaultFieldConfig returns the standard starfield tuning: 400 faint white
// stars, pre-filled across the viewport, 10% visible at the top of the page.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		PoolSize:     DefaultPoolSize,
		Depth:        Range{0.5, 2.5},
		Radius:       Range{0, 1.5},
		Opacity:      Range{0.1, 0.6},
		TwinkleSpeed: Range{0, 0.05},
		MinOpacity:   0.1,
		MaxOpacity:   0.8,
		BaseFraction: 0.1,
		Color:        ColorWhite,
	}
}

// Field owns a fixed-size pool of stars and renders a scroll-proportional
// subset of them each frame. The pool is rebuilt wholesale on Resize; between
// resizes its length never changes. Stars that fall past the bottom edge are
// respawned in place just above the top edge, keeping their pool slot.
type Field struct {
	config FieldConfig
	stars  []star
	width  float64
	height float64
}

// NewField creates a Field with the given config. The pool is empty until
// the first Resize call sizes it to the viewport.
func NewField(cfg FieldConfig) *Field {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = DefaultPoolSize
	}
	if cfg.MaxOpacity <= cfg.MinOpacity {
		cfg.MinOpacity = 0.1
		cfg.MaxOpacity = 0.8
	}
	if cfg.BaseFraction <= 0 || cfg.BaseFraction > 1 {
		cfg.BaseFraction = 0.1
	}
	return &Field{config: cfg}
}

// Config returns a pointer to the field's config for live tuning.
// Pool size changes take effect on the next Resize.
func (f *Field) Config() *FieldConfig {
	return &f.config
}

// Size returns the current pool length.
func (f *Field) Size() int {
	return len(f.stars)
}

// Resize discards the existing pool and allocates a fresh one sized to the
// configured pool length, spread uniformly over the new viewport. Existing
// stars are not rescaled; a resize is a visible restart of the animation.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
	f.stars = make([]star, f.config.PoolSize)
	for i := range f.stars {
		f.spawnStar(&f.stars[i], rand.Float64()*height)
	}
}

// spawnStar initializes s in place at vertical position y.
func (f *Field) spawnStar(s *star, y float64) {
	s.x = rand.Float64() * f.width
	s.y = y
	s.z = f.config.Depth.Random()
	s.radius = f.config.Radius.Random()
	s.opacity = f.config.Opacity.Random()
	s.twinkleSpeed = f.config.TwinkleSpeed.Random()
	s.twinkleDir = 1
}

// Update advances every star by one frame: fall by depth, twinkle with a
// bounce at the opacity bounds, and respawn above the top edge on exit.
func (f *Field) Update() {
	for i := range f.stars {
		s := &f.stars[i]

		s.y += s.z * fallFactor

		s.opacity += s.twinkleSpeed * s.twinkleDir
		if s.opacity > f.config.MaxOpacity || s.opacity < f.config.MinOpacity {
			s.twinkleDir = -s.twinkleDir
		}

		if s.y > f.height {
			// Recycle in place: same slot, fresh parameters, strictly
			// above the top edge so the star re-enters smoothly.
			f.spawnStar(s, -f.config.Radius.Max)
		}
	}
}

// ScrollProgress returns the normalized [0, 1] scroll measure: scrollY over
// the maximum scrollable extent. A non-positive extent (content no taller
// than the viewport) yields 0.
func ScrollProgress(scrollY, contentHeight, viewportHeight float64) float64 {
	extent := contentHeight - viewportHeight
	if extent <= 0 {
		return 0
	}
	return clamp01(scrollY / extent)
}

// VisibleCount returns how many stars draw at the given scroll progress.
// The visible set is an index-order cutoff over the pool: the first N*(base +
// progress^2*(1-base)) stars. The quadratic term makes density grow with an
// ease-in as the page is scrolled, from the base fraction up to the full pool.
func (f *Field) VisibleCount(progress float64) int {
	progress = clamp01(progress)
	base := f.config.BaseFraction
	frac := base + progress*progress*(1-base)
	n := int(float64(len(f.stars)) * frac)
	if n > len(f.stars) {
		n = len(f.stars)
	}
	return n
}

// brightness returns the alpha scale applied to every drawn star at the given
// scroll progress: stars render at half strength at the top of the page and
// full strength at the bottom.
func brightness(progress float64) float64 {
	return 0.5 + clamp01(progress)*0.5
}

// Draw renders the currently visible subset of the pool to screen. A nil
// screen is a no-op, mirroring a missing drawing surface in the host.
func (f *Field) Draw(screen *ebiten.Image, progress float64) {
	if screen == nil {
		return
	}
	scale := brightness(progress)
	for i := 0; i < f.VisibleCount(progress); i++ {
		s := &f.stars[i]
		a := clamp01(s.opacity * scale)
		vector.DrawFilledCircle(screen,
			float32(s.x), float32(s.y), float32(s.radius),
			premultiply(f.config.Color, a), false)
	}
}

// premultiply converts c at alpha a to a premultiplied color.RGBA.
func premultiply(c Color, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * a * 255),
		G: uint8(c.G * a * 255),
		B: uint8(c.B * a * 255),
		A: uint8(a * 255),
	}
}
