// Package drift renders the decorative behavior of a scrollable page with
// [Ebitengine]: a starfield backdrop whose density and brightness track
// scroll progress, scroll-triggered reveal animations, an image lightbox,
// smooth-scroll navigation, a transient toast, and a key-sequence easter egg
// that toggles a falling-glyph overlay.
//
// # Quick start
//
// Create a [Field], size it to the viewport, and drive it from an
// [ebiten.Game]:
//
//	field := drift.NewField(drift.DefaultFieldConfig())
//	field.Resize(960, 640)
//
//	func (g *Game) Update() error {
//		g.scroll.Update(1.0 / float32(ebiten.TPS()))
//		g.field.Update()
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.field.Draw(screen, g.scroll.Progress())
//	}
//
// The starfield runs for the lifetime of the page; it has no stop control.
// At the top of the page roughly 10% of the pool is visible at half
// brightness, growing quadratically to the full pool at full brightness as
// the user scrolls to the bottom.
//
// # Scroll model
//
// [ScrollView] owns the page's offset and exposes Progress, the normalized
// [0, 1] scroll measure every scroll-reactive component reads fresh each
// frame. ScrollTo animates navigation with [gween] easing; the mouse wheel
// interrupts it.
//
// # Overlays
//
// [GlyphRain] is an independently clocked, explicitly cancellable
// falling-glyph overlay, conventionally toggled by the konami sequence via
// [KeySequence]. [Toast] and [Lightbox] are transient overlays with tweened
// entrances and exits. [Chime] plays short synthesized notes through
// [beep]; it degrades to silence when no audio device is available.
//
// A runnable portfolio page wiring everything together lives in
// examples/portfolio.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [beep]: https://github.com/gopxl/beep
package drift
