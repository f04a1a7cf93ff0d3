package drift

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ToastSeverity defines message type for styling.
type ToastSeverity uint8

const (
	ToastInfo    ToastSeverity = iota // neutral
	ToastSuccess                      // green, positive
	ToastWarning                      // yellow, caution
	ToastError                        // red, failure
)

// toastColors holds per-severity foreground, background, and accent colors.
var toastColors = map[ToastSeverity]struct{ Fg, Bg, Accent Color }{
	ToastInfo: {
		Fg:     Color{0.78, 0.78, 0.78, 1},
		Bg:     Color{0.16, 0.16, 0.2, 1},
		Accent: Color{0.4, 0.6, 1, 1},
	},
	ToastSuccess: {
		Fg:     Color{0.86, 1, 0.86, 1},
		Bg:     Color{0.12, 0.24, 0.12, 1},
		Accent: Color{0.3, 0.86, 0.3, 1},
	},
	ToastWarning: {
		Fg:     Color{1, 0.94, 0.78, 1},
		Bg:     Color{0.24, 0.2, 0.08, 1},
		Accent: Color{1, 0.78, 0.24, 1},
	},
	ToastError: {
		Fg:     Color{1, 0.86, 0.86, 1},
		Bg:     Color{0.24, 0.1, 0.1, 1},
		Accent: Color{1, 0.3, 0.3, 1},
	},
}

// toast lifecycle phases.
const (
	toastHidden = iota
	toastFadeIn
	toastHold
	toastFadeOut
)

const (
	toastFadeInDuration  = 0.2
	toastFadeOutDuration = 0.35
	toastPadding         = 12.0
	toastMargin          = 20.0
	toastAccentWidth     = 4.0
	toastTextScale       = 1.0
)

// Toast shows one transient notification at a time in the bottom-right
// corner: fade in, hold, fade out. Showing a new message while one is
// visible restarts the toast with the new content.
type Toast struct {
	message  string
	severity ToastSeverity

	phase int
	alpha float64
	tween *gween.Tween
	hold  float64
}

// NewToast creates a hidden Toast.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays message with the given severity for hold seconds (between
// the fades).
func (t *Toast) Show(message string, severity ToastSeverity, hold float64) {
	t.message = message
	t.severity = severity
	t.hold = hold
	t.phase = toastFadeIn
	t.tween = gween.New(float32(t.alpha), 1, toastFadeInDuration, ease.OutQuad)
}

// Visible reports whether the toast is currently on screen.
func (t *Toast) Visible() bool {
	return t.phase != toastHidden
}

// Update advances the toast lifecycle by dt seconds.
func (t *Toast) Update(dt float64) {
	switch t.phase {
	case toastFadeIn:
		val, done := t.tween.Update(float32(dt))
		t.alpha = float64(val)
		if done {
			t.phase = toastHold
		}
	case toastHold:
		t.hold -= dt
		if t.hold <= 0 {
			t.phase = toastFadeOut
			t.tween = gween.New(float32(t.alpha), 0, toastFadeOutDuration, ease.OutQuad)
		}
	case toastFadeOut:
		val, done := t.tween.Update(float32(dt))
		t.alpha = float64(val)
		if done {
			t.phase = toastHidden
		}
	}
}

// Draw renders the toast box in the bottom-right corner of screen.
func (t *Toast) Draw(screen *ebiten.Image) {
	if t.phase == toastHidden || screen == nil {
		return
	}
	c := toastColors[t.severity]

	textW := TextWidth(t.message, toastTextScale)
	boxW := textW + toastPadding*2 + toastAccentWidth
	boxH := glyphHeight*toastTextScale + toastPadding*2

	bounds := screen.Bounds()
	x := float64(bounds.Dx()) - boxW - toastMargin
	y := float64(bounds.Dy()) - boxH - toastMargin

	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(boxW), float32(boxH),
		premultiply(c.Bg, t.alpha*0.92), false)
	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(toastAccentWidth), float32(boxH),
		premultiply(c.Accent, t.alpha), false)
	DrawText(screen, t.message,
		x+toastAccentWidth+toastPadding, y+toastPadding,
		toastTextScale, c.Fg.WithAlpha(t.alpha))
}
