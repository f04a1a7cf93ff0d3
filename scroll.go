package drift

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// defaultWheelSpeed is the scroll distance in pixels per wheel notch.
const defaultWheelSpeed = 48

// ScrollView models the page's vertical scroll state: a content extent, a
// viewport extent, and the current offset, clamped to [0, MaxOffset]. It is
// the single source of truth the starfield reads its scroll progress from,
// re-queried every frame rather than cached.
type ScrollView struct {
	// WheelSpeed is the distance in pixels one wheel notch scrolls.
	WheelSpeed float64

	contentHeight  float64
	viewportHeight float64
	offset         float64

	tween *gween.Tween
}

// NewScrollView creates a ScrollView for the given content and viewport
// extents, scrolled to the top.
func NewScrollView(contentHeight, viewportHeight float64) *ScrollView {
	return &ScrollView{
		WheelSpeed:     defaultWheelSpeed,
		contentHeight:  contentHeight,
		viewportHeight: viewportHeight,
	}
}

// Resize updates the content and viewport extents and re-clamps the offset.
func (v *ScrollView) Resize(contentHeight, viewportHeight float64) {
	v.contentHeight = contentHeight
	v.viewportHeight = viewportHeight
	v.offset = v.clamp(v.offset)
}

// Offset returns the current scroll offset in pixels.
func (v *ScrollView) Offset() float64 {
	return v.offset
}

// SetOffset jumps to the given offset, clamped, cancelling any animation.
func (v *ScrollView) SetOffset(y float64) {
	v.tween = nil
	v.offset = v.clamp(y)
}

// MaxOffset returns the maximum scrollable offset. Content no taller than
// the viewport yields 0.
func (v *ScrollView) MaxOffset() float64 {
	m := v.contentHeight - v.viewportHeight
	if m < 0 {
		return 0
	}
	return m
}

// Progress returns the normalized [0, 1] scroll measure for the current
// offset. See ScrollProgress.
func (v *ScrollView) Progress() float64 {
	return ScrollProgress(v.offset, v.contentHeight, v.viewportHeight)
}

// ViewportHeight returns the viewport extent.
func (v *ScrollView) ViewportHeight() float64 {
	return v.viewportHeight
}

// HandleWheel applies a wheel delta (in notches, positive scrolling down).
// Manual scrolling interrupts any ScrollTo animation in flight.
func (v *ScrollView) HandleWheel(notches float64) {
	if notches == 0 {
		return
	}
	v.tween = nil
	v.offset = v.clamp(v.offset + notches*v.WheelSpeed)
}

// ScrollTo animates the offset to y over duration seconds with the given
// easing function. The target is clamped before the tween starts.
func (v *ScrollView) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	v.tween = gween.New(float32(v.offset), float32(v.clamp(y)), duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in flight.
func (v *ScrollView) Scrolling() bool {
	return v.tween != nil
}

// Update advances any active scroll animation by dt seconds.
func (v *ScrollView) Update(dt float32) {
	if v.tween == nil {
		return
	}
	val, done := v.tween.Update(dt)
	v.offset = v.clamp(float64(val))
	if done {
		v.tween = nil
	}
}

func (v *ScrollView) clamp(y float64) float64 {
	if y < 0 {
		return 0
	}
	if m := v.MaxOffset(); y > m {
		return m
	}
	return y
}
