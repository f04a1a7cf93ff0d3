package drift

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// revealBand is the fraction of the viewport an item must enter before
	// its reveal runs: anchors above offset + viewport*revealBand trigger.
	revealBand = 0.85
	// revealRise is the upward drift in pixels during a reveal.
	revealRise = 24.0
	// revealDuration is the reveal animation length in seconds.
	revealDuration = 0.6
)

// RevealItem is one scroll-triggered element. Before its anchor scrolls into
// the viewport band it is invisible and shifted down by revealRise; entering
// the band starts a one-shot fade-and-rise that never re-triggers.
type RevealItem struct {
	anchorY   float64
	triggered bool

	alpha      *gween.Tween
	rise       *gween.Tween
	alphaValue float64
	riseValue  float64
}

// Alpha returns the item's current opacity in [0, 1].
func (it *RevealItem) Alpha() float64 {
	return it.alphaValue
}

// Rise returns the item's current vertical draw offset in pixels.
func (it *RevealItem) Rise() float64 {
	return it.riseValue
}

// Triggered reports whether the reveal has started.
func (it *RevealItem) Triggered() bool {
	return it.triggered
}

// SetAnchor moves the item's content-space anchor, e.g. after a re-layout.
// An already-triggered item keeps its animation state.
func (it *RevealItem) SetAnchor(y float64) {
	it.anchorY = y
}

// Reveals manages a set of scroll-triggered reveal items for one page.
type Reveals struct {
	items []*RevealItem
}

// NewReveals creates an empty reveal manager.
func NewReveals() *Reveals {
	return &Reveals{}
}

// Add registers a reveal item anchored at the given content-space Y and
// returns it for drawing queries.
func (r *Reveals) Add(anchorY float64) *RevealItem {
	it := &RevealItem{
		anchorY:   anchorY,
		riseValue: revealRise,
	}
	r.items = append(r.items, it)
	return it
}

// Update triggers items whose anchor has entered the viewport band and
// advances running animations by dt seconds.
func (r *Reveals) Update(scrollOffset, viewportHeight float64, dt float32) {
	limit := scrollOffset + viewportHeight*revealBand
	for _, it := range r.items {
		if !it.triggered && it.anchorY < limit {
			it.triggered = true
			it.alpha = gween.New(0, 1, revealDuration, ease.OutQuad)
			it.rise = gween.New(revealRise, 0, revealDuration, ease.OutQuad)
		}
		if it.alpha != nil {
			val, done := it.alpha.Update(dt)
			it.alphaValue = float64(val)
			if done {
				it.alpha = nil
			}
		}
		if it.rise != nil {
			val, done := it.rise.Update(dt)
			it.riseValue = float64(val)
			if done {
				it.rise = nil
			}
		}
	}
}
