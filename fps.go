package drift

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FPSWidget displays the current FPS and TPS in the top-left corner.
// The readout refreshes every ~0.5 seconds. Hidden by default.
type FPSWidget struct {
	visible    bool
	lastUpdate float64
	readout    string
}

// NewFPSWidget creates a hidden FPSWidget.
func NewFPSWidget() *FPSWidget {
	return &FPSWidget{}
}

// Toggle flips the widget's visibility.
func (w *FPSWidget) Toggle() {
	w.visible = !w.visible
}

// Visible reports whether the widget is shown.
func (w *FPSWidget) Visible() bool {
	return w.visible
}

// Update refreshes the readout on its half-second cadence.
func (w *FPSWidget) Update(dt float64) {
	if !w.visible {
		return
	}
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 && w.readout != "" {
		return
	}
	w.lastUpdate = 0
	w.readout = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Draw renders the readout over a semi-transparent background.
func (w *FPSWidget) Draw(screen *ebiten.Image) {
	if !w.visible || screen == nil {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, 100, 32, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrint(screen, w.readout)
}
