package drift

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	lightboxDim           = 0.82
	lightboxFit           = 0.9
	lightboxZoomFrom      = 0.85
	lightboxOpenDuration  = 0.25
	lightboxCloseDuration = 0.2
)

// Lightbox displays a single image over a dimmed page. Open zooms the image
// in from slightly below full size; Close reverses the fade. One image at a
// time; opening while visible swaps the image and replays the entrance.
type Lightbox struct {
	img     *ebiten.Image
	open    bool
	closing bool

	dim       float64
	zoom      float64
	dimTween  *gween.Tween
	zoomTween *gween.Tween
}

// NewLightbox creates a closed Lightbox.
func NewLightbox() *Lightbox {
	return &Lightbox{}
}

// Open shows img with the entrance animation. A nil image is ignored.
func (l *Lightbox) Open(img *ebiten.Image) {
	if img == nil {
		return
	}
	l.img = img
	l.open = true
	l.closing = false
	l.dimTween = gween.New(float32(l.dim), lightboxDim, lightboxOpenDuration, ease.OutQuad)
	l.zoomTween = gween.New(lightboxZoomFrom, 1, lightboxOpenDuration, ease.OutQuad)
}

// Close starts the exit animation. The lightbox stays visible until the
// fade completes.
func (l *Lightbox) Close() {
	if !l.open || l.closing {
		return
	}
	l.closing = true
	l.dimTween = gween.New(float32(l.dim), 0, lightboxCloseDuration, ease.OutQuad)
	l.zoomTween = gween.New(float32(l.zoom), lightboxZoomFrom, lightboxCloseDuration, ease.OutQuad)
}

// Visible reports whether the lightbox is on screen (including while closing).
func (l *Lightbox) Visible() bool {
	return l.open
}

// Update advances the open or close animation by dt seconds.
func (l *Lightbox) Update(dt float64) {
	if !l.open {
		return
	}
	done := true
	if l.dimTween != nil {
		val, d := l.dimTween.Update(float32(dt))
		l.dim = float64(val)
		if d {
			l.dimTween = nil
		} else {
			done = false
		}
	}
	if l.zoomTween != nil {
		val, d := l.zoomTween.Update(float32(dt))
		l.zoom = float64(val)
		if d {
			l.zoomTween = nil
		} else {
			done = false
		}
	}
	if l.closing && done {
		l.open = false
		l.closing = false
		l.img = nil
	}
}

// Draw renders the dim layer and the centered image, scaled to fit
// lightboxFit of the viewport while preserving aspect ratio.
func (l *Lightbox) Draw(screen *ebiten.Image) {
	if !l.open || screen == nil {
		return
	}
	bounds := screen.Bounds()
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sw, sh)
	op.ColorScale.ScaleWithColor(premultiply(Color{}, l.dim))
	screen.DrawImage(whitePixel(), op)

	ib := l.img.Bounds()
	iw, ih := float64(ib.Dx()), float64(ib.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	fit := fitScale(iw, ih, sw*lightboxFit, sh*lightboxFit) * l.zoom

	imgOp := &ebiten.DrawImageOptions{}
	imgOp.GeoM.Scale(fit, fit)
	imgOp.GeoM.Translate((sw-iw*fit)/2, (sh-ih*fit)/2)
	imgOp.ColorScale.ScaleAlpha(float32(l.dim / lightboxDim))
	screen.DrawImage(l.img, imgOp)
}

// fitScale returns the uniform scale that fits a w-by-h box inside maxW by
// maxH without enlarging past the limits' smaller ratio.
func fitScale(w, h, maxW, maxH float64) float64 {
	sx := maxW / w
	sy := maxH / h
	if sx < sy {
		return sx
	}
	return sy
}
