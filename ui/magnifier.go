package ui

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/dixieflatline76/Wiggle/pkg/picker"
)

var (
	magnifierBackground = color.NRGBA{R: 32, G: 32, B: 36, A: 255}
	crosshairColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
)

// Magnifier renders the image around the preview cursor at the preview zoom.
// Dragging on it moves the cursor relatively, arrow keys step it and Enter
// commits it once the widget has focus.
type Magnifier struct {
	widget.BaseWidget

	preview *picker.Preview
	tracker *picker.Tracker
	source  image.Image

	raster   *canvas.Raster
	onChange func()
	onZoom   func(float64)
}

var (
	_ fyne.Draggable  = (*Magnifier)(nil)
	_ fyne.Focusable  = (*Magnifier)(nil)
	_ fyne.Tappable   = (*Magnifier)(nil)
	_ fyne.Scrollable = (*Magnifier)(nil)
)

// NewMagnifier creates a preview widget for the given controller.
func NewMagnifier(preview *picker.Preview, tracker *picker.Tracker) *Magnifier {
	m := &Magnifier{preview: preview, tracker: tracker}
	m.raster = canvas.NewRaster(m.draw)
	m.ExtendBaseWidget(m)
	return m
}

// SetSource sets the full resolution image shown in the preview.
func (m *Magnifier) SetSource(img image.Image) {
	m.source = img
	m.Refresh()
}

// SetOnChange sets the function called after the cursor or selection changed
// through this widget.
func (m *Magnifier) SetOnChange(fn func()) {
	m.onChange = fn
}

// SetOnZoom sets the function called when the wheel changed the zoom.
func (m *Magnifier) SetOnZoom(fn func(float64)) {
	m.onZoom = fn
}

// MinSize is the configured viewport side.
func (m *Magnifier) MinSize() fyne.Size {
	side := float32(m.preview.Viewport().Size)
	return fyne.NewSize(side, side)
}

// CreateRenderer implements fyne.Widget.
func (m *Magnifier) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(m.raster)
}

// Dragged moves the cursor by the finger or pointer travel.
func (m *Magnifier) Dragged(ev *fyne.DragEvent) {
	if !m.preview.Touching() {
		// Fyne has no separate drag start; the first event carries the travel
		// since the press.
		start := ev.AbsolutePosition.Subtract(ev.Dragged)
		m.preview.TouchStart(picker.TouchPoint{PageX: float64(start.X), PageY: float64(start.Y)})
	}
	if m.preview.TouchMove(picker.TouchPoint{PageX: float64(ev.AbsolutePosition.X), PageY: float64(ev.AbsolutePosition.Y)}) {
		m.changed()
	}
}

// DragEnd ends the touch session.
func (m *Magnifier) DragEnd() {
	m.preview.TouchEnd()
	m.changed()
}

// Tapped requests keyboard focus.
func (m *Magnifier) Tapped(_ *fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(m); c != nil {
		c.Focus(m)
	}
}

// Scrolled changes the zoom by one step per notch.
func (m *Magnifier) Scrolled(ev *fyne.ScrollEvent) {
	step := 0.0
	switch {
	case ev.Scrolled.DY > 0:
		step = 0.25
	case ev.Scrolled.DY < 0:
		step = -0.25
	default:
		return
	}
	m.preview.SetZoom(m.preview.Zoom() + step)
	if m.onZoom != nil {
		m.onZoom(m.preview.Zoom())
	}
	m.Refresh()
}

// FocusGained implements fyne.Focusable.
func (m *Magnifier) FocusGained() {}

// FocusLost implements fyne.Focusable.
func (m *Magnifier) FocusLost() {}

// TypedRune implements fyne.Focusable.
func (m *Magnifier) TypedRune(_ rune) {}

// TypedKey steps or commits the cursor.
func (m *Magnifier) TypedKey(ev *fyne.KeyEvent) {
	if m.preview.Key(keyFor(ev.Name)) {
		m.changed()
	}
}

// keyFor maps Fyne key names onto preview keys.
func keyFor(name fyne.KeyName) picker.Key {
	switch name {
	case fyne.KeyUp:
		return picker.KeyUp
	case fyne.KeyDown:
		return picker.KeyDown
	case fyne.KeyLeft:
		return picker.KeyLeft
	case fyne.KeyRight:
		return picker.KeyRight
	case fyne.KeyReturn, fyne.KeyEnter:
		return picker.KeyEnter
	}
	return picker.KeyNone
}

func (m *Magnifier) changed() {
	m.Refresh()
	if m.onChange != nil {
		m.onChange()
	}
}

// draw renders the magnified image for a w×h device pixel raster.
func (m *Magnifier) draw(w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(magnifierBackground), image.Point{}, draw.Src)
	if w == 0 || h == 0 {
		return dst
	}

	if m.source != nil && m.tracker.Ready() {
		vp := m.preview.Viewport()
		a := vp.Affine(m.preview.Cursor())

		// Viewport units to device pixels, and source pixels to logical pixels.
		s := float64(w) / vp.Size
		origin := m.source.Bounds().Min
		aff := f64.Aff3{
			a[0] * s, a[1] * s, (a[2] - a[0]*float64(origin.X)) * s,
			a[3] * s, a[4] * s, (a[5] - a[4]*float64(origin.Y)) * s,
		}

		var interp xdraw.Transformer = xdraw.NearestNeighbor
		if vp.Zoom < 1 {
			interp = xdraw.ApproxBiLinear
		}
		interp.Transform(dst, aff, m.source, m.source.Bounds(), xdraw.Over, nil)
	}

	drawCrosshair(dst)
	return dst
}

// drawCrosshair draws a hairline cross through the centre of dst.
func drawCrosshair(dst *image.RGBA) {
	b := dst.Bounds()
	cx, cy := b.Dx()/2, b.Dy()/2
	gap := max(b.Dx()/40, 2)
	for x := b.Min.X; x < b.Max.X; x++ {
		if x < cx-gap || x > cx+gap {
			dst.Set(x, cy, crosshairColor)
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if y < cy-gap || y > cy+gap {
			dst.Set(cx, y, crosshairColor)
		}
	}
}
