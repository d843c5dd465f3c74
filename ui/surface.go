package ui

import (
	"image"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dixieflatline76/Wiggle/pkg/picker"
)

var markerColors = [picker.ZoneCount]color.NRGBA{
	{R: 230, G: 57, B: 70, A: 255},
	{R: 42, G: 157, B: 143, A: 255},
	{R: 69, G: 123, B: 157, A: 255},
}

// Surface shows the loaded image and turns mouse movement and taps into
// display-space points. Its size always equals the drawn image size, so the
// raw event position is the display coordinate.
type Surface struct {
	widget.BaseWidget

	tracker *picker.Tracker
	store   *picker.Store

	image   *canvas.Image
	markers *canvas.Raster

	onMove func(raw picker.Point)
	onTap  func(raw picker.Point)
}

var (
	_ picker.Surface    = (*Surface)(nil)
	_ desktop.Hoverable = (*Surface)(nil)
	_ fyne.Tappable     = (*Surface)(nil)
)

// NewSurface creates an empty picking surface reporting its size to tracker
// and drawing the points held in store.
func NewSurface(tracker *picker.Tracker, store *picker.Store) *Surface {
	s := &Surface{tracker: tracker, store: store}
	s.image = canvas.NewImageFromImage(nil)
	s.image.FillMode = canvas.ImageFillStretch
	s.image.ScaleMode = canvas.ImageScaleSmooth
	s.markers = canvas.NewRaster(s.drawMarkers)
	s.ExtendBaseWidget(s)
	return s
}

// SetOnPointerMove implements picker.Surface.
func (s *Surface) SetOnPointerMove(fn func(raw picker.Point)) {
	s.onMove = fn
}

// SetOnPointerTap implements picker.Surface.
func (s *Surface) SetOnPointerTap(fn func(raw picker.Point)) {
	s.onTap = fn
}

// SetImage replaces the shown texture. natural is the size of the original
// image, which may be larger than the texture.
func (s *Surface) SetImage(texture image.Image, natural picker.Size) {
	s.image.Image = texture
	s.image.Refresh()
	size := s.Size()
	s.tracker.Loaded(natural, picker.Size{Width: float64(size.Width), Height: float64(size.Height)})
	s.markers.Refresh()
}

// Aspect returns the natural width/height ratio, or 0 before an image is loaded.
func (s *Surface) Aspect() float32 {
	n := s.tracker.Natural()
	if !n.Measured() {
		return 0
	}
	return float32(n.Width / n.Height)
}

// Resize reports every new size to the tracker.
func (s *Surface) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	s.tracker.Resized(picker.Size{Width: float64(size.Width), Height: float64(size.Height)})
	s.markers.Refresh()
}

// RefreshMarkers redraws the selection markers.
func (s *Surface) RefreshMarkers() {
	s.markers.Refresh()
}

// MinSize keeps the surface usable in small windows.
func (s *Surface) MinSize() fyne.Size {
	return fyne.NewSize(120, 60)
}

// MouseIn is called when a desktop pointer enters the widget.
func (s *Surface) MouseIn(ev *desktop.MouseEvent) {
	s.MouseMoved(ev)
}

// MouseMoved is called when a desktop pointer hovers over the widget.
func (s *Surface) MouseMoved(ev *desktop.MouseEvent) {
	if s.onMove != nil {
		s.onMove(toPoint(ev.Position))
	}
}

// MouseOut is called when a desktop pointer exits the widget.
func (s *Surface) MouseOut() {}

// Tapped commits the tapped point.
func (s *Surface) Tapped(ev *fyne.PointEvent) {
	// Reject taps reported outside the widget bounds.
	size := s.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 || ev.Position.X >= size.Width || ev.Position.Y >= size.Height {
		return
	}
	if s.onTap != nil {
		s.onTap(toPoint(ev.Position))
	}
}

// CreateRenderer implements fyne.Widget.
func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceRenderer{surface: s, objects: []fyne.CanvasObject{s.image, s.markers}}
}

// drawMarkers paints a downward triangle with the slot number above every
// picked point. w and h are device pixels.
func (s *Surface) drawMarkers(w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	size := s.Size()
	m := s.tracker.Mapper()
	if s.store == nil || !m.Ready() || size.Width <= 0 || size.Height <= 0 {
		return dst
	}
	px := float64(w) / float64(size.Width)
	py := float64(h) / float64(size.Height)

	for zone, p := range s.store.Snapshot() {
		if p.IsUnset() {
			continue
		}
		d := m.ToDisplay(p)
		x, y := int(d.X*px), int(d.Y*py)
		drawTriangle(dst, x, y, markerSize, markerColors[zone])
		drawLabel(dst, x, y-markerSize-2, strconv.Itoa(zone+1), markerColors[zone])
	}
	return dst
}

// drawTriangle fills a downward pointing triangle whose tip sits on (x, y).
func drawTriangle(dst *image.NRGBA, x, y, size int, c color.NRGBA) {
	for row := 0; row < size; row++ {
		half := row / 2
		ty := y - row
		for tx := x - half; tx <= x+half; tx++ {
			if (image.Point{X: tx, Y: ty}).In(dst.Rect) {
				dst.SetNRGBA(tx, ty, c)
			}
		}
	}
}

// drawLabel writes text centred on x with its baseline at y.
func drawLabel(dst *image.NRGBA, x, y int, text string, c color.NRGBA) {
	bounds, _ := font.BoundString(basicfont.Face7x13, text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x-width/2, y),
	}
	d.DrawString(text)
}

func toPoint(pos fyne.Position) picker.Point {
	return picker.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

type surfaceRenderer struct {
	surface *Surface
	objects []fyne.CanvasObject
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	for _, o := range r.objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return r.surface.MinSize()
}

func (r *surfaceRenderer) Refresh() {
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *surfaceRenderer) Destroy() {}
