package picker

import "math"

// Zoom limits and defaults for the magnified preview.
const (
	DefaultZoom = 2.0
	MinZoom     = 0.25
	MaxZoom     = 15.0
	ZoomStep    = 0.05

	// DefaultSensitivity scales raw finger travel into cursor travel before
	// the zoom divisor is applied.
	DefaultSensitivity = 0.3

	// DefaultViewportSize is the side of the square preview in pixels.
	DefaultViewportSize = 240.0

	// DefaultKeyStep is the logical distance covered by one arrow key press.
	DefaultKeyStep = 1.0
)

// Preview drives the magnified preview cursor. The cursor lives in logical
// space and moves by pointer hover, relative touch drags or arrow keys.
// Enter and the commit button store the cursor like a click would.
type Preview struct {
	store   *Store
	tracker *Tracker

	cursor      Point
	zoom        float64
	sensitivity float64
	keyStep     float64
	viewport    float64

	baseline TouchPoint
	touching bool
	session  bool
}

// NewPreview creates a preview controller with default zoom and sensitivity.
func NewPreview(store *Store, tracker *Tracker) *Preview {
	return &Preview{
		store:       store,
		tracker:     tracker,
		zoom:        DefaultZoom,
		sensitivity: DefaultSensitivity,
		keyStep:     DefaultKeyStep,
		viewport:    DefaultViewportSize,
	}
}

// Cursor returns the current logical cursor.
func (p *Preview) Cursor() Point { return p.cursor }

// Zoom returns the current zoom factor.
func (p *Preview) Zoom() float64 { return p.zoom }

// Sensitivity returns the touch sensitivity constant.
func (p *Preview) Sensitivity() float64 { return p.sensitivity }

// SetSensitivity overrides the touch sensitivity. Non-positive values are ignored.
func (p *Preview) SetSensitivity(s float64) {
	if s > 0 {
		p.sensitivity = s
	}
}

// SetKeyStep overrides the arrow key step. Non-positive values are ignored.
func (p *Preview) SetKeyStep(step float64) {
	if step > 0 {
		p.keyStep = step
	}
}

// SetViewportSize overrides the preview side length. Non-positive values are ignored.
func (p *Preview) SetViewportSize(size float64) {
	if size > 0 {
		p.viewport = size
	}
}

// SetZoom clamps z into [MinZoom, MaxZoom]. The cursor does not move.
func (p *Preview) SetZoom(z float64) {
	p.zoom = ClampZoom(z)
}

// ClampZoom bounds z to the supported zoom range. NaN maps to DefaultZoom.
func ClampZoom(z float64) float64 {
	switch {
	case math.IsNaN(z):
		return DefaultZoom
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}

// Viewport returns the transform currently used to render the preview.
func (p *Preview) Viewport() Viewport {
	return Viewport{Size: p.viewport, Zoom: p.zoom}
}

// Focus moves the cursor to a logical point, as pointer hover does.
func (p *Preview) Focus(pt Point) {
	p.cursor = pt
}

// TouchStart records the finger position as the drag baseline.
func (p *Preview) TouchStart(t TouchPoint) {
	p.baseline = t
	p.touching = true
	p.session = true
}

// TouchMove moves the cursor by the finger travel since the last event,
// scaled by sensitivity/zoom. Dragging the image left moves the cursor
// right. A move without an active baseline is ignored.
func (p *Preview) TouchMove(t TouchPoint) bool {
	if !p.touching {
		return false
	}
	k := p.sensitivity / p.zoom
	p.cursor = p.cursor.Add(Point{
		X: (p.baseline.PageX - t.PageX) * k,
		Y: (p.baseline.PageY - t.PageY) * k,
	})
	p.baseline = t
	return true
}

// TouchEnd drops the baseline. The commit button stays available.
func (p *Preview) TouchEnd() {
	p.touching = false
}

// Touching reports whether a drag baseline is active.
func (p *Preview) Touching() bool { return p.touching }

// CommitVisible reports whether the explicit commit button should be shown:
// only after a touch drag has started at least once for this image.
func (p *Preview) CommitVisible() bool { return p.session }

// Key applies a navigation key. Arrows step the cursor, Enter commits it.
// It reports whether the key was handled; Enter off the image is not.
func (p *Preview) Key(k Key) bool {
	switch k {
	case KeyUp:
		p.cursor.Y -= p.keyStep
	case KeyDown:
		p.cursor.Y += p.keyStep
	case KeyLeft:
		p.cursor.X -= p.keyStep
	case KeyRight:
		p.cursor.X += p.keyStep
	case KeyEnter:
		return p.Commit()
	default:
		return false
	}
	return true
}

// Commit stores the cursor into the zone it classifies to. A cursor outside
// the image is not stored.
func (p *Preview) Commit() bool {
	return commit(p.store, p.tracker.Mapper(), p.cursor)
}

// CommitRounded stores the rounded cursor, as the commit button does.
func (p *Preview) CommitRounded() bool {
	return commit(p.store, p.tracker.Mapper(), p.cursor.Round())
}

// Reset clears the cursor and any touch session, for a new image.
func (p *Preview) Reset() {
	p.cursor = Point{}
	p.baseline = TouchPoint{}
	p.touching = false
	p.session = false
}
