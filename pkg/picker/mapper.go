package picker

// Mapper converts between display space (the rendered, possibly scaled image
// element) and logical space (natural image pixels). Both axes scale
// independently; aspect ratios are not assumed to match.
type Mapper struct {
	display Size
	natural Size
}

// NewMapper creates a mapper for the given display and natural sizes.
func NewMapper(display, natural Size) Mapper {
	return Mapper{display: display, natural: natural}
}

// Display returns the display size the mapper was built with.
func (m Mapper) Display() Size { return m.display }

// Natural returns the natural size the mapper was built with.
func (m Mapper) Natural() Size { return m.natural }

// Ready reports whether both sizes are measured. Commits must be suppressed
// while it returns false.
func (m Mapper) Ready() bool {
	return m.display.Measured() && m.natural.Measured()
}

// Scale returns the natural/display ratio for each axis.
func (m Mapper) Scale() (sx, sy float64) {
	if !m.Ready() {
		return 0, 0
	}
	return m.natural.Width / m.display.Width, m.natural.Height / m.display.Height
}

// ToLogical maps a raw display-space point into logical space.
// An unmeasured surface maps everything to the origin.
func (m Mapper) ToLogical(raw Point) Point {
	if !m.Ready() {
		return Point{}
	}
	sx, sy := m.Scale()
	return Point{X: raw.X * sx, Y: raw.Y * sy}
}

// ToDisplay maps a logical point back into display space for rendering.
func (m Mapper) ToDisplay(logical Point) Point {
	if !m.Ready() {
		return Point{}
	}
	sx, sy := m.Scale()
	return Point{X: logical.X / sx, Y: logical.Y / sy}
}

// Viewport describes the magnified preview: a square of Size pixels showing
// the image scaled by Zoom and centred on a logical cursor.
type Viewport struct {
	Size float64
	Zoom float64
}

// Offset returns the translation applied to the scaled image so that cursor
// lands in the middle of the viewport.
func (v Viewport) Offset(cursor Point) Point {
	return Point{
		X: -cursor.X*v.Zoom + v.Size/2,
		Y: -cursor.Y*v.Zoom + v.Size/2,
	}
}

// ToViewport maps a logical point into viewport space.
func (v Viewport) ToViewport(logical, cursor Point) Point {
	off := v.Offset(cursor)
	return Point{X: logical.X*v.Zoom + off.X, Y: logical.Y*v.Zoom + off.Y}
}

// FromViewport maps a viewport point back into logical space.
func (v Viewport) FromViewport(vp, cursor Point) Point {
	if v.Zoom == 0 {
		return Point{}
	}
	off := v.Offset(cursor)
	return Point{X: (vp.X - off.X) / v.Zoom, Y: (vp.Y - off.Y) / v.Zoom}
}

// ScaledSize returns the size of the whole image once magnified.
func (v Viewport) ScaledSize(natural Size) Size {
	return Size{Width: natural.Width * v.Zoom, Height: natural.Height * v.Zoom}
}

// Affine returns the logical→viewport transform as a row-major 2x3 matrix,
// ready for golang.org/x/image/math/f64.Aff3.
func (v Viewport) Affine(cursor Point) [6]float64 {
	off := v.Offset(cursor)
	return [6]float64{
		v.Zoom, 0, off.X,
		0, v.Zoom, off.Y,
	}
}
