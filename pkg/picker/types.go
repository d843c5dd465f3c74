// Package picker holds the point-selection state of the wigglegram picker:
// coordinate mapping between image, display and preview spaces, the three
// horizontal zones, the selection slots and the input controllers that feed them.
//
// Everything in this package runs on the UI goroutine. None of it locks.
package picker

import (
	"fmt"
	"math"
)

// Point is a coordinate in one explicit space (logical, display or viewport).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Unset marks a selection slot that has not been picked yet.
var Unset = Point{X: -1, Y: -1}

// IsUnset reports whether p is the unset sentinel.
func (p Point) IsUnset() bool {
	return p == Unset
}

// Round returns p with both components rounded to the nearest integer.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}

// Size is a width/height pair in one explicit space.
type Size struct {
	Width  float64
	Height float64
}

// Measured reports whether both dimensions are known and positive.
func (s Size) Measured() bool {
	return s.Width > 0 && s.Height > 0
}

// Contains reports whether p lies in [0, Width) × [0, Height).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Zone is one of the three horizontal thirds of an image and doubles as the
// index of its selection slot.
type Zone int

// The three zones, left to right.
const (
	ZoneLeft Zone = iota
	ZoneMiddle
	ZoneRight
)

// ZoneCount is the number of zones and selection slots.
const ZoneCount = 3

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneMiddle:
		return "middle"
	case ZoneRight:
		return "right"
	default:
		return fmt.Sprintf("Zone(%d)", int(z))
	}
}

// Selection is the fixed set of picked points, one per zone, in logical space.
// It is a value type: copying it yields an independent snapshot.
type Selection [ZoneCount]Point

// EmptySelection returns a selection with every slot unset.
func EmptySelection() Selection {
	return Selection{Unset, Unset, Unset}
}

// Complete reports whether every slot holds a point.
func (s Selection) Complete() bool {
	for _, p := range s {
		if p.IsUnset() {
			return false
		}
	}
	return true
}

// Count returns the number of slots that hold a point.
func (s Selection) Count() int {
	n := 0
	for _, p := range s {
		if !p.IsUnset() {
			n++
		}
	}
	return n
}

// TouchPoint is a raw finger position as delivered by the input boundary.
type TouchPoint struct {
	PageX float64
	PageY float64
}

// Key is a discrete navigation key understood by the preview.
type Key int

// Keys handled by the magnified preview.
const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)
