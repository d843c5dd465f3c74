// Package submit sends a picked image and its three points to the remote GIF
// service and decodes the animation it returns.
package submit

import (
	"errors"
	"math"

	"github.com/dixieflatline76/Wiggle/pkg/picker"
)

// ErrIncompleteSelection is returned when a slot has not been picked yet.
var ErrIncompleteSelection = errors.New("all three points must be selected")

// Point is a submitted coordinate, in whole pixels of its own frame.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Normalize rounds the selection to whole pixels and shifts each point into
// its frame's own coordinates. The service treats the image as three frames
// laid out frameOffset pixels apart, so the point of zone i loses
// i*frameOffset on X.
func Normalize(sel picker.Selection, frameOffset int) ([]Point, error) {
	if !sel.Complete() {
		return nil, ErrIncompleteSelection
	}
	out := make([]Point, 0, picker.ZoneCount)
	for zone, p := range sel {
		out = append(out, Point{
			X: int(math.Round(p.X)) - zone*frameOffset,
			Y: int(math.Round(p.Y)),
		})
	}
	return out, nil
}
