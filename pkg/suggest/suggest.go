// Package suggest proposes a starting point in each third of an image by
// running a content-aware crop analysis on every third.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/Wiggle/pkg/picker"
)

// workSize bounds the longest side of the copy the analysis runs on.
const workSize = 900

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Points returns one suggested point per zone, in the image's own pixel
// coordinates. Every point is guaranteed to classify into its own zone.
func Points(ctx context.Context, img image.Image) (picker.Selection, error) {
	sel := picker.EmptySelection()
	if err := ctx.Err(); err != nil {
		return sel, err
	}

	b := img.Bounds()
	natural := picker.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	if !natural.Measured() {
		return sel, ErrEmptyImage
	}

	work := img
	if b.Dx() > workSize || b.Dy() > workSize {
		work = imaging.Fit(img, workSize, workSize, imaging.Linear)
	}
	scale := natural.Width / float64(work.Bounds().Dx())

	r := &resizer{resampler: imaging.Linear}
	thirds := splitThirds(work.Bounds())
	g, ctx := errgroup.WithContext(ctx)
	for i := range thirds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			center, err := bestCenter(r, work, thirds[i])
			if err != nil {
				return fmt.Errorf("analysing %s third: %w", picker.Zone(i), err)
			}
			p := picker.Point{X: center.X * scale, Y: center.Y * scale}
			// Each goroutine owns its own slot.
			sel[i] = clampToZone(natural, picker.Zone(i), p.Round())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return picker.EmptySelection(), err
	}
	return sel, nil
}

// splitThirds cuts r into three vertical strips, left to right, relative to r.Min.
func splitThirds(r image.Rectangle) [picker.ZoneCount]image.Rectangle {
	var out [picker.ZoneCount]image.Rectangle
	w := r.Dx()
	for i := range out {
		x0 := r.Min.X + w*i/picker.ZoneCount
		x1 := r.Min.X + w*(i+1)/picker.ZoneCount
		out[i] = image.Rect(x0, r.Min.Y, x1, r.Max.Y)
	}
	return out
}

// bestCenter finds the most interesting square in the given strip of img and
// returns its centre in img's coordinates, relative to img.Bounds().Min.
func bestCenter(r *resizer, img image.Image, strip image.Rectangle) (picker.Point, error) {
	origin := img.Bounds().Min
	mid := picker.Point{
		X: float64(strip.Min.X-origin.X) + float64(strip.Dx())/2,
		Y: float64(strip.Min.Y-origin.Y) + float64(strip.Dy())/2,
	}

	side := min(strip.Dx(), strip.Dy()) / 2
	if side < 8 {
		// Too small to analyse; the middle of the strip will do.
		return mid, nil
	}

	part := imaging.Crop(img, strip)
	crop, err := smartcrop.NewAnalyzer(r).FindBestCrop(part, side, side)
	if err != nil {
		return picker.Point{}, err
	}
	return picker.Point{
		X: float64(strip.Min.X-origin.X) + float64(crop.Min.X) + float64(crop.Dx())/2,
		Y: float64(strip.Min.Y-origin.Y) + float64(crop.Min.Y) + float64(crop.Dy())/2,
	}, nil
}

// clampToZone keeps p inside the image and inside the horizontal band of zone,
// so the result classifies into zone. Bands narrower than one pixel get their
// centre instead.
func clampToZone(natural picker.Size, zone picker.Zone, p picker.Point) picker.Point {
	third := natural.Width / picker.ZoneCount
	lo := math.Ceil(third * float64(zone))
	hi := math.Ceil(third*float64(zone+1)) - 1
	if zone == picker.ZoneRight {
		hi = natural.Width - 1
	}
	if hi < lo {
		p.X = third * (float64(zone) + 0.5)
	} else {
		p.X = math.Max(lo, math.Min(hi, p.X))
	}
	p.Y = math.Max(0, math.Min(natural.Height-1, p.Y))
	return p
}

// resizer implements the smartcrop.Resizer interface on top of imaging.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
