package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	for _, w := range []float64{3, 300, 3000, 6000, 4017} {
		natural := Size{Width: w, Height: 100}
		third := w / 3

		assert.Equal(t, ZoneLeft, Classify(natural, Point{X: w / 6}), "w=%v", w)
		assert.Equal(t, ZoneMiddle, Classify(natural, Point{X: w / 2}), "w=%v", w)
		assert.Equal(t, ZoneRight, Classify(natural, Point{X: 5 * w / 6}), "w=%v", w)

		// Boundaries belong to the zone on their right.
		assert.Equal(t, ZoneMiddle, Classify(natural, Point{X: third}), "w=%v", w)
		assert.Equal(t, ZoneRight, Classify(natural, Point{X: third * 2}), "w=%v", w)
	}
}

func TestClassifyIgnoresY(t *testing.T) {
	natural := Size{Width: 3000, Height: 1500}
	for _, y := range []float64{-50, 0, 750, 1500, 99999} {
		assert.Equal(t, ZoneMiddle, Classify(natural, Point{X: 1500, Y: y}))
	}
}

func TestClassifyStaysInRange(t *testing.T) {
	natural := Size{Width: 3000, Height: 1500}
	assert.Equal(t, ZoneLeft, Classify(natural, Point{X: -10}))
	assert.Equal(t, ZoneRight, Classify(natural, Point{X: 3000}))
	assert.Equal(t, ZoneRight, Classify(natural, Point{X: 1e9}))
}

func TestZoneString(t *testing.T) {
	assert.Equal(t, "left", ZoneLeft.String())
	assert.Equal(t, "middle", ZoneMiddle.String())
	assert.Equal(t, "right", ZoneRight.String())
	assert.Equal(t, "Zone(7)", Zone(7).String())
}

func TestSizeContains(t *testing.T) {
	s := Size{Width: 3000, Height: 1500}

	assert.True(t, s.Contains(Point{X: 0, Y: 0}))
	assert.True(t, s.Contains(Point{X: 2999.9, Y: 1499.9}))
	assert.False(t, s.Contains(Unset))
	assert.False(t, s.Contains(Point{X: 3000, Y: 10}))
	assert.False(t, s.Contains(Point{X: 10, Y: 1500}))
	assert.False(t, Size{}.Contains(Point{}))
}
