package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapperRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		display Size
		natural Size
	}{
		{"downscaled", Size{750, 375}, Size{3000, 1500}},
		{"upscaled", Size{1920, 1080}, Size{640, 360}},
		{"aspect mismatch", Size{500, 500}, Size{6000, 2000}},
		{"odd sizes", Size{333, 127}, Size{4017, 2999}},
	}
	points := []Point{{0, 0}, {1, 1}, {100, 50}, {123.4, 56.7}, {332.9, 126.9}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMapper(tc.display, tc.natural)
			assert.True(t, m.Ready())
			for _, p := range points {
				back := m.ToDisplay(m.ToLogical(p))
				assert.InDelta(t, p.X, back.X, 1e-9)
				assert.InDelta(t, p.Y, back.Y, 1e-9)
			}
		})
	}
}

func TestMapperScalesAxesIndependently(t *testing.T) {
	m := NewMapper(Size{100, 100}, Size{400, 200})
	assert.Equal(t, Point{X: 40, Y: 20}, m.ToLogical(Point{X: 10, Y: 10}))
	assert.Equal(t, Point{X: 10, Y: 10}, m.ToDisplay(Point{X: 40, Y: 20}))
}

func TestMapperUnmeasured(t *testing.T) {
	cases := []Mapper{
		NewMapper(Size{}, Size{3000, 1500}),
		NewMapper(Size{0, 375}, Size{3000, 1500}),
		NewMapper(Size{750, 0}, Size{3000, 1500}),
		NewMapper(Size{750, 375}, Size{}),
	}
	for _, m := range cases {
		assert.False(t, m.Ready())
		assert.Equal(t, Point{}, m.ToLogical(Point{X: 10, Y: 10}))
		assert.Equal(t, Point{}, m.ToDisplay(Point{X: 10, Y: 10}))
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{Size: 240, Zoom: 2}
	cursor := Point{X: 500, Y: 300}

	t.Run("Offset centres cursor", func(t *testing.T) {
		assert.Equal(t, Point{X: -880, Y: -480}, v.Offset(cursor))
		assert.Equal(t, Point{X: 120, Y: 120}, v.ToViewport(cursor, cursor))
	})

	t.Run("FromViewport inverts ToViewport", func(t *testing.T) {
		p := Point{X: 510, Y: 290}
		assert.Equal(t, p, v.FromViewport(v.ToViewport(p, cursor), cursor))
	})

	t.Run("ScaledSize", func(t *testing.T) {
		assert.Equal(t, Size{Width: 6000, Height: 3000}, v.ScaledSize(Size{Width: 3000, Height: 1500}))
	})

	t.Run("Affine", func(t *testing.T) {
		assert.Equal(t, [6]float64{2, 0, -880, 0, 2, -480}, v.Affine(cursor))
	})

	t.Run("zero zoom", func(t *testing.T) {
		assert.Equal(t, Point{}, Viewport{Size: 240}.FromViewport(Point{X: 1, Y: 1}, cursor))
	})
}
