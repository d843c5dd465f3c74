package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreReset(t *testing.T) {
	s := NewStore()
	assert.False(t, s.IsComplete())

	s.SetAt(ZoneLeft, Point{X: 1, Y: 1})
	s.SetAt(ZoneMiddle, Point{X: 2, Y: 2})
	s.SetAt(ZoneRight, Point{X: 3, Y: 3})
	assert.True(t, s.IsComplete())

	s.Reset()
	assert.False(t, s.IsComplete())
	assert.Equal(t, EmptySelection(), s.Snapshot())
}

func TestStoreCompleteInAnyOrder(t *testing.T) {
	orders := [][]Zone{
		{ZoneLeft, ZoneMiddle, ZoneRight},
		{ZoneRight, ZoneLeft, ZoneMiddle},
		{ZoneMiddle, ZoneRight, ZoneLeft},
	}
	for _, order := range orders {
		s := NewStore()
		for i, z := range order {
			assert.False(t, s.IsComplete())
			s.SetAt(z, Point{X: float64(i), Y: float64(i)})
		}
		assert.True(t, s.IsComplete(), "order %v", order)
	}
}

func TestStoreLastWriteWins(t *testing.T) {
	s := NewStore()
	a := Point{X: 1200, Y: 10}
	b := Point{X: 1800, Y: 20}

	s.SetAt(ZoneMiddle, a)
	s.SetAt(ZoneMiddle, a)
	assert.Equal(t, a, s.At(ZoneMiddle))

	s.SetAt(ZoneMiddle, b)
	assert.Equal(t, b, s.At(ZoneMiddle))
	assert.Equal(t, 1, s.Snapshot().Count())
}

func TestStoreDoesNotValidateZone(t *testing.T) {
	s := NewStore()
	// A point from the right third may be stored in the left slot.
	s.SetAt(ZoneLeft, Point{X: 2900, Y: 0})
	assert.Equal(t, Point{X: 2900, Y: 0}, s.At(ZoneLeft))
}

func TestStoreIgnoresOutOfRangeZone(t *testing.T) {
	s := NewStore()
	gen := s.Generation()
	s.SetAt(Zone(3), Point{X: 1, Y: 1})
	s.SetAt(Zone(-1), Point{X: 1, Y: 1})
	assert.Equal(t, gen, s.Generation())
	assert.Equal(t, Unset, s.At(Zone(3)))
	assert.Equal(t, EmptySelection(), s.Snapshot())
}

func TestStoreSnapshotIsImmutable(t *testing.T) {
	s := NewStore()
	s.SetAt(ZoneLeft, Point{X: 5, Y: 5})
	snap := s.Snapshot()

	s.SetAt(ZoneLeft, Point{X: 6, Y: 6})
	s.Reset()

	assert.Equal(t, Point{X: 5, Y: 5}, snap[ZoneLeft])
}

func TestStoreSubscribe(t *testing.T) {
	s := NewStore()
	var seen []Selection
	cancel := s.Subscribe(func(sel Selection) {
		seen = append(seen, sel)
	})

	s.SetAt(ZoneRight, Point{X: 9, Y: 9})
	s.Reset()
	cancel()
	s.SetAt(ZoneLeft, Point{X: 1, Y: 1})

	if assert.Len(t, seen, 2) {
		assert.Equal(t, Point{X: 9, Y: 9}, seen[0][ZoneRight])
		assert.Equal(t, EmptySelection(), seen[1])
	}
	assert.Equal(t, uint64(3), s.Generation())
}
