package picker

// Store owns the selection. Every mutation builds a new Selection and swaps
// it in whole, so a Snapshot taken earlier never changes underneath a reader.
type Store struct {
	sel        Selection
	generation uint64

	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func(Selection)
}

// NewStore creates a store with every slot unset.
func NewStore() *Store {
	return &Store{sel: EmptySelection()}
}

// Snapshot returns a copy of the current selection.
func (s *Store) Snapshot() Selection {
	return s.sel
}

// At returns the point held by zone, or Unset for an out-of-range zone.
func (s *Store) At(zone Zone) Point {
	if zone < 0 || int(zone) >= ZoneCount {
		return Unset
	}
	return s.sel[zone]
}

// Generation identifies the current selection. It changes on every swap.
func (s *Store) Generation() uint64 {
	return s.generation
}

// SetAt overwrites slot zone with p. The last write wins; nothing checks that
// p actually classifies into zone. Out-of-range zones are ignored.
func (s *Store) SetAt(zone Zone, p Point) {
	if zone < 0 || int(zone) >= ZoneCount {
		return
	}
	next := s.sel
	next[zone] = p
	s.swap(next)
}

// Reset unsets all three slots.
func (s *Store) Reset() {
	s.swap(EmptySelection())
}

// IsComplete reports whether no slot holds the unset sentinel.
func (s *Store) IsComplete() bool {
	return s.sel.Complete()
}

// Subscribe registers fn to be called with the new selection after every
// swap. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Selection)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) swap(next Selection) {
	s.sel = next
	s.generation++
	for _, l := range s.listeners {
		l.fn(next)
	}
}
