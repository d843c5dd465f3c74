package picker

// Tracker records the rendered size of the image surface and the natural
// size of the image it shows, and hands out mappers built from the pair.
//
// The natural size is captured once per image. BeginImage must run before a
// new image is shown: it resets the selection and forgets the old natural
// size so no input is classified against stale dimensions.
type Tracker struct {
	store *Store

	display Size
	natural Size
	loaded  bool

	listeners []func(Mapper)
}

// NewTracker creates a tracker that resets store whenever a new image begins.
func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store}
}

// BeginImage prepares for a new image: the selection is reset and the
// natural size is cleared until Loaded reports it.
func (t *Tracker) BeginImage() {
	if t.store != nil {
		t.store.Reset()
	}
	t.natural = Size{}
	t.loaded = false
	t.notify()
}

// Loaded records the sizes reported when the image finishes decoding and is
// first laid out. Later calls for the same image only update the display size.
func (t *Tracker) Loaded(natural, display Size) {
	if !t.loaded {
		t.natural = natural
		t.loaded = natural.Measured()
	}
	t.display = display
	t.notify()
}

// Resized records a new rendered size for the surface.
func (t *Tracker) Resized(display Size) {
	if display == t.display {
		return
	}
	t.display = display
	t.notify()
}

// Display returns the last reported display size.
func (t *Tracker) Display() Size { return t.display }

// Natural returns the natural size of the current image, zero before load.
func (t *Tracker) Natural() Size { return t.natural }

// Mapper returns a mapper for the current sizes.
func (t *Tracker) Mapper() Mapper {
	return NewMapper(t.display, t.natural)
}

// Ready reports whether input can be converted and committed.
func (t *Tracker) Ready() bool {
	return t.Mapper().Ready()
}

// Subscribe registers fn to be called with a fresh mapper on every size change.
func (t *Tracker) Subscribe(fn func(Mapper)) {
	t.listeners = append(t.listeners, fn)
}

func (t *Tracker) notify() {
	m := t.Mapper()
	for _, fn := range t.listeners {
		fn(m)
	}
}
