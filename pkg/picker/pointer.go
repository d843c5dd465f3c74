package picker

// Surface is the display element that emits pointer events in display space.
// Handlers set on it replace any previously set ones.
type Surface interface {
	SetOnPointerMove(func(raw Point))
	SetOnPointerTap(func(raw Point))
}

// PointerController turns pointer movement and taps on the picking surface
// into logical points. Moves update the hover position, taps commit.
type PointerController struct {
	store   *Store
	tracker *Tracker

	mousePos Point
	onHover  func(Point)

	surface     Surface
	boundGen    uint64
	bindings    int
	unsubscribe func()
}

// NewPointerController creates a controller writing into store and reading
// sizes from tracker.
func NewPointerController(store *Store, tracker *Tracker) *PointerController {
	return &PointerController{store: store, tracker: tracker}
}

// OnHover sets the function that receives each new logical hover position.
func (c *PointerController) OnHover(fn func(Point)) {
	c.onHover = fn
}

// MousePos returns the last logical hover position.
func (c *PointerController) MousePos() Point {
	return c.mousePos
}

// Move records a pointer move at raw display coordinates.
func (c *PointerController) Move(raw Point) {
	m := c.tracker.Mapper()
	if !m.Ready() {
		return
	}
	c.mousePos = m.ToLogical(raw)
	if c.onHover != nil {
		c.onHover(c.mousePos)
	}
}

// Click commits a tap at raw display coordinates into the zone it falls in.
// It reports false when the surface is not measured yet.
func (c *PointerController) Click(raw Point) bool {
	m := c.tracker.Mapper()
	if !m.Ready() {
		return false
	}
	return commit(c.store, m, m.ToLogical(raw))
}

// Attach binds the controller's handlers to s and re-binds them every time
// the selection is swapped. Attaching nil detaches.
func (c *PointerController) Attach(s Surface) {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.surface = s
	if s == nil {
		return
	}
	c.bind()
	c.unsubscribe = c.store.Subscribe(func(Selection) {
		if c.store.Generation() != c.boundGen {
			c.bind()
		}
	})
}

// Bindings returns how many times handlers were registered on the surface.
func (c *PointerController) Bindings() int {
	return c.bindings
}

func (c *PointerController) bind() {
	if c.surface == nil {
		return
	}
	c.boundGen = c.store.Generation()
	c.surface.SetOnPointerMove(c.Move)
	c.surface.SetOnPointerTap(func(raw Point) {
		c.Click(raw)
	})
	c.bindings++
}

// commit classifies p against the mapper's natural size and stores it.
// Points outside the image are refused, so the Unset sentinel can never be
// written into a slot.
func commit(store *Store, m Mapper, p Point) bool {
	if store == nil || !m.Ready() || !m.Natural().Contains(p) {
		return false
	}
	store.SetAt(Classify(m.Natural(), p), p)
	return true
}
