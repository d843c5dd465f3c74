package picker

// Options tunes a Picker. Zero fields fall back to the package defaults.
type Options struct {
	Zoom         float64
	Sensitivity  float64
	ViewportSize float64
	KeyStep      float64
}

// DefaultOptions returns the stock picker tuning.
func DefaultOptions() Options {
	return Options{
		Zoom:         DefaultZoom,
		Sensitivity:  DefaultSensitivity,
		ViewportSize: DefaultViewportSize,
		KeyStep:      DefaultKeyStep,
	}
}

// Picker owns the whole selection state for one picking session: the slot
// store, the size tracker and both input controllers, wired together.
type Picker struct {
	Store   *Store
	Tracker *Tracker
	Pointer *PointerController
	Preview *Preview
}

// New creates a picker with every slot unset and no image loaded.
func New(opts Options) *Picker {
	store := NewStore()
	tracker := NewTracker(store)
	pointer := NewPointerController(store, tracker)
	preview := NewPreview(store, tracker)

	if opts.Zoom != 0 {
		preview.SetZoom(opts.Zoom)
	}
	preview.SetSensitivity(opts.Sensitivity)
	preview.SetViewportSize(opts.ViewportSize)
	preview.SetKeyStep(opts.KeyStep)

	pointer.OnHover(preview.Focus)

	return &Picker{
		Store:   store,
		Tracker: tracker,
		Pointer: pointer,
		Preview: preview,
	}
}

// BeginImage starts a new image: selection and preview are reset before the
// new natural size is known.
func (p *Picker) BeginImage() {
	p.Tracker.BeginImage()
	p.Preview.Reset()
}

// Selection returns a snapshot of the three slots.
func (p *Picker) Selection() Selection {
	return p.Store.Snapshot()
}

// IsComplete reports whether all three slots are set.
func (p *Picker) IsComplete() bool {
	return p.Store.IsComplete()
}
