package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Alignment specifies the horizontal alignment of a split row.
type Alignment int

const (
	alignLeft Alignment = iota
	alignCenter
	alignOpposed
)

// SplitAlign is a namespace for the Alignment constants.
var SplitAlign = struct {
	Left    Alignment // Left-align both widgets.
	Center  Alignment // Center both widgets as a pair.
	Opposed Alignment // First widget on the left, second on the right.
}{
	Left:    alignLeft,
	Center:  alignCenter,
	Opposed: alignOpposed,
}

// FirstWidgetProportion is the share of the row given to the first widget.
type FirstWidgetProportion float32

// SplitProportion is a namespace for the common proportions.
var SplitProportion = struct {
	OneThird   FirstWidgetProportion
	TwoThirds  FirstWidgetProportion
	FourFifths FirstWidgetProportion
}{
	OneThird:   1.0 / 3,
	TwoThirds:  2.0 / 3,
	FourFifths: 4.0 / 5,
}

// splitLayout places two widgets side by side with a fixed width ratio.
type splitLayout struct {
	widget1    fyne.CanvasObject
	widget2    fyne.CanvasObject
	proportion FirstWidgetProportion
	alignment  Alignment
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	w1, w2 := s.widget1.MinSize(), s.widget2.MinSize()
	return fyne.NewSize(w1.Width+w2.Width, fyne.Max(w1.Height, w2.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	w1 := size.Width * float32(s.proportion)
	w2 := size.Width - w1

	s.widget1.Resize(fyne.NewSize(w1, s.widget1.MinSize().Height))
	s.widget2.Resize(fyne.NewSize(w2, s.widget2.MinSize().Height))

	var x1, x2 float32
	switch s.alignment {
	case alignOpposed:
		x2 = size.Width - w2
	case alignCenter:
		x1 = (size.Width - w1 - w2) / 2
		x2 = x1 + w1
	default:
		x2 = w1
	}
	s.widget1.Move(fyne.NewPos(x1, 0))
	s.widget2.Move(fyne.NewPos(x2, 0))
}

// NewSplitRowWithAlignment creates a split row with specified alignment and proportion.
func NewSplitRowWithAlignment(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion, alignment Alignment) *fyne.Container {
	return container.New(&splitLayout{
		widget1:    widget1,
		widget2:    widget2,
		proportion: proportion,
		alignment:  alignment,
	}, widget1, widget2)
}

// NewSplitRow creates a split row with default (left) alignment.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion) *fyne.Container {
	return NewSplitRowWithAlignment(widget1, widget2, proportion, alignLeft)
}

// aspectLayout gives its single child the largest box with the requested
// aspect ratio that fits the container, centred. The picking surface relies
// on this: its widget box must equal the rendered image box.
type aspectLayout struct {
	aspect func() float32 // width / height; <= 0 fills the container
}

func (a *aspectLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.Size{}
	}
	return objects[0].MinSize()
}

func (a *aspectLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	fitted := fitAspect(size, a.aspect())
	objects[0].Resize(fitted)
	objects[0].Move(fyne.NewPos((size.Width-fitted.Width)/2, (size.Height-fitted.Height)/2))
}

// fitAspect returns the largest size with the given width/height ratio inside box.
func fitAspect(box fyne.Size, aspect float32) fyne.Size {
	if aspect <= 0 || box.Width <= 0 || box.Height <= 0 {
		return box
	}
	if box.Width/box.Height > aspect {
		return fyne.NewSize(box.Height*aspect, box.Height)
	}
	return fyne.NewSize(box.Width, box.Width/aspect)
}
