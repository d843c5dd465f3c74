package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Wiggle/pkg/picker"
	"github.com/dixieflatline76/Wiggle/pkg/source"
	"github.com/dixieflatline76/Wiggle/pkg/submit"
)

func testSource(t *testing.T) *source.Image {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 300, 150))
	for x := 0; x < 300; x++ {
		img.SetNRGBA(x, 75, color.NRGBA{R: uint8(x), A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	src, err := source.Read("pair.png", &buf)
	require.NoError(t, err)
	return src
}

func testGIFBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, testGIF(10, 10)))
	return buf.Bytes()
}

// loadedApp returns an app showing a 300x150 image on a 600x300 surface.
func loadedApp(t *testing.T) *WiggleApp {
	t.Helper()
	wa := NewWiggleApp(test.NewApp())
	wa.LoadImage(testSource(t))
	wa.surface.Resize(fyne.NewSize(600, 300))
	require.True(t, wa.picker.Tracker.Ready())
	return wa
}

func tapAllThirds(wa *WiggleApp) {
	w := wa.surface.Size().Width
	for _, x := range []float32{w / 12, w / 2, w - w/12} {
		wa.surface.Tapped(&fyne.PointEvent{Position: fyne.NewPos(x, 50)})
	}
}

func TestLoadImageShowsPicker(t *testing.T) {
	wa := NewWiggleApp(test.NewApp())
	assert.True(t, wa.emptyView.Visible())
	assert.False(t, wa.pickerView.Visible())

	wa.LoadImage(testSource(t))

	assert.True(t, wa.pickerView.Visible())
	assert.False(t, wa.emptyView.Visible())
	assert.Equal(t, picker.Size{Width: 300, Height: 150}, wa.picker.Tracker.Natural())
	assert.Equal(t, "Wiggle - pair.png", wa.window.Title())
	assert.True(t, wa.createButton.Disabled())
}

func TestTapsFillSlotsAndEnableCreate(t *testing.T) {
	wa := loadedApp(t)

	wa.surface.Tapped(&fyne.PointEvent{Position: fyne.NewPos(50, 50)})
	assert.NotEqual(t, slotText(picker.ZoneLeft, picker.Unset), wa.slotLabels[picker.ZoneLeft].Text)
	assert.Equal(t, slotText(picker.ZoneMiddle, picker.Unset), wa.slotLabels[picker.ZoneMiddle].Text)
	assert.True(t, wa.createButton.Disabled())

	tapAllThirds(wa)
	assert.True(t, wa.picker.IsComplete())
	assert.False(t, wa.createButton.Disabled())
}

func TestLoadImageResetsSelection(t *testing.T) {
	wa := loadedApp(t)
	tapAllThirds(wa)
	require.True(t, wa.picker.IsComplete())

	wa.LoadImage(testSource(t))

	assert.Equal(t, 0, wa.picker.Selection().Count())
	assert.Equal(t, slotText(picker.ZoneRight, picker.Unset), wa.slotLabels[picker.ZoneRight].Text)
	assert.True(t, wa.createButton.Disabled())
}

func TestCommitButtonFollowsTouchSession(t *testing.T) {
	wa := loadedApp(t)
	assert.False(t, wa.commitButton.Visible())

	wa.magnifier.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(20, 20)},
		Dragged:    fyne.NewDelta(-4, 0),
	})
	wa.magnifier.DragEnd()
	assert.True(t, wa.commitButton.Visible())

	wa.picker.Preview.Focus(picker.Point{X: 250.4, Y: 40.6})
	test.Tap(wa.commitButton)
	assert.Equal(t, picker.Point{X: 250, Y: 41}, wa.picker.Selection()[picker.ZoneRight])
}

func TestWindowKeysOnlyReachPickerView(t *testing.T) {
	wa := loadedApp(t)
	wa.picker.Preview.Focus(picker.Point{X: 250, Y: 40})

	wa.showView(wa.resultView)
	wa.typedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	wa.typedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 0, wa.picker.Selection().Count())
	assert.Equal(t, picker.Point{X: 250, Y: 40}, wa.picker.Preview.Cursor())

	wa.showView(wa.pickerView)
	wa.typedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	wa.typedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, picker.Point{X: 251, Y: 40}, wa.picker.Selection()[picker.ZoneRight])
}

func TestCreateGIFEndToEnd(t *testing.T) {
	payload := testGIFBytes(t)
	var points []submit.Point
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.Unmarshal([]byte(r.FormValue(submit.PointsField)), &points)
		w.Header().Set("Content-Type", "image/gif")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	wa := loadedApp(t)
	wa.cfg.SetServiceURL(srv.URL)
	wa.cfg.SetFrameOffset(100)
	wa.cfg.SetSubmitInterval(0)
	wa.applySettings()

	tapAllThirds(wa)
	wa.CreateGIF()
	assert.True(t, wa.busy.Value())

	assert.Eventually(t, func() bool { return !wa.busy.Value() }, 5*time.Second, 10*time.Millisecond)
	require.NotNil(t, wa.result)
	assert.Equal(t, 2, wa.result.Frames)
	assert.True(t, wa.resultView.Visible())
	require.Len(t, points, 3)
	assert.Less(t, points[2].X, 100, "right point shifted by two frame offsets")

	wa.StartOver()
	assert.True(t, wa.emptyView.Visible())
	assert.Nil(t, wa.result)
	assert.Nil(t, wa.player)
	assert.Equal(t, 0, wa.picker.Selection().Count())
}

func TestCreateGIFRequiresCompleteSelection(t *testing.T) {
	wa := loadedApp(t)
	wa.surface.Tapped(&fyne.PointEvent{Position: fyne.NewPos(50, 50)})

	wa.CreateGIF()

	assert.False(t, wa.busy.Value())
	assert.Zero(t, wa.runSeq.Value())
}

func TestFinishGIFDropsStaleRuns(t *testing.T) {
	wa := loadedApp(t)
	tapAllThirds(wa)

	require.True(t, wa.busy.TrySet())
	stale := wa.runSeq.Increment()
	current := wa.runSeq.Increment()
	wa.showView(wa.loadingView)

	wa.finishGIF(stale, nil, errors.New("late"))
	assert.True(t, wa.busy.Value(), "stale result leaves the running request alone")
	assert.True(t, wa.loadingView.Visible())

	wa.finishGIF(current, nil, errors.New("service down"))
	assert.False(t, wa.busy.Value())
	assert.True(t, wa.pickerView.Visible())
	assert.False(t, wa.createButton.Disabled())
}

func TestCancelGIF(t *testing.T) {
	wa := loadedApp(t)
	tapAllThirds(wa)
	require.True(t, wa.busy.TrySet())
	seq := wa.runSeq.Increment()
	cancelled := false
	wa.cancelRun = func() { cancelled = true }
	wa.showView(wa.loadingView)

	wa.cancelGIF()

	assert.True(t, cancelled)
	assert.False(t, wa.busy.Value())
	assert.False(t, wa.runSeq.Is(seq))
	assert.True(t, wa.pickerView.Visible())
}

func TestOpenPathMissingFile(t *testing.T) {
	wa := NewWiggleApp(test.NewApp())
	assert.Error(t, wa.OpenPath("does-not-exist.png"))
	assert.True(t, wa.emptyView.Visible())
}
