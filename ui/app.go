// Package ui is the Fyne front end: the picking surface, the magnified
// preview, the submission flow and the preferences window.
package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Wiggle/asset"
	"github.com/dixieflatline76/Wiggle/config"
	"github.com/dixieflatline76/Wiggle/pkg/picker"
	"github.com/dixieflatline76/Wiggle/pkg/source"
	"github.com/dixieflatline76/Wiggle/pkg/submit"
	"github.com/dixieflatline76/Wiggle/pkg/suggest"
	"github.com/dixieflatline76/Wiggle/util"
	"github.com/dixieflatline76/Wiggle/util/log"
)

// WiggleApp represents the application window and its picking session.
// All fields are owned by the UI goroutine; background work hands results
// back through fyne.Do.
type WiggleApp struct {
	app      fyne.App
	window   fyne.Window
	assetMgr *asset.Manager
	cfg      *config.AppConfig

	picker  *picker.Picker
	client  *submit.Client
	updates *util.UpdateChecker
	image   *source.Image
	result  *submit.Result

	surface    *Surface
	surfaceBox *fyne.Container
	magnifier  *Magnifier

	zoomSlider    *widget.Slider
	zoomLabel     *widget.Label
	hintLabel     *widget.Label
	slotLabels    [picker.ZoneCount]*widget.Label
	commitButton  *widget.Button
	suggestButton *widget.Button
	createButton  *widget.Button

	emptyView   fyne.CanvasObject
	pickerView  fyne.CanvasObject
	loadingView fyne.CanvasObject
	resultView  *fyne.Container
	player      *gifPlayer

	busy      *util.SafeFlag
	runSeq    *util.SafeCounter
	cancelRun context.CancelFunc
}

// NewWiggleApp builds the main window on a.
func NewWiggleApp(a fyne.App) *WiggleApp {
	cfg := config.NewAppConfig(a.Preferences())
	wa := &WiggleApp{
		app:      a,
		window:   a.NewWindow(config.AppName),
		assetMgr: asset.NewManager(),
		cfg:      cfg,
		picker:   picker.New(cfg.PickerOptions()),
		client:   submit.NewClient(submitSettings(cfg)),
		updates:  util.NewUpdateChecker(nil),
		busy:     util.NewSafeFlag(),
		runSeq:   util.NewSafeCounter(),
	}

	if icon, err := wa.assetMgr.GetIcon("wiggle.png"); err == nil {
		a.SetIcon(icon)
		wa.window.SetIcon(icon)
	}

	wa.buildPickerView()
	wa.emptyView = wa.buildEmptyView()
	wa.loadingView = wa.buildLoadingView()
	wa.resultView = container.NewStack()

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), wa.ShowOpenDialog),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), wa.ShowPreferences),
		widget.NewToolbarAction(theme.HelpIcon(), wa.showHelp),
		widget.NewToolbarAction(theme.InfoIcon(), wa.ShowAbout),
	)
	views := container.NewStack(wa.emptyView, wa.pickerView, wa.loadingView, wa.resultView)
	wa.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, views))
	wa.window.Canvas().SetOnTypedKey(wa.typedKey)
	wa.window.Resize(fyne.NewSize(1200, 720))

	wa.showView(wa.emptyView)
	return wa
}

// submitSettings assembles the client settings from the preferences.
func submitSettings(cfg *config.AppConfig) submit.Settings {
	return submit.Settings{
		Endpoint:    cfg.GetServiceURL(),
		FrameOffset: cfg.GetFrameOffset(),
		Timeout:     cfg.GetRequestTimeout(),
		Interval:    cfg.GetSubmitInterval(),
		UserAgent:   config.UserAgent(),
	}
}

func (wa *WiggleApp) buildPickerView() {
	p := wa.picker

	wa.surface = NewSurface(p.Tracker, p.Store)
	wa.surfaceBox = container.New(&aspectLayout{aspect: wa.surface.Aspect}, wa.surface)

	wa.magnifier = NewMagnifier(p.Preview, p.Tracker)
	wa.magnifier.SetOnChange(wa.refreshPreview)
	wa.magnifier.SetOnZoom(func(z float64) {
		wa.zoomSlider.SetValue(z)
	})

	wa.hintLabel = widget.NewLabel(previewHint)
	wa.zoomLabel = widget.NewLabel(zoomText(p.Preview.Zoom()))
	wa.zoomSlider = widget.NewSlider(picker.MinZoom, picker.MaxZoom)
	wa.zoomSlider.Step = picker.ZoomStep
	wa.zoomSlider.SetValue(p.Preview.Zoom())
	wa.zoomSlider.OnChanged = func(v float64) {
		p.Preview.SetZoom(v)
		wa.zoomLabel.SetText(zoomText(p.Preview.Zoom()))
		wa.magnifier.Refresh()
	}

	wa.commitButton = widget.NewButtonWithIcon("SET POINT", theme.ConfirmIcon(), func() {
		p.Preview.CommitRounded()
	})
	wa.commitButton.Hide()

	wa.suggestButton = widget.NewButtonWithIcon("Suggest points", theme.SearchIcon(), wa.suggestPoints)
	if !wa.cfg.GetSuggestEnabled() {
		wa.suggestButton.Hide()
	}

	wa.createButton = widget.NewButtonWithIcon("Create GIF", theme.MediaPlayIcon(), wa.CreateGIF)
	wa.createButton.Importance = widget.HighImportance
	wa.createButton.Disable()

	slots := container.NewVBox()
	for zone := range wa.slotLabels {
		wa.slotLabels[zone] = widget.NewLabel(slotText(picker.Zone(zone), picker.Unset))
		slots.Add(wa.slotLabels[zone])
	}

	side := container.NewVBox(
		CreateSettingTitleLabel("Preview"),
		container.NewCenter(wa.magnifier),
		wa.hintLabel,
		NewSplitRow(wa.zoomLabel, wa.zoomSlider, SplitProportion.OneThird),
		wa.commitButton,
		widget.NewSeparator(),
		CreateSettingTitleLabel("Points"),
		slots,
		widget.NewSeparator(),
		wa.suggestButton,
		wa.createButton,
	)
	wa.pickerView = container.NewBorder(nil, nil, nil, container.NewPadded(side), wa.surfaceBox)

	// Hover drives the preview cursor as well as the pointer position.
	p.Pointer.OnHover(func(pt picker.Point) {
		p.Preview.Focus(pt)
		wa.refreshPreview()
	})
	p.Pointer.Attach(wa.surface)
	p.Store.Subscribe(wa.refreshSelection)
	p.Tracker.Subscribe(func(picker.Mapper) {
		wa.surface.RefreshMarkers()
		wa.magnifier.Refresh()
	})
}

// typedKey forwards unfocused window keys to the magnifier while picking.
func (wa *WiggleApp) typedKey(ev *fyne.KeyEvent) {
	if !wa.pickerView.Visible() {
		return
	}
	wa.magnifier.TypedKey(ev)
}

func (wa *WiggleApp) buildEmptyView() fyne.CanvasObject {
	help, err := wa.assetMgr.GetText("help.txt")
	if err != nil {
		help = "Open an image to start picking points."
	}
	open := widget.NewButtonWithIcon("Open image…", theme.FolderOpenIcon(), wa.ShowOpenDialog)
	open.Importance = widget.HighImportance

	return container.NewCenter(container.NewVBox(
		CreateSectionTitleLabel(config.AppName),
		CreateSettingDescriptionLabel(help),
		container.NewHBox(layout.NewSpacer(), open, layout.NewSpacer()),
	))
}

func (wa *WiggleApp) buildLoadingView() fyne.CanvasObject {
	cancel := widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), wa.cancelGIF)
	return container.NewCenter(container.NewVBox(
		CreateSectionTitleLabel("Creating GIF"),
		widget.NewProgressBarInfinite(),
		container.NewHBox(layout.NewSpacer(), cancel, layout.NewSpacer()),
	))
}

func (wa *WiggleApp) showView(v fyne.CanvasObject) {
	for _, o := range []fyne.CanvasObject{wa.emptyView, wa.pickerView, wa.loadingView, wa.resultView} {
		if o == v {
			o.Show()
		} else {
			o.Hide()
		}
	}
}

// ShowOpenDialog asks for an image file and loads it.
func (wa *WiggleApp) ShowOpenDialog() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			wa.showError("Could not open image", err)
			return
		}
		if rc == nil {
			return // Cancelled
		}
		go func() {
			defer rc.Close()
			img, err := source.Read(rc.URI().Name(), rc)
			fyne.Do(func() {
				if err != nil {
					wa.showError("Could not read image", err)
					return
				}
				wa.LoadImage(img)
			})
		}()
	}, wa.window)
	d.SetFilter(storage.NewExtensionFileFilter(source.Extensions))
	d.Show()
}

// OpenPath loads the image at path synchronously.
func (wa *WiggleApp) OpenPath(path string) error {
	img, err := source.Open(path)
	if err != nil {
		return err
	}
	wa.LoadImage(img)
	return nil
}

// LoadImage replaces the current image. The selection and preview are reset
// before the new size is known, so no click is classified against the old image.
func (wa *WiggleApp) LoadImage(img *source.Image) {
	wa.stopPlayer()
	wa.picker.BeginImage()
	wa.image = img
	wa.result = nil

	wa.surface.SetImage(img.Display(displayMaxDim), img.Natural)
	wa.magnifier.SetSource(img.Pixels)
	wa.surfaceBox.Refresh()
	wa.refreshPreview()
	wa.window.SetTitle(config.AppName + " - " + img.Name)

	log.Printf("Loaded %s (%v x %v)", img.Name, img.Natural.Width, img.Natural.Height)
	wa.showView(wa.pickerView)
}

// refreshSelection mirrors a new selection snapshot into the widgets.
func (wa *WiggleApp) refreshSelection(sel picker.Selection) {
	for zone, p := range sel {
		wa.slotLabels[zone].SetText(slotText(picker.Zone(zone), p))
	}
	if sel.Complete() && !wa.busy.Value() {
		wa.createButton.Enable()
	} else {
		wa.createButton.Disable()
	}
	wa.surface.RefreshMarkers()
}

// refreshPreview mirrors the preview cursor into the widgets.
func (wa *WiggleApp) refreshPreview() {
	pv := wa.picker.Preview
	wa.hintLabel.SetText(hintText(pv.Cursor()))
	if pv.CommitVisible() {
		wa.commitButton.Show()
	} else {
		wa.commitButton.Hide()
	}
	wa.magnifier.Refresh()
}

func (wa *WiggleApp) suggestPoints() {
	img := wa.image
	if img == nil {
		return
	}
	wa.suggestButton.Disable()
	go func() {
		sel, err := suggest.Points(context.Background(), img.Pixels)
		fyne.Do(func() {
			wa.suggestButton.Enable()
			if err != nil {
				wa.showError("Could not suggest points", err)
				return
			}
			if wa.image != img {
				return // Image was replaced meanwhile
			}
			for zone, p := range sel {
				wa.picker.Store.SetAt(picker.Zone(zone), p)
			}
		})
	}()
}

// CreateGIF submits the image and the three points. Only one submission
// runs at a time.
func (wa *WiggleApp) CreateGIF() {
	if wa.image == nil || !wa.picker.IsComplete() {
		return
	}
	if !wa.busy.TrySet() {
		return
	}
	wa.createButton.Disable()

	req := submit.Request{
		FileName:    wa.image.Name,
		ContentType: wa.image.ContentType,
		Data:        wa.image.Data,
		Selection:   wa.picker.Selection(),
	}
	seq := wa.runSeq.Increment()
	ctx, cancel := context.WithCancel(context.Background())
	wa.cancelRun = cancel
	client := wa.client

	wa.showView(wa.loadingView)
	go func() {
		defer cancel()
		res, err := client.Submit(ctx, req)
		fyne.Do(func() {
			wa.finishGIF(seq, res, err)
		})
	}()
}

func (wa *WiggleApp) finishGIF(seq int64, res *submit.Result, err error) {
	if !wa.runSeq.Is(seq) {
		return // Cancelled or superseded
	}
	wa.busy.Set(false)
	wa.cancelRun = nil
	if err != nil {
		log.Printf("GIF request failed: %v", err)
		wa.showView(wa.pickerView)
		wa.refreshSelection(wa.picker.Selection())
		wa.showError("Could not create GIF", err)
		return
	}
	log.Debugf("GIF request %s returned %d frames", res.RequestID, res.Frames)
	wa.showResult(res)
}

func (wa *WiggleApp) cancelGIF() {
	wa.runSeq.Increment()
	if wa.cancelRun != nil {
		wa.cancelRun()
		wa.cancelRun = nil
	}
	wa.busy.Set(false)
	wa.showView(wa.pickerView)
	wa.refreshSelection(wa.picker.Selection())
}

func (wa *WiggleApp) showResult(res *submit.Result) {
	wa.stopPlayer()
	wa.result = res
	wa.player = newGIFPlayer(res.Anim)

	download := widget.NewButtonWithIcon("Download", theme.DownloadIcon(), wa.ShowSaveDialog)
	download.Importance = widget.HighImportance
	startOver := widget.NewButtonWithIcon("Start Over", theme.ViewRefreshIcon(), wa.StartOver)
	back := widget.NewButtonWithIcon("Adjust points", theme.NavigateBackIcon(), func() {
		wa.stopPlayer()
		wa.showView(wa.pickerView)
	})

	buttons := container.NewHBox(layout.NewSpacer(), back, startOver, download, layout.NewSpacer())
	wa.resultView.Objects = []fyne.CanvasObject{
		container.NewBorder(CreateSectionTitleLabel("Your wigglegram"), buttons, nil, nil, wa.player.Image),
	}
	wa.resultView.Refresh()
	wa.showView(wa.resultView)
	wa.player.Start()
}

// ShowSaveDialog writes the current GIF to a user chosen file.
func (wa *WiggleApp) ShowSaveDialog() {
	res := wa.result
	if res == nil {
		return
	}
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			wa.showError("Could not save GIF", err)
			return
		}
		if wc == nil {
			return // Cancelled
		}
		defer wc.Close()
		if err := res.Save(wc); err != nil {
			wa.showError("Could not save GIF", err)
			return
		}
		log.Printf("Saved GIF to %s", wc.URI())
	}, wa.window)
	name := "wigglegram.gif"
	if wa.image != nil {
		name = submit.FileName(wa.image.Name)
	}
	d.SetFileName(name)
	d.Show()
}

// StartOver drops the image and the result and returns to the open screen.
func (wa *WiggleApp) StartOver() {
	wa.stopPlayer()
	wa.picker.BeginImage()
	wa.image = nil
	wa.result = nil
	wa.surface.SetImage(nil, picker.Size{})
	wa.magnifier.SetSource(nil)
	wa.refreshPreview()
	wa.window.SetTitle(config.AppName)
	wa.showView(wa.emptyView)
}

func (wa *WiggleApp) stopPlayer() {
	if wa.player != nil {
		wa.player.Stop()
		wa.player = nil
	}
}

// applySettings pushes saved preferences into the live session.
func (wa *WiggleApp) applySettings() {
	wa.client = submit.NewClient(submitSettings(wa.cfg))
	opts := wa.cfg.PickerOptions()
	wa.picker.Preview.SetSensitivity(opts.Sensitivity)
	wa.picker.Preview.SetViewportSize(opts.ViewportSize)
	wa.zoomSlider.SetValue(opts.Zoom)
	if wa.cfg.GetSuggestEnabled() {
		wa.suggestButton.Show()
	} else {
		wa.suggestButton.Hide()
	}
	wa.magnifier.Refresh()
}

func (wa *WiggleApp) showHelp() {
	help, err := wa.assetMgr.GetText("help.txt")
	if err != nil {
		return
	}
	dialog.ShowInformation("How to pick points", help, wa.window)
}

func (wa *WiggleApp) showError(title string, err error) {
	log.Printf("%s: %v", title, err)
	dialog.ShowError(err, wa.window)
}

// Window returns the main window.
func (wa *WiggleApp) Window() fyne.Window {
	return wa.window
}

// Run shows the window and runs the application.
func (wa *WiggleApp) Run() {
	wa.window.ShowAndRun()
}
