package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Wiggle/config"
	"github.com/dixieflatline76/Wiggle/pkg/picker"
	"github.com/dixieflatline76/Wiggle/pkg/ui/setting"
)

// validateServiceURL accepts absolute http and https URLs.
func validateServiceURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}
	if u.Host == "" {
		return errors.New("URL has no host")
	}
	return nil
}

// ShowPreferences opens the preferences window.
func (wa *WiggleApp) ShowPreferences() {
	prefsWindow := wa.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	prefsWindow.Resize(fyne.NewSize(760, 620))
	prefsWindow.CenterOnScreen()

	sm := wa.buildPreferences(prefsWindow)

	closeButton := widget.NewButton("Close", func() {
		prefsWindow.Close()
	})
	footer := container.NewHBox(layout.NewSpacer(), sm.GetApplySettingsButton(), closeButton)
	prefsWindow.SetContent(container.NewBorder(nil, footer, nil, nil, container.NewVScroll(sm.content)))
	prefsWindow.Show()
}

// preferencesPanel pairs the manager with the panel it filled.
type preferencesPanel struct {
	*SettingsManager
	content *fyne.Container
}

func (wa *WiggleApp) buildPreferences(prefsWindow fyne.Window) *preferencesPanel {
	sm := NewSettingsManager(prefsWindow)
	cfg := wa.cfg
	panel := container.NewVBox()

	panel.Add(sm.CreateSectionTitleLabel("GIF Service"))
	panel.Add(sm.CreateSettingDescriptionLabel("Where the image and the three points are sent."))

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "Service URL",
		InitialValue: cfg.GetServiceURL(),
		PlaceHolder:  config.DefaultServiceURL,
		Label:        sm.CreateSettingTitleLabel("Service URL:"),
		Validator:    validateServiceURL,
		ApplyFunc:    cfg.SetServiceURL,
	}, panel)

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "Frame offset",
		InitialValue: strconv.Itoa(cfg.GetFrameOffset()),
		Label:        sm.CreateSettingTitleLabel("Frame offset (px):"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Horizontal distance between two frames as the service expects it."),
		Validator:    setting.IntValidator(0, 100000),
		ApplyFunc: func(s string) {
			n, _ := strconv.Atoi(s)
			cfg.SetFrameOffset(n)
		},
	}, panel)

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "Request timeout",
		InitialValue: strconv.Itoa(int(cfg.GetRequestTimeout() / time.Second)),
		Label:        sm.CreateSettingTitleLabel("Request timeout (s):"),
		Validator:    setting.IntValidator(5, 600),
		ApplyFunc: func(s string) {
			n, _ := strconv.Atoi(s)
			cfg.SetRequestTimeout(time.Duration(n) * time.Second)
		},
	}, panel)

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "Submit interval",
		InitialValue: strconv.Itoa(int(cfg.GetSubmitInterval() / time.Millisecond)),
		Label:        sm.CreateSettingTitleLabel("Min. time between requests (ms):"),
		Validator:    setting.IntValidator(0, 60000),
		ApplyFunc: func(s string) {
			n, _ := strconv.Atoi(s)
			cfg.SetSubmitInterval(time.Duration(n) * time.Millisecond)
		},
	}, panel)

	panel.Add(widget.NewSeparator())
	panel.Add(sm.CreateSectionTitleLabel("Picking"))

	sm.CreateSliderSetting(&setting.SliderConfig{
		Name:         "Preview zoom",
		Min:          picker.MinZoom,
		Max:          picker.MaxZoom,
		Step:         picker.ZoomStep,
		InitialValue: cfg.GetPreviewZoom(),
		Label:        sm.CreateSettingTitleLabel("Initial preview zoom:"),
		Format:       zoomText,
		ApplyFunc:    cfg.SetPreviewZoom,
	}, panel)

	sm.CreateSliderSetting(&setting.SliderConfig{
		Name:         "Touch sensitivity",
		Min:          0.05,
		Max:          2,
		Step:         0.05,
		InitialValue: cfg.GetTouchSensitivity(),
		Label:        sm.CreateSettingTitleLabel("Drag sensitivity:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("How far the preview cursor travels per pixel dragged, before zoom."),
		ApplyFunc:    cfg.SetTouchSensitivity,
	}, panel)

	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "Suggest",
		InitialValue: cfg.GetSuggestEnabled(),
		Label:        sm.CreateSettingTitleLabel("Offer point suggestions:"),
		ApplyFunc:    cfg.SetSuggestEnabled,
	}, panel)

	panel.Add(widget.NewSeparator())
	panel.Add(sm.CreateSectionTitleLabel("Application"))

	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "Update check",
		InitialValue: cfg.GetUpdateCheckEnabled(),
		Label:        sm.CreateSettingTitleLabel("Check for updates:"),
		ApplyFunc:    cfg.SetUpdateCheckEnabled,
	}, panel)

	sm.RegisterRefreshFunc(wa.applySettings)
	return &preferencesPanel{SettingsManager: sm, content: panel}
}
