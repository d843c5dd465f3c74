package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Wiggle/pkg/ui/setting"
)

// SettingsManager handles UI elements for settings. Changes are collected as
// callbacks and only written when the Apply button is pressed.
type SettingsManager struct {
	chgPrefsCallbacks map[string]func()
	refreshFuncs      []func()
	applyButton       *widget.Button
	prefsWindow       fyne.Window
}

// NewSettingsManager creates a new SettingsManager.
func NewSettingsManager(window fyne.Window) *SettingsManager {
	sm := &SettingsManager{
		chgPrefsCallbacks: make(map[string]func()),
		prefsWindow:       window,
	}
	sm.applyButton = createApplyButton(sm)
	return sm
}

var _ setting.SettingsManager = (*SettingsManager)(nil)

// createApplyButton creates the Apply Changes button bound to sm.
func createApplyButton(sm *SettingsManager) *widget.Button {
	applyButton := widget.NewButton("Apply Changes", nil)
	applyButton.OnTapped = func() {
		sm.apply()
	}
	applyButton.Disable()
	return applyButton
}

func (sm *SettingsManager) apply() {
	for _, callback := range sm.chgPrefsCallbacks {
		callback()
	}
	sm.chgPrefsCallbacks = make(map[string]func())
	for _, rf := range sm.refreshFuncs {
		rf()
	}
	sm.checkAndEnableApply()
}

func (sm *SettingsManager) checkAndEnableApply() {
	if sm.HasPendingChanges() {
		sm.applyButton.Enable()
	} else {
		sm.applyButton.Disable()
	}
}

// GetApplySettingsButton returns the Apply Changes button from the SettingsManager to be used in the UI.
func (sm *SettingsManager) GetApplySettingsButton() *widget.Button {
	return sm.applyButton
}

// CreateBoolSetting creates a reusable boolean check setting.
func (sm *SettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, header *fyne.Container) *widget.Check {
	check := widget.NewCheck("", nil) // Label is a separate CanvasObject
	check.SetChecked(cfg.InitialValue)

	header.Add(NewSplitRow(cfg.Label, check, SplitProportion.OneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	check.OnChanged = func(b bool) {
		if b != cfg.InitialValue {
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(b)
				cfg.InitialValue = b
			})
		} else {
			sm.RemoveSettingChangedCallback(cfg.Name)
		}
		sm.checkAndEnableApply()
	}
	return check
}

// CreateTextEntrySetting creates a reusable text entry setting.
func (sm *SettingsManager) CreateTextEntrySetting(cfg *setting.TextEntrySettingConfig, header *fyne.Container) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(cfg.PlaceHolder)
	entry.SetText(cfg.InitialValue)
	if cfg.Validator != nil {
		entry.Validator = cfg.Validator
	}

	statusLabel := widget.NewLabel("")

	header.Add(NewSplitRow(cfg.Label, entry, SplitProportion.OneThird))
	if cfg.HelpContent != nil {
		header.Add(NewSplitRowWithAlignment(cfg.HelpContent, statusLabel, SplitProportion.TwoThirds, SplitAlign.Opposed))
	} else {
		header.Add(NewSplitRow(widget.NewLabel(""), statusLabel, SplitProportion.TwoThirds))
	}

	entry.OnChanged = func(s string) {
		err := entry.Validate()
		if err == nil && cfg.PostValidateCheck != nil {
			err = cfg.PostValidateCheck(s)
		}

		switch {
		case err != nil:
			statusLabel.SetText(err.Error())
			statusLabel.Importance = widget.DangerImportance
			sm.RemoveSettingChangedCallback(cfg.Name)
		case s == cfg.InitialValue:
			statusLabel.SetText("")
			sm.RemoveSettingChangedCallback(cfg.Name)
		default:
			statusLabel.SetText(fmt.Sprintf("%s OK", cfg.Name))
			statusLabel.Importance = widget.SuccessImportance
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(s)
				cfg.InitialValue = s
			})
		}
		statusLabel.Refresh()
		sm.checkAndEnableApply()
	}
	return entry
}

// CreateSliderSetting creates a slider setting with a live value readout.
func (sm *SettingsManager) CreateSliderSetting(cfg *setting.SliderConfig, header *fyne.Container) *widget.Slider {
	slider := widget.NewSlider(cfg.Min, cfg.Max)
	slider.Step = cfg.Step
	slider.SetValue(cfg.InitialValue)
	valueLabel := widget.NewLabel(cfg.FormatValue(cfg.InitialValue))

	header.Add(NewSplitRow(cfg.Label, NewSplitRowWithAlignment(slider, valueLabel, SplitProportion.FourFifths, SplitAlign.Left), SplitProportion.OneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	slider.OnChanged = func(v float64) {
		valueLabel.SetText(cfg.FormatValue(v))
		if v != cfg.InitialValue {
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(v)
				cfg.InitialValue = v
			})
		} else {
			sm.RemoveSettingChangedCallback(cfg.Name)
		}
		sm.checkAndEnableApply()
	}
	return slider
}

// SetSettingChangedCallback sets a callback function to be called when a setting changes.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	sm.chgPrefsCallbacks[settingName] = callback
}

// RemoveSettingChangedCallback removes a callback function associated with a specific setting.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.chgPrefsCallbacks, settingName)
}

// HasPendingChanges reports whether any setting waits to be applied.
func (sm *SettingsManager) HasPendingChanges() bool {
	return len(sm.chgPrefsCallbacks) > 0
}

// RegisterRefreshFunc registers a function to be called after changes are applied,
// such as rebuilding the submit client.
func (sm *SettingsManager) RegisterRefreshFunc(refreshFunc func()) {
	sm.refreshFuncs = append(sm.refreshFuncs, refreshFunc)
}

// GetSettingsWindow returns the window associated with the SettingsManager.
func (sm *SettingsManager) GetSettingsWindow() fyne.Window {
	return sm.prefsWindow
}
