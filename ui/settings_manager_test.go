package ui

import (
	"testing"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/dixieflatline76/Wiggle/pkg/ui/setting"
)

func newTestSettingsManager(t *testing.T) *SettingsManager {
	t.Helper()
	a := test.NewApp()
	return NewSettingsManager(a.NewWindow("prefs"))
}

func TestBoolSettingApply(t *testing.T) {
	sm := newTestSettingsManager(t)
	refreshed := 0
	sm.RegisterRefreshFunc(func() { refreshed++ })

	var applied *bool
	check := sm.CreateBoolSetting(&setting.BoolConfig{
		Name:      "Suggest",
		Label:     widget.NewLabel("Suggest"),
		ApplyFunc: func(b bool) { applied = &b },
	}, container.NewVBox())

	assert.True(t, sm.GetApplySettingsButton().Disabled())

	test.Tap(check)
	assert.True(t, sm.HasPendingChanges())
	assert.False(t, sm.GetApplySettingsButton().Disabled())

	test.Tap(sm.GetApplySettingsButton())
	if assert.NotNil(t, applied) {
		assert.True(t, *applied)
	}
	assert.Equal(t, 1, refreshed)
	assert.False(t, sm.HasPendingChanges())
	assert.True(t, sm.GetApplySettingsButton().Disabled())
}

func TestBoolSettingToggleBackClearsChange(t *testing.T) {
	sm := newTestSettingsManager(t)
	check := sm.CreateBoolSetting(&setting.BoolConfig{
		Name:      "Update check",
		Label:     widget.NewLabel("Update check"),
		ApplyFunc: func(bool) { t.Fatal("nothing to apply") },
	}, container.NewVBox())

	test.Tap(check)
	test.Tap(check)

	assert.False(t, sm.HasPendingChanges())
}

func TestTextEntrySettingValidates(t *testing.T) {
	sm := newTestSettingsManager(t)
	var applied string
	entry := sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "Frame offset",
		InitialValue: "2000",
		Label:        widget.NewLabel("Frame offset"),
		Validator:    setting.IntValidator(0, 100000),
		ApplyFunc:    func(s string) { applied = s },
	}, container.NewVBox())

	entry.SetText("abc")
	assert.False(t, sm.HasPendingChanges(), "invalid input is not queued")

	entry.SetText("1500")
	assert.True(t, sm.HasPendingChanges())

	entry.SetText("2000")
	assert.False(t, sm.HasPendingChanges(), "back to the saved value")

	entry.SetText("1800")
	test.Tap(sm.GetApplySettingsButton())
	assert.Equal(t, "1800", applied)
}

func TestSliderSettingApply(t *testing.T) {
	sm := newTestSettingsManager(t)
	var applied float64
	slider := sm.CreateSliderSetting(&setting.SliderConfig{
		Name:         "Preview zoom",
		Min:          0.25,
		Max:          15,
		Step:         0.25,
		InitialValue: 2,
		Label:        widget.NewLabel("Zoom"),
		Format:       zoomText,
		ApplyFunc:    func(v float64) { applied = v },
	}, container.NewVBox())

	slider.SetValue(3)
	assert.True(t, sm.HasPendingChanges())

	test.Tap(sm.GetApplySettingsButton())
	assert.Equal(t, 3.0, applied)
}

func TestGetSettingsWindow(t *testing.T) {
	a := test.NewApp()
	w := a.NewWindow("prefs")
	sm := NewSettingsManager(w)
	assert.Equal(t, w, sm.GetSettingsWindow())
}
