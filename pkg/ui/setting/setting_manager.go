package setting

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SettingsHelper is the interface that must be implemented by all settings helpers.
type SettingsHelper interface {
	CreateSectionTitleLabel(desc string) *widget.Label           // Creates a section title label.
	CreateSettingTitleLabel(desc string) *widget.Label           // Creates a setting title label.
	CreateSettingDescriptionLabel(desc string) fyne.CanvasObject // Creates a setting description label.
}

// BoolConfig holds configuration for a boolean check setting.
type BoolConfig struct {
	Name         string
	InitialValue bool
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(bool)
}

// TextEntrySettingConfig holds configuration for a text entry setting.
type TextEntrySettingConfig struct {
	Name              string
	InitialValue      string
	PlaceHolder       string
	Label             fyne.CanvasObject
	HelpContent       fyne.CanvasObject
	Validator         fyne.StringValidator
	PostValidateCheck func(string) error
	ApplyFunc         func(string)
}

// SliderConfig holds configuration for a numeric slider setting.
type SliderConfig struct {
	Name         string
	Min, Max     float64
	Step         float64
	InitialValue float64
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	// Format renders the current value next to the slider. Defaults to two decimals.
	Format    func(float64) string
	ApplyFunc func(float64)
}

// FormatValue renders v with the configured formatter.
func (c *SliderConfig) FormatValue(v float64) string {
	if c.Format != nil {
		return c.Format(v)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// IntValidator returns a validator accepting whole numbers in [lo, hi].
func IntValidator(lo, hi int) fyne.StringValidator {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("must be a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// SettingsManager is an interface for managing settings. It provides methods to create various types of settings widgets.
type SettingsManager interface {
	SettingsHelper

	CreateBoolSetting(cfg *BoolConfig, header *fyne.Container) *widget.Check                  // Create a boolean setting widget.
	CreateTextEntrySetting(cfg *TextEntrySettingConfig, header *fyne.Container) *widget.Entry // Create a text entry setting widget.
	CreateSliderSetting(cfg *SliderConfig, header *fyne.Container) *widget.Slider             // Create a slider setting widget.

	GetApplySettingsButton() *widget.Button                        // GetApplySettingsButton returns the Apply Changes button.
	SetSettingChangedCallback(settingName string, callback func()) // Set a callback function to be called when a setting changes.
	RemoveSettingChangedCallback(settingName string)               // Remove a callback function associated with a specific setting.
	HasPendingChanges() bool                                       // Reports whether any setting waits to be applied.

	RegisterRefreshFunc(refreshFunc func()) // Register a function to be called after changes are applied.
	GetSettingsWindow() fyne.Window         // GetSettingsWindow returns the window associated with the SettingsManager.
}
