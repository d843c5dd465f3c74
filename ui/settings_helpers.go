package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// CreateSectionTitleLabel creates a label for a settings section
func (sm *SettingsManager) CreateSectionTitleLabel(desc string) *widget.Label {
	return CreateSectionTitleLabel(desc)
}

// CreateSettingTitleLabel creates a label for a setting title
func (sm *SettingsManager) CreateSettingTitleLabel(desc string) *widget.Label {
	return CreateSettingTitleLabel(desc)
}

// CreateSettingDescriptionLabel creates a label for a setting description
func (sm *SettingsManager) CreateSettingDescriptionLabel(desc string) fyne.CanvasObject {
	return CreateSettingDescriptionLabel(desc)
}
