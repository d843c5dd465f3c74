package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Wiggle/pkg/picker"
)

// CreateSectionTitleLabel creates a label for a section title
func CreateSectionTitleLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.HighImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// CreateSettingTitleLabel creates a label for a setting title
func CreateSettingTitleLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.MediumImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// CreateSettingDescriptionLabel creates a label for a setting description
func CreateSettingDescriptionLabel(desc string) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.LowImportance
	label.TextStyle = fyne.TextStyle{Italic: true}
	return label
}

var zoneTitles = [picker.ZoneCount]string{"Left third", "Middle third", "Right third"}

// slotText is the status line of one selection slot.
func slotText(zone picker.Zone, p picker.Point) string {
	if p.IsUnset() {
		return fmt.Sprintf("%s: not selected", zoneTitles[zone])
	}
	return fmt.Sprintf("%s: %s", zoneTitles[zone], p.Round())
}

// hintText describes the preview cursor.
func hintText(cursor picker.Point) string {
	if cursor == (picker.Point{}) {
		return previewHint
	}
	return fmt.Sprintf("Cursor %s", cursor.Round())
}

func zoomText(zoom float64) string {
	return fmt.Sprintf("Zoom %.2fx", zoom)
}
