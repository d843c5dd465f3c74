package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Wiggle/pkg/picker"
)

// DefaultServiceURL is the GIF generation endpoint used when none is configured.
const DefaultServiceURL = "https://images.mikaco.de/api/gif"

// DefaultFrameOffset is the horizontal pixel offset between two frames as
// expected by the GIF service.
const DefaultFrameOffset = 2000

// DefaultRequestTimeout bounds a single GIF generation request.
const DefaultRequestTimeout = 2 * time.Minute

// DefaultSubmitInterval is the minimum spacing between two submissions.
const DefaultSubmitInterval = 2 * time.Second

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// ServiceURLKey is the key for the GIF service endpoint preference
const ServiceURLKey = "service_url"

// GetServiceURL returns the GIF service endpoint
func (c *AppConfig) GetServiceURL() string {
	return c.prefs.StringWithFallback(ServiceURLKey, DefaultServiceURL)
}

// SetServiceURL sets the GIF service endpoint
func (c *AppConfig) SetServiceURL(url string) {
	c.prefs.SetString(ServiceURLKey, url)
}

// FrameOffsetKey is the key for the frame offset preference
const FrameOffsetKey = "frame_offset"

// GetFrameOffset returns the per-frame X offset subtracted before submission
func (c *AppConfig) GetFrameOffset() int {
	return c.prefs.IntWithFallback(FrameOffsetKey, DefaultFrameOffset)
}

// SetFrameOffset sets the per-frame X offset
func (c *AppConfig) SetFrameOffset(offset int) {
	c.prefs.SetInt(FrameOffsetKey, offset)
}

// PreviewZoomKey is the key for the initial preview zoom preference
const PreviewZoomKey = "preview_zoom"

// GetPreviewZoom returns the initial zoom of the magnified preview, clamped to the supported range
func (c *AppConfig) GetPreviewZoom() float64 {
	return picker.ClampZoom(c.prefs.FloatWithFallback(PreviewZoomKey, picker.DefaultZoom))
}

// SetPreviewZoom sets the initial zoom of the magnified preview
func (c *AppConfig) SetPreviewZoom(zoom float64) {
	c.prefs.SetFloat(PreviewZoomKey, picker.ClampZoom(zoom))
}

// TouchSensitivityKey is the key for the touch drag sensitivity preference
const TouchSensitivityKey = "touch_sensitivity"

// GetTouchSensitivity returns the touch drag sensitivity
func (c *AppConfig) GetTouchSensitivity() float64 {
	s := c.prefs.FloatWithFallback(TouchSensitivityKey, picker.DefaultSensitivity)
	if s <= 0 {
		return picker.DefaultSensitivity
	}
	return s
}

// SetTouchSensitivity sets the touch drag sensitivity
func (c *AppConfig) SetTouchSensitivity(s float64) {
	c.prefs.SetFloat(TouchSensitivityKey, s)
}

// PreviewSizeKey is the key for the preview viewport size preference
const PreviewSizeKey = "preview_size"

// GetPreviewSize returns the side length of the square preview in pixels
func (c *AppConfig) GetPreviewSize() float64 {
	s := c.prefs.FloatWithFallback(PreviewSizeKey, picker.DefaultViewportSize)
	if s <= 0 {
		return picker.DefaultViewportSize
	}
	return s
}

// SetPreviewSize sets the side length of the square preview
func (c *AppConfig) SetPreviewSize(size float64) {
	c.prefs.SetFloat(PreviewSizeKey, size)
}

// RequestTimeoutKey is the key for the request timeout preference, in seconds
const RequestTimeoutKey = "request_timeout_seconds"

// GetRequestTimeout returns the timeout for one GIF request
func (c *AppConfig) GetRequestTimeout() time.Duration {
	secs := c.prefs.IntWithFallback(RequestTimeoutKey, int(DefaultRequestTimeout/time.Second))
	if secs <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(secs) * time.Second
}

// SetRequestTimeout sets the timeout for one GIF request
func (c *AppConfig) SetRequestTimeout(d time.Duration) {
	c.prefs.SetInt(RequestTimeoutKey, int(d/time.Second))
}

// SubmitIntervalKey is the key for the minimum submit interval preference, in milliseconds
const SubmitIntervalKey = "submit_interval_ms"

// GetSubmitInterval returns the minimum spacing between two submissions
func (c *AppConfig) GetSubmitInterval() time.Duration {
	ms := c.prefs.IntWithFallback(SubmitIntervalKey, int(DefaultSubmitInterval/time.Millisecond))
	if ms < 0 {
		return DefaultSubmitInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// SetSubmitInterval sets the minimum spacing between two submissions
func (c *AppConfig) SetSubmitInterval(d time.Duration) {
	c.prefs.SetInt(SubmitIntervalKey, int(d/time.Millisecond))
}

// SuggestEnabledKey is the key for the point suggestion preference
const SuggestEnabledKey = "suggest_enabled"

// GetSuggestEnabled returns whether the Suggest button is offered
func (c *AppConfig) GetSuggestEnabled() bool {
	return c.prefs.BoolWithFallback(SuggestEnabledKey, true)
}

// SetSuggestEnabled sets whether the Suggest button is offered
func (c *AppConfig) SetSuggestEnabled(enabled bool) {
	c.prefs.SetBool(SuggestEnabledKey, enabled)
}

// AppUpdateCheckEnabledKey is the key for the app update check enabled preference
const AppUpdateCheckEnabledKey = "app_update_check_enabled"

// GetUpdateCheckEnabled returns whether the application should check for updates
func (c *AppConfig) GetUpdateCheckEnabled() bool {
	return c.prefs.BoolWithFallback(AppUpdateCheckEnabledKey, true)
}

// SetUpdateCheckEnabled sets whether the application should check for updates
func (c *AppConfig) SetUpdateCheckEnabled(enabled bool) {
	c.prefs.SetBool(AppUpdateCheckEnabledKey, enabled)
}

// PickerOptions returns the picker tuning derived from the preferences.
func (c *AppConfig) PickerOptions() picker.Options {
	return picker.Options{
		Zoom:         c.GetPreviewZoom(),
		Sensitivity:  c.GetTouchSensitivity(),
		ViewportSize: c.GetPreviewSize(),
		KeyStep:      picker.DefaultKeyStep,
	}
}
