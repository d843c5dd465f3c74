package ui

// previewHint is shown in place of cursor coordinates until the cursor moves
const previewHint = "Select point to see zoomed preview"

// displayMaxDim bounds the texture handed to the picking surface
const displayMaxDim = 2048

// markerSize is the height of a selection marker in device pixels
const markerSize = 14

// frameDelayFallback is used when the GIF carries a zero delay, in 1/100 s
const frameDelayFallback = 12

// aboutUpdateTimeout bounds the update check run from the About dialog
const aboutUpdateTimeout = 10 // seconds

// updateLabelPrefix is the copy for the new update available link
const updateLabelPrefix = "Update to "
