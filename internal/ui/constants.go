package ui

// IconClose marks the per-row remove button.
const IconClose = "×"

// Layout sizing
const (
	RowMinHeight float32 = 36

	WindowMinWidth  float32 = 520
	WindowMinHeight float32 = 380
)

// Video file extensions accepted by the import dialog
var VideoExtensions = []string{".mp4", ".mkv", ".mov", ".avi", ".webm"}
