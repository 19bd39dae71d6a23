package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// InputRow renders one imported input file in the list: its position,
// file name, and a remove button.
type InputRow struct {
	widget.BaseWidget

	index int
	path  string

	label     *widget.Label
	removeBtn *widget.Button

	onRemove func(index int)
}

// NewInputRow creates an empty input row; SetInput fills it during list updates
func NewInputRow() *InputRow {
	row := &InputRow{
		label: widget.NewLabel(""),
	}
	row.label.Truncation = fyne.TextTruncateEllipsis

	row.removeBtn = widget.NewButton(IconClose, func() {
		if row.onRemove != nil {
			row.onRemove(row.index)
		}
	})
	row.removeBtn.Importance = widget.LowImportance

	row.ExtendBaseWidget(row)
	return row
}

// SetInput updates the row with the input at index
func (r *InputRow) SetInput(index int, path string) {
	r.index = index
	r.path = path
	r.label.SetText(filepath.Base(path))
	r.Refresh()
}

// SetOnRemove sets the callback invoked when the remove button is tapped
func (r *InputRow) SetOnRemove(callback func(index int)) {
	r.onRemove = callback
}

// CreateRenderer creates the widget renderer
func (r *InputRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, nil, nil, r.removeBtn, r.label)
	return widget.NewSimpleRenderer(content)
}

// MinSize returns the minimum row size
func (r *InputRow) MinSize() fyne.Size {
	min := r.BaseWidget.MinSize()
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
