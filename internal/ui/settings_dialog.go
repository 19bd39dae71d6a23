package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/GKaszewski/video-editor/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// UI components
	volumeEntry      *widget.Entry
	overwriteCheck   *widget.Check
	keepPartialCheck *widget.Check
	ffmpegEntry      *widget.Entry
	ffprobeEntry     *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.volumeEntry = widget.NewEntry()
	sd.volumeEntry.SetPlaceHolder("1.0")

	sd.overwriteCheck = widget.NewCheck(sd.localization.GetText(KeyOverwriteOutput), nil)
	sd.keepPartialCheck = widget.NewCheck(sd.localization.GetText(KeyKeepPartial), nil)

	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder("ffmpeg")
	sd.ffprobeEntry = widget.NewEntry()
	sd.ffprobeEntry.SetPlaceHolder("ffprobe")

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDefaultVolume)),
		sd.volumeEntry,

		widget.NewSeparator(),
		sd.overwriteCheck,
		sd.keepPartialCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyFFmpegPath)),
		sd.ffmpegEntry,

		widget.NewLabel(sd.localization.GetText(KeyFFprobePath)),
		sd.ffprobeEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(440, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.volumeEntry.SetText(strconv.FormatFloat(sd.settings.GetDefaultVolume(), 'f', -1, 64))
	sd.overwriteCheck.SetChecked(sd.settings.GetOverwriteOutput())
	sd.keepPartialCheck.SetChecked(sd.settings.GetKeepPartial())
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.ffprobeEntry.SetText(sd.settings.GetFFprobePath())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if text := strings.TrimSpace(sd.volumeEntry.Text); text != "" {
		if volume, err := strconv.ParseFloat(text, 64); err == nil {
			sd.settings.SetDefaultVolume(volume)
		}
	}

	sd.settings.SetOverwriteOutput(sd.overwriteCheck.Checked)
	sd.settings.SetKeepPartial(sd.keepPartialCheck.Checked)
	sd.settings.SetFFmpegPath(strings.TrimSpace(sd.ffmpegEntry.Text))
	sd.settings.SetFFprobePath(strings.TrimSpace(sd.ffprobeEntry.Text))

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
