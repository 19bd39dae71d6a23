package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/GKaszewski/video-editor/internal/combine"
	"github.com/GKaszewski/video-editor/internal/config"
	"github.com/GKaszewski/video-editor/internal/model"
	"github.com/GKaszewski/video-editor/internal/platform"
)

// Default output file name suggested by the save dialog
const DefaultOutputName = "combined.mp4"

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	inputs []string

	inputList   *widget.List
	emptyHint   *widget.Label
	volumeEntry *widget.Entry
	combineBtn  *widget.Button
	stopBtn     *widget.Button
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	// Active combine; a fresh service is built per combine so settings
	// changes always apply to the next run.
	combineSvc   combine.Combiner
	activeTaskID string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Input list
	ui.inputList = widget.NewList(
		func() int { return len(ui.inputs) },
		func() fyne.CanvasObject { return ui.createInputRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateInputRow(id, obj) },
	)

	ui.emptyHint = widget.NewLabel(ui.localization.GetText(KeyImportHint))
	ui.emptyHint.Alignment = fyne.TextAlignCenter

	// Volume entry
	ui.volumeEntry = widget.NewEntry()
	ui.volumeEntry.SetText(formatVolumeText(ui.settings.GetDefaultVolume()))
	ui.volumeEntry.Validator = ui.validateVolume

	volumeLabel := widget.NewLabel(ui.localization.GetText(KeyVolume))

	// Combine / Stop buttons
	ui.combineBtn = widget.NewButton(ui.localization.GetText(KeyCombine), ui.onCombineClick)
	ui.combineBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()

	// Progress / status
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	ui.statusLabel = widget.NewLabel("")

	bottomRow := container.NewBorder(nil, nil,
		container.NewHBox(volumeLabel, ui.volumeEntry),
		container.NewHBox(ui.stopBtn, ui.combineBtn),
	)
	bottom := container.NewVBox(bottomRow, ui.progressBar, ui.statusLabel)

	center := container.NewStack(ui.emptyHint, ui.inputList)
	ui.refreshEmptyHint()

	content := container.NewBorder(nil, bottom, nil, nil, center)
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	// The menu shortcut only fires while the menu is open on some platforms;
	// register it on the canvas as well.
	importShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyI, Modifier: fyne.KeyModifierControl}
	ui.window.Canvas().AddShortcut(importShortcut, func(fyne.Shortcut) { ui.onImportClick() })
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	importItem := fyne.NewMenuItem(ui.localization.GetText(KeyImportVideos), ui.onImportClick)
	importItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyI, Modifier: fyne.KeyModifierControl}

	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), importItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.emptyHint.SetText(ui.localization.GetText(KeyImportHint))
	ui.combineBtn.SetText(ui.localization.GetText(KeyCombine))
	ui.stopBtn.SetText(ui.localization.GetText(KeyStop))
	ui.inputList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// validateVolume validates the volume entry content
func (ui *RootUI) validateVolume(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty falls back to the default volume
	}

	volume, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || volume <= 0 {
		return fmt.Errorf("%s", ui.localization.GetText(KeyInvalidVolume))
	}
	return nil
}

// currentVolume returns the entered volume factor, or the configured default
// when the field is empty
func (ui *RootUI) currentVolume() (float64, error) {
	text := strings.TrimSpace(ui.volumeEntry.Text)
	if text == "" {
		return ui.settings.GetDefaultVolume(), nil
	}

	volume, err := strconv.ParseFloat(text, 64)
	if err != nil || volume <= 0 {
		return 0, fmt.Errorf("%s", ui.localization.GetText(KeyInvalidVolume))
	}
	return volume, nil
}

// onImportClick opens the file dialog and appends the chosen video to the
// input list. Fyne's open dialog picks one file; the action is repeatable.
func (ui *RootUI) onImportClick() {
	dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return // cancelled
		}

		path := reader.URI().Path()
		reader.Close()

		ui.addInput(path)
	}, ui.window)

	dlg.SetFilter(storage.NewExtensionFileFilter(VideoExtensions))
	if dir := ui.settings.GetLastImportDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			dlg.SetLocation(lister)
		}
	}
	dlg.Show()
}

// addInput appends an imported file and remembers its directory
func (ui *RootUI) addInput(path string) {
	log.Printf("Imported video: %s", path)

	ui.inputs = append(ui.inputs, path)
	ui.settings.SetLastImportDirectory(filepath.Dir(path))

	ui.refreshEmptyHint()
	ui.inputList.Refresh()
}

// onRemoveInput removes the input at index from the list
func (ui *RootUI) onRemoveInput(index int) {
	if index < 0 || index >= len(ui.inputs) {
		return
	}

	log.Printf("Removed input %d: %s", index, ui.inputs[index])
	ui.inputs = append(ui.inputs[:index], ui.inputs[index+1:]...)

	ui.refreshEmptyHint()
	ui.inputList.Refresh()
}

// refreshEmptyHint toggles the hint shown when no inputs are imported
func (ui *RootUI) refreshEmptyHint() {
	if len(ui.inputs) == 0 {
		ui.emptyHint.Show()
	} else {
		ui.emptyHint.Hide()
	}
}

// createInputRow creates a new input row widget
func (ui *RootUI) createInputRow() fyne.CanvasObject {
	row := NewInputRow()
	row.SetOnRemove(ui.onRemoveInput)
	return row
}

// updateInputRow updates an input row with current data
func (ui *RootUI) updateInputRow(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.inputs) {
		return
	}

	if row, ok := item.(*InputRow); ok {
		row.SetOnRemove(ui.onRemoveInput)
		row.SetInput(id, ui.inputs[id])
	}
}

// onCombineClick validates the selection and prompts for the output path
func (ui *RootUI) onCombineClick() {
	if len(ui.inputs) == 0 {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoInputs)), ui.window.Canvas())
		return
	}

	volume, err := ui.currentVolume()
	if err != nil {
		widget.ShowPopUp(widget.NewLabel(err.Error()), ui.window.Canvas())
		return
	}

	dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return // cancelled
		}

		outputPath := writer.URI().Path()
		writer.Close()

		ui.startCombine(outputPath, volume)
	}, ui.window)

	dlg.SetFileName(DefaultOutputName)
	dlg.SetFilter(storage.NewExtensionFileFilter(VideoExtensions))
	dlg.Show()
}

// startCombine builds a fresh service from current settings and starts the task
func (ui *RootUI) startCombine(outputPath string, volume float64) {
	svc := combine.NewService(combine.Options{
		FFmpegBinary:  ui.settings.GetFFmpegPath(),
		FFprobeBinary: ui.settings.GetFFprobePath(),
		// The save dialog already confirmed replacing an existing file.
		Overwrite:   ui.settings.GetOverwriteOutput(),
		KeepPartial: ui.settings.GetKeepPartial(),
	})
	svc.SetUpdateCallback(ui.onTaskUpdate)

	sel := combine.Selection{
		Inputs: append([]string(nil), ui.inputs...),
		Output: outputPath,
		Volume: volume,
	}

	task, err := svc.StartCombine(sel)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("Combine started: task=%s output=%s", task.ID, outputPath)

	ui.combineSvc = svc
	ui.activeTaskID = task.ID

	ui.combineBtn.Disable()
	ui.stopBtn.Enable()
	ui.progressBar.SetValue(0)
	ui.progressBar.Show()
	ui.statusLabel.SetText(ui.localization.GetText(KeyCombineStarted))
}

// onStopClick requests cancellation of the running combine
func (ui *RootUI) onStopClick() {
	if ui.combineSvc == nil || ui.activeTaskID == "" {
		return
	}

	if err := ui.combineSvc.Stop(ui.activeTaskID); err != nil {
		log.Printf("Error stopping task %s: %v", ui.activeTaskID, err)
	}
}

// onTaskUpdate handles progress and completion updates from the combine
// service. It is called from the service goroutine, so all widget changes go
// through fyne.Do.
func (ui *RootUI) onTaskUpdate(task *model.CombineTask) {
	fyne.Do(func() {
		ui.progressBar.SetValue(task.Progress)

		switch task.Status {
		case model.TaskStatusCompleted:
			ui.finishCombine(ui.localization.GetText(KeyCombineCompleted))
			ui.showCompletedDialog(task)
		case model.TaskStatusError:
			ui.finishCombine(ui.localization.GetText(KeyCombineFailed))
			dialog.ShowError(fmt.Errorf("%s: %s", ui.localization.GetText(KeyCombineFailed), task.LastError), ui.window)
		case model.TaskStatusStopped:
			ui.finishCombine(ui.localization.GetText(KeyCombineStopped))
		default:
			ui.statusLabel.SetText(fmt.Sprintf("%s %d%%",
				ui.localization.GetText(KeyCombineStarted), task.Percent))
		}
	})
}

// finishCombine resets the controls after a task reaches a final state
func (ui *RootUI) finishCombine(status string) {
	ui.statusLabel.SetText(status)
	ui.progressBar.Hide()
	ui.combineBtn.Enable()
	ui.stopBtn.Disable()
	ui.combineSvc = nil
	ui.activeTaskID = ""
}

// showCompletedDialog offers to play the finished output or reveal it in the
// file manager
func (ui *RootUI) showCompletedDialog(task *model.CombineTask) {
	outputPath := task.OutputPath

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpenFile), func() {
		if err := platform.OpenFileWithDefaultApp(outputPath); err != nil {
			log.Printf("Error opening file %s: %v", outputPath, err)
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
		}
	})

	title := fmt.Sprintf("%s: %s", ui.localization.GetText(KeyCombineCompleted), task.GetDisplayName())

	dialog.ShowCustomConfirm(
		title,
		ui.localization.GetText(KeyShowInFolder),
		ui.localization.GetText(KeyClose),
		container.NewVBox(widget.NewLabel(outputPath), openBtn),
		func(reveal bool) {
			if !reveal {
				return
			}
			if err := platform.OpenFileInManager(outputPath); err != nil {
				log.Printf("Error revealing file %s: %v", outputPath, err)
				dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
			}
		},
		ui.window,
	)
}

// formatVolumeText renders a volume factor for the entry field
func formatVolumeText(volume float64) string {
	return strconv.FormatFloat(volume, 'f', -1, 64)
}
