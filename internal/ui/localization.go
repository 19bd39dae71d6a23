package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyImportVideos     = "import_videos"
	KeyCombine          = "combine"
	KeyStop             = "stop"
	KeyVolume           = "volume"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyNoInputs         = "no_inputs"
	KeyImportHint       = "import_hint"
	KeyInvalidVolume    = "invalid_volume"
	KeyCombineStarted   = "combine_started"
	KeyCombineCompleted = "combine_completed"
	KeyCombineFailed    = "combine_failed"
	KeyCombineStopped   = "combine_stopped"
	KeyShowInFolder     = "show_in_folder"
	KeyOpenFile         = "open_file"
	KeyClose            = "close"
	KeyErrorOpeningFile = "error_opening_file"
	KeySettingsSaved    = "settings_saved"
	KeyDefaultVolume    = "default_volume"
	KeyOverwriteOutput  = "overwrite_output"
	KeyKeepPartial      = "keep_partial"
	KeyFFmpegPath       = "ffmpeg_path"
	KeyFFprobePath      = "ffprobe_path"
	KeySave             = "save"
	KeyCancel           = "cancel"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pl": "Polski",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Video Editor",
		KeyImportVideos:     "Import videos…",
		KeyCombine:          "Combine",
		KeyStop:             "Stop",
		KeyVolume:           "Volume:",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyNoInputs:         "No videos imported yet",
		KeyImportHint:       "Use File → Import videos… (Ctrl+I) to add clips",
		KeyInvalidVolume:    "Volume must be a positive number",
		KeyCombineStarted:   "Combining…",
		KeyCombineCompleted: "Combine completed",
		KeyCombineFailed:    "Combine failed",
		KeyCombineStopped:   "Combine stopped",
		KeyShowInFolder:     "Show in Folder",
		KeyOpenFile:         "Open",
		KeyClose:            "Close",
		KeyErrorOpeningFile: "Error opening file",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyDefaultVolume:    "Default volume",
		KeyOverwriteOutput:  "Overwrite existing output",
		KeyKeepPartial:      "Keep partial file on failure",
		KeyFFmpegPath:       "ffmpeg path (empty = PATH)",
		KeyFFprobePath:      "ffprobe path (empty = PATH)",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
	}

	// Polish texts
	l.texts["pl"] = map[string]string{
		KeyAppTitle:         "Edytor wideo",
		KeyImportVideos:     "Importuj filmy…",
		KeyCombine:          "Połącz",
		KeyStop:             "Zatrzymaj",
		KeyVolume:           "Głośność:",
		KeySettings:         "Ustawienia",
		KeyFile:             "Plik",
		KeyLanguage:         "Język",
		KeyNoInputs:         "Nie zaimportowano jeszcze filmów",
		KeyImportHint:       "Użyj Plik → Importuj filmy… (Ctrl+I), aby dodać klipy",
		KeyInvalidVolume:    "Głośność musi być liczbą dodatnią",
		KeyCombineStarted:   "Łączenie…",
		KeyCombineCompleted: "Łączenie zakończone",
		KeyCombineFailed:    "Łączenie nie powiodło się",
		KeyCombineStopped:   "Łączenie zatrzymane",
		KeyShowInFolder:     "Pokaż w folderze",
		KeyOpenFile:         "Otwórz",
		KeyClose:            "Zamknij",
		KeyErrorOpeningFile: "Błąd otwierania pliku",
		KeySettingsSaved:    "Ustawienia zapisane!",
		KeyDefaultVolume:    "Domyślna głośność",
		KeyOverwriteOutput:  "Nadpisuj istniejący plik wyjściowy",
		KeyKeepPartial:      "Zachowaj częściowy plik po błędzie",
		KeyFFmpegPath:       "ścieżka ffmpeg (puste = PATH)",
		KeyFFprobePath:      "ścieżka ffprobe (puste = PATH)",
		KeySave:             "Zapisz",
		KeyCancel:           "Anuluj",
	}
}
