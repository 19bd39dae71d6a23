package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultVolume   = "default_volume"
	KeyLastImportDir   = "last_import_directory"
	KeyOverwriteOutput = "overwrite_output"
	KeyKeepPartial     = "keep_partial_output"
	KeyFFmpegPath      = "ffmpeg_path"
	KeyFFprobePath     = "ffprobe_path"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultVolume          = 1.0
	DefaultOverwriteOutput = true
	DefaultKeepPartial     = false
	DefaultLanguage        = "system"
)

// Volume bounds for the settings dialog
const (
	MinVolume = 0.01
	MaxVolume = 10.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultVolume returns the volume factor pre-filled in the volume field
func (s *Settings) GetDefaultVolume() float64 {
	return s.app.Preferences().FloatWithFallback(KeyDefaultVolume, DefaultVolume)
}

// SetDefaultVolume sets the default volume factor, clamped to sane bounds
func (s *Settings) SetDefaultVolume(volume float64) {
	if volume < MinVolume {
		volume = MinVolume
	}
	if volume > MaxVolume {
		volume = MaxVolume
	}
	s.app.Preferences().SetFloat(KeyDefaultVolume, volume)
}

// GetLastImportDirectory returns the directory the import dialog opens in
func (s *Settings) GetLastImportDirectory() string {
	return s.app.Preferences().String(KeyLastImportDir)
}

// SetLastImportDirectory remembers the directory of the last imported file
func (s *Settings) SetLastImportDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastImportDir, dir)
}

// GetOverwriteOutput returns whether an existing output file may be replaced.
// The GUI save dialog already asks about replacement, so this defaults to on.
func (s *Settings) GetOverwriteOutput() bool {
	return s.app.Preferences().BoolWithFallback(KeyOverwriteOutput, DefaultOverwriteOutput)
}

// SetOverwriteOutput sets the overwrite policy
func (s *Settings) SetOverwriteOutput(overwrite bool) {
	s.app.Preferences().SetBool(KeyOverwriteOutput, overwrite)
}

// GetKeepPartial returns whether a failed combine keeps its partial output
func (s *Settings) GetKeepPartial() bool {
	return s.app.Preferences().BoolWithFallback(KeyKeepPartial, DefaultKeepPartial)
}

// SetKeepPartial sets whether partial outputs survive a failed combine
func (s *Settings) SetKeepPartial(keep bool) {
	s.app.Preferences().SetBool(KeyKeepPartial, keep)
}

// GetFFmpegPath returns the ffmpeg binary override, empty for PATH lookup
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().String(KeyFFmpegPath)
}

// SetFFmpegPath sets the ffmpeg binary override
func (s *Settings) SetFFmpegPath(path string) {
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetFFprobePath returns the ffprobe binary override, empty for PATH lookup
func (s *Settings) GetFFprobePath() string {
	return s.app.Preferences().String(KeyFFprobePath)
}

// SetFFprobePath sets the ffprobe binary override
func (s *Settings) SetFFprobePath(path string) {
	s.app.Preferences().SetString(KeyFFprobePath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
