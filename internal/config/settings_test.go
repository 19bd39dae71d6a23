package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDefaultVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	volume := settings.GetDefaultVolume()
	if volume != DefaultVolume {
		t.Errorf("Expected default volume %v, got %v", DefaultVolume, volume)
	}

	// Test setting custom value
	settings.SetDefaultVolume(1.5)
	if settings.GetDefaultVolume() != 1.5 {
		t.Errorf("Expected volume 1.5, got %v", settings.GetDefaultVolume())
	}

	// Test boundary values
	settings.SetDefaultVolume(0) // Should be clamped to MinVolume
	if settings.GetDefaultVolume() != MinVolume {
		t.Errorf("Volume should be clamped to %v, got %v", MinVolume, settings.GetDefaultVolume())
	}

	settings.SetDefaultVolume(100) // Should be clamped to MaxVolume
	if settings.GetDefaultVolume() != MaxVolume {
		t.Errorf("Volume should be clamped to %v, got %v", MaxVolume, settings.GetDefaultVolume())
	}
}

func TestLastImportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastImportDirectory() != "" {
		t.Error("Last import directory should start empty")
	}

	settings.SetLastImportDirectory("/videos/raw")
	if settings.GetLastImportDirectory() != "/videos/raw" {
		t.Errorf("Expected '/videos/raw', got %s", settings.GetLastImportDirectory())
	}
}

func TestOverwriteOutput(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetOverwriteOutput() != DefaultOverwriteOutput {
		t.Errorf("Expected default overwrite %v", DefaultOverwriteOutput)
	}

	settings.SetOverwriteOutput(false)
	if settings.GetOverwriteOutput() {
		t.Error("Expected overwrite to be disabled after SetOverwriteOutput(false)")
	}
}

func TestKeepPartial(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetKeepPartial() != DefaultKeepPartial {
		t.Errorf("Expected default keep partial %v", DefaultKeepPartial)
	}

	settings.SetKeepPartial(true)
	if !settings.GetKeepPartial() {
		t.Error("Expected keep partial to be enabled")
	}
}

func TestBinaryOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFFmpegPath() != "" || settings.GetFFprobePath() != "" {
		t.Error("Binary overrides should start empty")
	}

	settings.SetFFmpegPath("/opt/ffmpeg/bin/ffmpeg")
	settings.SetFFprobePath("/opt/ffmpeg/bin/ffprobe")

	if settings.GetFFmpegPath() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Unexpected ffmpeg path: %s", settings.GetFFmpegPath())
	}
	if settings.GetFFprobePath() != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("Unexpected ffprobe path: %s", settings.GetFFprobePath())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}

	settings.SetLanguage("pl")
	if settings.GetLanguage() != "pl" {
		t.Errorf("Expected language 'pl', got %s", settings.GetLanguage())
	}
}
