package combine

import (
	"strings"
	"testing"
)

func TestParseProbeOutput(t *testing.T) {
	payload := []byte(`{
		"streams": [
			{"codec_type": "video"},
			{"codec_type": "audio"}
		],
		"format": {"duration": "12.480000"}
	}`)

	info, err := parseProbeOutput(payload, "/videos/a.mkv")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if info.Path != "/videos/a.mkv" {
		t.Errorf("Expected path to be preserved, got %s", info.Path)
	}
	if info.AudioStreams != 1 {
		t.Errorf("Expected 1 audio stream, got %d", info.AudioStreams)
	}
	if info.DurationSec != 12.48 {
		t.Errorf("Expected duration 12.48, got %v", info.DurationSec)
	}
}

func TestParseProbeOutput_TwoAudioTracks(t *testing.T) {
	payload := []byte(`{
		"streams": [
			{"codec_type": "video"},
			{"codec_type": "audio"},
			{"codec_type": "audio"}
		],
		"format": {"duration": "8.0"}
	}`)

	info, err := parseProbeOutput(payload, "recording.mkv")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if info.AudioStreams != 2 {
		t.Errorf("Expected 2 audio streams, got %d", info.AudioStreams)
	}
}

func TestParseProbeOutput_VideoOnly(t *testing.T) {
	payload := []byte(`{"streams": [{"codec_type": "video"}], "format": {"duration": "3.0"}}`)

	info, err := parseProbeOutput(payload, "silent.mkv")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if info.AudioStreams != 0 {
		t.Errorf("Expected no audio streams for video-only input, got %d", info.AudioStreams)
	}
}

func TestParseProbeOutput_MissingDuration(t *testing.T) {
	payload := []byte(`{"streams": [{"codec_type": "video"}], "format": {}}`)

	info, err := parseProbeOutput(payload, "a.mkv")
	if err != nil {
		t.Fatalf("Expected no error for missing duration, got: %v", err)
	}
	if info.DurationSec != 0 {
		t.Errorf("Expected zero duration, got %v", info.DurationSec)
	}
}

func TestParseProbeOutput_InvalidJSON(t *testing.T) {
	_, err := parseProbeOutput([]byte("not json"), "a.mkv")
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "a.mkv") {
		t.Errorf("Error should name the input file, got: %v", err)
	}
}
