package combine

import (
	"context"
	"errors"
	"testing"
)

func TestLookupTool_Missing(t *testing.T) {
	_, err := LookupTool("video-editor-no-such-binary")
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound, got: %v", err)
	}
}

func TestRunFFmpeg_ProgressAndSuccess(t *testing.T) {
	var seen []float64
	err := runFFmpeg(context.Background(), "sh",
		[]string{"-c", "echo 'out_time_us=500000' >&2; echo 'out_time_us=1000000' >&2"},
		func(seconds float64) { seen = append(seen, seconds) })
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("Expected 2 progress updates, got %d", len(seen))
	}
	if seen[0] != 0.5 || seen[1] != 1.0 {
		t.Errorf("Expected progress [0.5 1.0], got %v", seen)
	}
}

func TestRunFFmpeg_FailureCarriesDiagnostics(t *testing.T) {
	err := runFFmpeg(context.Background(), "sh",
		[]string{"-c", "echo 'Error: something broke' >&2; exit 3"}, nil)
	if err == nil {
		t.Fatal("Expected error for non-zero exit")
	}

	pe, ok := AsProcessError(err)
	if !ok {
		t.Fatalf("Expected ProcessError, got: %v", err)
	}
	if pe.ExitCode != 3 {
		t.Errorf("Expected exit code 3, got %d", pe.ExitCode)
	}
	if pe.Output != "Error: something broke" {
		t.Errorf("Expected stderr tail in Output, got %q", pe.Output)
	}
}

func TestRunFFmpeg_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runFFmpeg(ctx, "sh", []string{"-c", "sleep 10"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
}

func TestIsProgressLine(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"bitrate=1024.5kbits/s", true},
		{"total_size=123456", true},
		{"progress=continue", true},
		{"speed=2.5x", true},
		{"Error opening output file", false},
		{"out.mp4: Permission denied", false},
		{"[libx264 @ 0x55] frame I:1", false},
		{"", false},
	}

	for _, test := range tests {
		if result := isProgressLine(test.line); result != test.expected {
			t.Errorf("isProgressLine(%q) = %v, expected %v", test.line, result, test.expected)
		}
	}
}
