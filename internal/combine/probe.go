package combine

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// probeResult mirrors the subset of ffprobe's JSON output we care about.
type probeResult struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	CodecType string `json:"codec_type"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

// ProbeInput runs ffprobe against path and returns its duration and how many
// audio streams it carries.
func ProbeInput(ctx context.Context, binary, path string) (InputInfo, error) {
	if binary == "" {
		binary = FFprobeCommand
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-show_entries", "stream=codec_type",
		"-show_entries", "format=duration",
		"-of", "json",
		"--", path,
	)
	output, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return InputInfo{}, &ProcessError{
				Tool:     FFprobeCommand,
				ExitCode: ee.ExitCode(),
				Output:   string(ee.Stderr),
			}
		}
		return InputInfo{}, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	return parseProbeOutput(output, path)
}

// parseProbeOutput decodes ffprobe JSON into an InputInfo.
func parseProbeOutput(output []byte, path string) (InputInfo, error) {
	var result probeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return InputInfo{}, fmt.Errorf("failed to parse ffprobe output for %s: %w", path, err)
	}

	info := InputInfo{Path: path}
	for _, stream := range result.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			info.AudioStreams++
		}
	}

	if durationStr := strings.TrimSpace(result.Format.Duration); durationStr != "" {
		duration, err := strconv.ParseFloat(durationStr, 64)
		if err != nil {
			return InputInfo{}, fmt.Errorf("failed to parse duration for %s: %w", path, err)
		}
		info.DurationSec = duration
	}

	return info, nil
}
