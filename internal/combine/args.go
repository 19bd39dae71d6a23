package combine

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// FFmpeg constants for the combine invocation
const (
	// Video codec settings
	VideoCodec  = "libx264"
	VideoPreset = "medium"
	VideoCRF    = "23"

	// Audio codec settings
	AudioCodec   = "aac"
	AudioBitrate = "192k"

	// Container flags
	FastStartFlag = "+faststart"

	// Executable and I/O constants
	FFmpegCommand      = "ffmpeg"
	FFprobeCommand     = "ffprobe"
	ProgressPipeTarget = "pipe:2"
	ProgressTimePrefix = "out_time_us="
	TaskIDPrefix       = "combine-"
)

// Inputs often carry a second audio track (a voiceover or mic recording on
// top of the game/background track); both go into the mix, anything beyond
// that is ignored.
const mixedStreamsPerInput = 2

// InputInfo carries the probed facts about one input the builder needs:
// its duration (for progress) and how many audio streams it has.
type InputInfo struct {
	Path         string
	DurationSec  float64
	AudioStreams int
}

// BuildFFmpegArgs builds the single ffmpeg invocation that concatenates all
// inputs' video streams in order, mixes their audio streams with the first
// stream scaled by volume, and writes to outputPath. Each input contributes
// up to two audio streams (main track plus voiceover) at unity; inputs
// without audio are left out of the mix, and when no input has audio the
// output is written without an audio stream.
func BuildFFmpegArgs(inputs []InputInfo, volume float64, outputPath string) []string {
	args := []string{"-y", "-hide_banner"}

	for _, input := range inputs {
		args = append(args, "-i", input.Path)
	}

	graph, hasAudio := buildFilterGraph(inputs, volume)
	args = append(args, "-filter_complex", graph)

	args = append(args, "-map", "[outv]")
	if hasAudio {
		args = append(args, "-map", "[outa]")
	} else {
		args = append(args, "-an")
	}

	args = append(args,
		"-c:v", VideoCodec,
		"-preset", VideoPreset,
		"-crf", VideoCRF,
	)
	if hasAudio {
		args = append(args, "-c:a", AudioCodec, "-b:a", AudioBitrate)
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".mp4", ".mov", ".m4v":
		args = append(args, "-movflags", FastStartFlag)
	}

	args = append(args,
		"-progress", ProgressPipeTarget,
		"-nostats",
		outputPath,
	)

	return args
}

// buildFilterGraph builds the filter_complex expression: video concat of all
// inputs plus an amix of every mixed audio stream, with the first stream's
// volume scaled. Returns the graph and whether it produced an audio output.
func buildFilterGraph(inputs []InputInfo, volume float64) (string, bool) {
	var graph strings.Builder

	for i := range inputs {
		fmt.Fprintf(&graph, "[%d:v:0]", i)
	}
	fmt.Fprintf(&graph, "concat=n=%d:v=1:a=0[outv]", len(inputs))

	type streamRef struct{ input, stream int }
	var streams []streamRef
	for i, input := range inputs {
		count := input.AudioStreams
		if count > mixedStreamsPerInput {
			count = mixedStreamsPerInput
		}
		for s := 0; s < count; s++ {
			streams = append(streams, streamRef{input: i, stream: s})
		}
	}
	if len(streams) == 0 {
		return graph.String(), false
	}

	// The volume filter is always emitted, even for a factor of 1.0, so every
	// combine goes through the same graph shape. Only the first stream is
	// scaled; the voiceover tracks keep unity gain.
	first := streams[0]
	fmt.Fprintf(&graph, ";[%d:a:%d]volume=%s[a0]", first.input, first.stream, formatVolume(volume))
	graph.WriteString(";[a0]")
	for _, ref := range streams[1:] {
		fmt.Fprintf(&graph, "[%d:a:%d]", ref.input, ref.stream)
	}
	fmt.Fprintf(&graph, "amix=inputs=%d:dropout_transition=0[outa]", len(streams))

	return graph.String(), true
}

// formatVolume renders the volume factor without trailing zeros (1.0 -> "1").
func formatVolume(volume float64) string {
	return strconv.FormatFloat(volume, 'f', -1, 64)
}

// TotalDurationSec sums the probed input durations, the expected length of
// the concatenated output.
func TotalDurationSec(inputs []InputInfo) float64 {
	var total float64
	for _, input := range inputs {
		total += input.DurationSec
	}
	return total
}
