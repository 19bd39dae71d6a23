package combine

// Package combine implements the core combine pipeline built on top of an
// externally installed ffmpeg/ffprobe. It validates input selections, builds
// the single ffmpeg invocation that concatenates videos and mixes audio
// tracks, runs the subprocess, and propagates task progress to the UI.
