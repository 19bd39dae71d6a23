package combine

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// stderr diagnostic tail kept for error reporting
const stderrTailLines = 40

// LookupTool resolves binary on the command search path. A missing tool is
// reported as ErrToolNotFound before any subprocess is started.
func LookupTool(binary string) (string, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not installed or not on PATH", ErrToolNotFound, binary)
	}
	return path, nil
}

// runFFmpeg executes ffmpeg with the built arguments, feeding out_time_us
// progress values (seconds) to onProgress and keeping a bounded tail of
// stderr for diagnostics. Returns a ProcessError on non-zero exit.
func runFFmpeg(ctx context.Context, binary string, args []string, onProgress func(seconds float64)) error {
	cmd := exec.CommandContext(ctx, binary, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	var tail []string
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ProgressTimePrefix) {
			timeStr := strings.TrimPrefix(line, ProgressTimePrefix)
			timeMicroseconds, err := strconv.ParseInt(timeStr, 10, 64)
			if err != nil {
				continue
			}
			if onProgress != nil {
				onProgress(float64(timeMicroseconds) / 1000000.0)
			}
			continue
		}

		// -progress interleaves key=value blocks with the regular log; keep
		// only the log lines for diagnostics.
		if isProgressLine(line) {
			continue
		}
		tail = append(tail, line)
		if len(tail) > stderrTailLines {
			tail = tail[1:]
		}
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		exitCode := -1
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		}
		return &ProcessError{
			Tool:     FFmpegCommand,
			ExitCode: exitCode,
			Output:   strings.Join(tail, "\n"),
		}
	}

	return nil
}

// isProgressLine reports whether line is part of a -progress key=value block.
func isProgressLine(line string) bool {
	idx := strings.IndexByte(line, '=')
	if idx <= 0 {
		return false
	}
	key := line[:idx]
	for _, r := range key {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' && r != '.' {
			return false
		}
	}
	return true
}
