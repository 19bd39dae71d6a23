package combine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection reports a selection that cannot be combined: no inputs,
// a missing output path, a non-positive volume factor, or an input file that
// does not exist.
var ErrInvalidSelection = errors.New("invalid selection")

// ErrToolNotFound reports that ffmpeg or ffprobe could not be found on the
// command search path.
var ErrToolNotFound = errors.New("tool not found")

// ErrTaskActive reports that another combine task is already running.
var ErrTaskActive = errors.New("combine already in progress")

// ErrOutputExists reports that the output path exists and overwriting is
// disabled.
var ErrOutputExists = errors.New("output file already exists")

// ProcessError reports an external tool run that started but exited with an
// error. Output carries the tail of the tool's stderr.
type ProcessError struct {
	Tool     string
	ExitCode int
	Output   string
}

// Error returns the tool name, exit code, and trailing diagnostic output.
func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// AsProcessError unwraps err into a ProcessError if it carries one.
func AsProcessError(err error) (*ProcessError, bool) {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
