package model

import (
	"path/filepath"
	"strings"
	"time"
)

// CombineTask represents a single combine operation: concatenate the inputs
// in order, mix their audio with the first track scaled, write the result.
type CombineTask struct {
	ID         string
	Inputs     []string // input paths, concatenation order
	OutputPath string   // final output path
	Volume     float64  // volume factor applied to the first input's audio
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayName returns the output file name without extension, falling back
// to the first input when no output has been chosen yet.
func (ct *CombineTask) GetDisplayName() string {
	path := ct.OutputPath
	if path == "" && len(ct.Inputs) > 0 {
		path = ct.Inputs[0]
	}
	if path == "" {
		return ""
	}

	name := filepath.Base(path)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// Elapsed returns how long the task has been running, or the total run time
// once finished. Zero before the task starts.
func (ct *CombineTask) Elapsed() time.Duration {
	if ct.StartedAt.IsZero() {
		return 0
	}
	if ct.Status.IsFinished() && !ct.FinishedAt.IsZero() {
		return ct.FinishedAt.Sub(ct.StartedAt)
	}
	return time.Since(ct.StartedAt)
}
