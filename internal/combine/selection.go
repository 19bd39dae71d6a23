package combine

import (
	"fmt"
	"math"
	"os"
)

// DefaultVolume is the volume factor applied to the first input's audio when
// the user does not specify one.
const DefaultVolume = 1.0

// Selection describes one combine request gathered from either CLI flags or
// interactive file selections: the inputs in concatenation order, the output
// path, and the volume factor for the first input's audio track.
type Selection struct {
	Inputs []string
	Output string
	Volume float64
}

// Validate checks that the selection is complete and every input exists.
// All failures wrap ErrInvalidSelection.
func (s Selection) Validate() error {
	if len(s.Inputs) == 0 {
		return fmt.Errorf("%w: no input files", ErrInvalidSelection)
	}
	if s.Output == "" {
		return fmt.Errorf("%w: no output file", ErrInvalidSelection)
	}
	if math.IsNaN(s.Volume) || s.Volume <= 0 {
		return fmt.Errorf("%w: volume must be a positive number, got %v", ErrInvalidSelection, s.Volume)
	}

	for _, input := range s.Inputs {
		info, err := os.Stat(input)
		if err != nil {
			return fmt.Errorf("%w: input %s: %v", ErrInvalidSelection, input, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: input %s is a directory", ErrInvalidSelection, input)
		}
	}

	return nil
}
