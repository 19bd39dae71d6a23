package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/GKaszewski/video-editor/internal/combine"
	"github.com/GKaszewski/video-editor/internal/model"
)

// runCLI performs a single combine synchronously, printing a summary of the
// selection up front and a progress line while ffmpeg runs.
func runCLI(ctx context.Context, sel combine.Selection, opts combine.Options) error {
	if err := sel.Validate(); err != nil {
		return err
	}

	printSelection(ctx, sel, opts)

	svc := combine.NewService(opts)
	svc.SetUpdateCallback(func(task *model.CombineTask) {
		if task.Status == model.TaskStatusRunning {
			fmt.Printf("\rcombining... %3d%%", task.Percent)
		}
	})

	task, err := svc.Combine(ctx, sel)
	fmt.Println()
	if err != nil {
		if procErr, ok := combine.AsProcessError(err); ok && procErr.Output != "" {
			fmt.Fprintln(os.Stderr, procErr.Output)
		}
		return err
	}

	fmt.Printf("done in %s: %s\n", task.Elapsed().Round(time.Millisecond), task.OutputPath)
	return nil
}

// printSelection renders the input summary table. Probing is best effort
// here; if ffprobe is unavailable the combine itself will report it.
func printSelection(ctx context.Context, sel combine.Selection, opts combine.Options) {
	probeBin := opts.FFprobeBinary
	if probeBin == "" {
		probeBin = combine.FFprobeCommand
	}
	canProbe := false
	if _, err := combine.LookupTool(probeBin); err == nil {
		canProbe = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Input", "Size", "Duration", "Audio"})
	for i, input := range sel.Inputs {
		size, duration, audio := "?", "?", "?"
		if info, err := os.Stat(input); err == nil {
			size = formatSize(info.Size())
		}
		if canProbe {
			if probed, err := combine.ProbeInput(ctx, probeBin, input); err == nil {
				duration = formatDuration(probed.DurationSec)
				audio = "no"
				if probed.AudioStreams > 0 {
					audio = "yes"
				}
			}
		}
		t.AppendRow(table.Row{i + 1, input, size, duration, audio})
	}
	t.AppendFooter(table.Row{"", "Output", sel.Output})
	t.Render()
	fmt.Printf("volume factor for the first track: %g\n", sel.Volume)
}

func formatDuration(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
