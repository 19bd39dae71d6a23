package main

import (
	"github.com/spf13/cobra"

	"github.com/GKaszewski/video-editor/internal/combine"
	"github.com/GKaszewski/video-editor/internal/config"
)

func newRootCommand() *cobra.Command {
	var (
		inputs      []string
		output      string
		volume      float64
		cliMode     bool
		overwrite   bool
		keepPartial bool
		configPath  string
	)

	cmd := &cobra.Command{
		Use:     "video-editor",
		Short:   "Concatenate videos and mix their audio tracks with ffmpeg",
		Version: version,
		Long: `video-editor joins a list of video files into a single output and mixes
their audio tracks, applying a volume factor to the first track.

Without --cli-mode it opens the graphical interface and the flags below are
ignored; inputs, output, and volume are gathered interactively. With
--cli-mode it runs the combine directly and exits when ffmpeg finishes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cliMode {
				runGUI()
				return nil
			}

			cfg, err := config.LoadFileConfig(configPath)
			if err != nil {
				return err
			}

			// flags win over the config file, the config file over built-ins
			if !cmd.Flags().Changed("volume") {
				volume = cfg.DefaultVolume
			}
			if !cmd.Flags().Changed("overwrite") {
				overwrite = cfg.Overwrite
			}
			if !cmd.Flags().Changed("keep-partial") {
				keepPartial = cfg.KeepPartial
			}

			sel := combine.Selection{
				Inputs: inputs,
				Output: output,
				Volume: volume,
			}
			opts := combine.Options{
				FFmpegBinary:  cfg.FFmpeg,
				FFprobeBinary: cfg.FFprobe,
				Overwrite:     overwrite,
				KeepPartial:   keepPartial,
			}
			return runCLI(cmd.Context(), sel, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "input video file, repeatable; order is concatenation order")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output video file")
	cmd.Flags().Float64VarP(&volume, "volume", "v", combine.DefaultVolume, "volume factor applied to the first input's audio")
	cmd.Flags().BoolVarP(&cliMode, "cli-mode", "c", false, "run in the terminal without opening a window")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace the output file if it already exists")
	cmd.Flags().BoolVar(&keepPartial, "keep-partial", false, "keep the partial output file when the combine fails")
	cmd.Flags().StringVar(&configPath, "config", "", "configuration file (default "+configPathHint())

	return cmd
}

func configPathHint() string {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return "platform config directory)"
	}
	return path + ")"
}
