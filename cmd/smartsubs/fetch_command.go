package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartsubs/internal/pipeline"
	"smartsubs/internal/services/whisper"
	"smartsubs/internal/services/ytdlp"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Acquire subtitles for a video URL",
		Long: `Acquire subtitles for a video URL.

Existing subtitle tracks matching the configured language patterns are
downloaded and converted to SRT. When none match, the best audio track
is downloaded and transcribed instead. Every resulting SRT file gains a
plain-text (.txt) and a lyric (.lrc) sibling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cfg); err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			downloader, err := ytdlp.New(cfg.Downloader.Binary, ytdlp.Options{
				CookiePath: cfg.Downloader.CookiePath,
				UserAgent:  cfg.Downloader.UserAgent,
			}, logger)
			if err != nil {
				return err
			}
			transcriber, err := whisper.New(cfg.Transcriber.Binary, whisper.Config{
				Model:    cfg.Transcriber.Model,
				Language: cfg.Transcriber.Language,
			}, logger)
			if err != nil {
				return err
			}
			pipe, err := pipeline.New(cfg, downloader, transcriber, logger)
			if err != nil {
				return err
			}

			result, err := pipe.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case result.Placeholder:
				fmt.Fprintf(out, "No subtitles produced; placeholder written to %s\n", cfg.Paths.OutputDir)
			case result.Generated:
				fmt.Fprintf(out, "Generated subtitles via transcription; %d file(s) converted in %s\n",
					len(result.Converted), cfg.Paths.OutputDir)
			default:
				fmt.Fprintf(out, "Downloaded existing subtitles; %d file(s) converted in %s\n",
					len(result.Converted), cfg.Paths.OutputDir)
			}
			return nil
		},
	}

	registerRunFlags(cmd, flags)
	return cmd
}
