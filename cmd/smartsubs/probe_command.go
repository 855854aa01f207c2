package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartsubs/internal/probe"
	"smartsubs/internal/services/ytdlp"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "probe URL",
		Short: "Check which language patterns match the available subtitle tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cfg); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			matcher, err := probe.NewMatcher(cfg.Subtitles.Languages)
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

			listing, listErr := downloader.ListSubs(cmd.Context(), args[0])
			if listErr != nil {
				logger.Debug("subtitle listing command failed, scanning partial output")
			}

			out := cmd.OutOrStdout()
			headers := []string{"Pattern", "Match", "Track"}
			rows := make([][]string, 0, len(matcher.Patterns()))
			for i, pattern := range matcher.Patterns() {
				line, matched := matcher.MatchLine(i, listing)
				verdict := "no"
				if matched {
					verdict = "yes"
				}
				rows = append(rows, []string{pattern, verdict, line})
			}

			if isTerminal(os.Stdout) {
				fmt.Fprintln(out, renderTable(headers, rows))
			} else {
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\t%s\n", row[0], row[1], row[2])
				}
			}

			if result := matcher.Scan(listing); result.Found {
				fmt.Fprintf(out, "Existing subtitles available: %s\n", result.Line)
			} else {
				fmt.Fprintln(out, "No matching subtitles; fetch would fall back to transcription")
			}
			return nil
		},
	}

	registerRunFlags(cmd, flags)
	return cmd
}
