package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartsubs/internal/subtitles"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert PATH...",
		Short: "Convert SRT files to plain-text and lyric outputs",
		Long: `Convert SRT files to plain-text and lyric outputs.

Each PATH may be an .srt file or a directory; directories are scanned
for .srt files. Every converted file gains .txt and .lrc siblings with
the same base name. Files that fail to convert are reported as warnings
and the remaining files are still processed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			converted, failed := 0, 0
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("stat %s: %w", path, err)
				}
				if info.IsDir() {
					result := subtitles.ConvertDir(path, logger)
					converted += len(result.Converted)
					failed += len(result.Errors)
					continue
				}
				if err := subtitles.ConvertFile(path); err != nil {
					return fmt.Errorf("convert %s: %w", path, err)
				}
				converted++
			}

			fmt.Fprintf(out, "Converted %d file(s)", converted)
			if failed > 0 {
				fmt.Fprintf(out, ", %d failed (see warnings)", failed)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
