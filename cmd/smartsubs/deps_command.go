package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartsubs/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the availability of required external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Default(cfg.Downloader.Binary, cfg.Transcriber.Binary))

			headers := []string{"Name", "Command", "Status", "Notes"}
			rows := make([][]string, 0, len(statuses))
			missingRequired := false
			for _, status := range statuses {
				state := "ok"
				notes := status.Description
				if !status.Available {
					state = "missing"
					notes = status.Detail
					if !status.Optional {
						missingRequired = true
					}
				}
				rows = append(rows, []string{status.Name, status.Command, state, notes})
			}

			out := cmd.OutOrStdout()
			if isTerminal(os.Stdout) {
				fmt.Fprintln(out, renderTable(headers, rows))
			} else {
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3])
				}
			}

			if missingRequired {
				return errors.New("required external tools are missing")
			}
			return nil
		},
	}
}
