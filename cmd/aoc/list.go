// File: cmd/aoc/list.go
// Brief: CLI command wiring and implementation for 'list'.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/aoc/internal/puzzle"
	"github.com/example/aoc/internal/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var noHeaders bool
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the puzzles aoc can solve",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, p := range puzzle.All() {
				labels := make([]string, 0, len(p.Parts))
				for _, part := range p.Parts {
					labels = append(labels, fmt.Sprintf("%d=%s", part.Number, part.Label))
				}
				rows = append(rows, []string{strconv.Itoa(p.Day), p.Title, p.InputName, strings.Join(labels, "; ")})
			}
			if noHeaders {
				for _, row := range rows {
					fmt.Fprintln(cmd.OutOrStdout(), strings.Join(row, "\t"))
				}
				return nil
			}
			colorize := isTerminalWriter(cmd.OutOrStdout()) && !color.NoColor
			return report.Table(cmd.OutOrStdout(), []string{"DAY", "TITLE", "INPUT", "PARTS"}, rows, colorize)
		},
	}
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Print tab-separated rows without the table header")
	decorateCommandHelp(cmd, "List Flags")
	return cmd
}
