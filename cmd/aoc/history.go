// File: cmd/aoc/history.go
// Brief: CLI command wiring and implementation for 'history'.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/aoc/internal/history"
	"github.com/example/aoc/internal/logging"
	"github.com/example/aoc/internal/report"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newHistoryCommand(logLevel *string) *cobra.Command {
	var (
		dbPath string
		day    int
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "history --record aoc.db",
		Short: "Show answers stored by earlier 'run --record' invocations",
		Args:  cobra.NoArgs,
		Example: `  # Last ten day 5 answers
  aoc history --record ~/.aoc/history.db --day 5 --limit 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(dbPath) == "" {
				return fmt.Errorf("--record is required (path to the history database)")
			}
			if expanded, err := homedir.Expand(strings.TrimSpace(dbPath)); err == nil {
				dbPath = expanded
			}
			if limit < 0 {
				return fmt.Errorf("--limit cannot be negative")
			}
			logger, err := logging.New(*logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := history.Open(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			entries, err := store.List(cmd.Context(), history.Filter{Day: day, Limit: limit})
			if err != nil {
				return err
			}
			logger.V(1).Info("history loaded", "entries", len(entries), "db", store.Path())
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recorded answers")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				runID := e.RunID
				if len(runID) > 8 {
					runID = runID[:8]
				}
				if e.Sample {
					runID += "*"
				}
				rows = append(rows, []string{
					runID,
					strconv.Itoa(e.Day),
					strconv.Itoa(e.Part),
					e.Value,
					e.Elapsed.Round(time.Microsecond).String(),
					e.RecordedAt.Local().Format(time.RFC3339),
				})
			}
			colorize := isTerminalWriter(cmd.OutOrStdout()) && !color.NoColor
			return report.Table(cmd.OutOrStdout(), []string{"RUN", "DAY", "PART", "ANSWER", "TIME", "RECORDED"}, rows, colorize)
		},
	}
	cmd.Flags().StringVar(&dbPath, "record", "", "History database written by 'aoc run --record'")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Only show this day")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum rows to show (0 for all)")
	commandLineOnly(cmd.Flags(), "day", "limit")
	decorateCommandHelp(cmd, "History Flags")
	return cmd
}
