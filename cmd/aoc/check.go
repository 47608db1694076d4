// File: cmd/aoc/check.go
// Brief: CLI command wiring and implementation for 'check'.

package main

import (
	"fmt"
	"strings"

	"github.com/example/aoc/internal/config"
	"github.com/spf13/cobra"
)

func newCheckCommand(logLevel *string) *cobra.Command {
	opts := config.NewOptions()
	cmd := &cobra.Command{
		Use:   "check [DAY...] --expect answers.yaml",
		Short: "Solve puzzles and compare the answers with a file of known answers",
		Long: `Solve the selected days and report one verdict per part against --expect.

A mismatch prints a unified diff of expected and actual answers on stderr and exits non-zero.
Parts with no known answer are reported as unknown and do not fail the check.
--write-expect saves the answers of this run in the same format, to seed or refresh the file.`,
		Example: `  # Seed answers.yaml from today's solutions
  aoc check --write-expect answers.yaml

  # Verify later runs against it
  aoc check --expect answers.yaml`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.ExpectPath) == "" && strings.TrimSpace(opts.WriteExpectPath) == "" {
				return fmt.Errorf("--expect is required (YAML file of known answers) unless --write-expect seeds one")
			}
			return runPuzzles(cmd, args, opts, logLevel, runModeCheck)
		},
	}
	opts.AddFlags(cmd)
	cmd.Flags().StringVar(&opts.WriteExpectPath, "write-expect", "", "Write this run's answers to a YAML file usable with --expect")
	decorateCommandHelp(cmd, "Check Flags")
	return cmd
}
