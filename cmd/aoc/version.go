// File: cmd/aoc/version.go
// Brief: CLI command wiring and implementation for 'version'.

package main

import (
	"fmt"

	"github.com/example/aoc/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the aoc version information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info.Version)
				return nil
			}
			fmt.Fprintf(out, "Version: %s\n", info.Version)
			if info.GitCommit != "" && info.GitCommit != "unknown" {
				fmt.Fprintf(out, "GitCommit: %s\n", info.GitCommit)
			}
			if info.BuildDate != "" && info.BuildDate != "unknown" {
				fmt.Fprintf(out, "BuildDate: %s\n", info.BuildDate)
			}
			fmt.Fprintf(out, "GoVersion: %s\n", info.GoVersion)
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print just the version number")
	decorateCommandHelp(cmd, "Version Flags")
	return cmd
}
