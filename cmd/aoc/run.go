// File: cmd/aoc/run.go
// Brief: CLI command wiring and implementation for 'run'.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/example/aoc/internal/answers"
	"github.com/example/aoc/internal/config"
	"github.com/example/aoc/internal/featureflags"
	"github.com/example/aoc/internal/history"
	"github.com/example/aoc/internal/logging"
	"github.com/example/aoc/internal/puzzle"
	"github.com/example/aoc/internal/report"
	"github.com/example/aoc/internal/runner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errAnswersDiffer is returned after a failed check has been reported.
var errAnswersDiffer = errors.New("answers differ from expected")

type runMode int

const (
	// runModeAnswers prints the answers and, with --expect, a diff on mismatch.
	runModeAnswers runMode = iota
	// runModeCheck prints one verdict per part instead of the answers.
	runModeCheck
)

func newRunCommand(logLevel *string) *cobra.Command {
	opts := config.NewOptions()
	cmd := &cobra.Command{
		Use:   "run [DAY...]",
		Short: "Solve puzzles and print one answer per part",
		Long: `Solve the selected days (all days by default) and print each answer as "<label>: <value>".

Input is read from <input-dir>/DayNN.txt unless --input names a file for a single day.`,
		Args: cobra.ArbitraryArgs,
		Example: `  # Solve days 5 and 6
  aoc run 5 6

  # Solve the worked examples and emit JSON
  aoc run --sample -o json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPuzzles(cmd, args, opts, logLevel, runModeAnswers)
		},
	}
	opts.AddFlags(cmd)
	decorateCommandHelp(cmd, "Run Flags")
	return cmd
}

func runPuzzles(cmd *cobra.Command, args []string, opts *config.Options, logLevel *string, mode runMode) error {
	if err := opts.Validate(args); err != nil {
		return err
	}
	logger, err := logging.New(*logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	puzzles, err := puzzle.Select(opts.Days)
	if err != nil {
		return err
	}
	features := featureflags.FromContext(ctx)
	parallel := opts.Parallel
	if !cmd.Flags().Changed("parallel") && features.Enabled(featureflags.FeatureParallelRun) {
		parallel = true
	}
	logger.V(1).Info("solving", "days", len(puzzles), "sample", opts.Sample, "parallel", parallel, "features", features.EnabledNames())

	results, err := runner.Run(ctx, puzzles, runner.Options{
		Parts:    opts.Parts,
		Sample:   opts.Sample,
		Parallel: parallel,
		Logger:   logger,
		Load:     runner.FileLoader(opts.InputDir, opts.InputFile),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colorize := opts.Colorize(isTerminalWriter(out))
	if mode == runModeAnswers {
		if err := report.Write(out, results, report.Options{Format: opts.Output, Color: colorize, Timings: opts.Timings}); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}

	if opts.RecordPath != "" {
		store, err := history.Open(ctx, opts.RecordPath)
		if err != nil {
			return err
		}
		defer store.Close()
		runID := history.NewRunID()
		if err := store.Record(ctx, runID, results); err != nil {
			return err
		}
		logger.Info("recorded answers", "run", runID, "db", store.Path())
	}

	// Compare before seeding so --expect and --write-expect may name the same file.
	var rep *answers.Report
	if opts.ExpectPath != "" {
		exp, err := answers.Load(opts.ExpectPath)
		if err != nil {
			return err
		}
		r := answers.Compare(results, exp)
		rep = &r
		if mode == runModeCheck {
			writeVerdicts(out, r, colorize)
		}
	}
	if opts.WriteExpectPath != "" {
		if err := answers.FromResults(results).Save(opts.WriteExpectPath); err != nil {
			return err
		}
		logger.Info("wrote expected answers", "path", opts.WriteExpectPath, "days", len(results))
	}
	if rep == nil || rep.Passed() {
		return nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), rep.Diff())
	return errAnswersDiffer
}

func writeVerdicts(w io.Writer, rep answers.Report, colorize bool) {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	skip := color.New(color.FgYellow)
	for _, c := range []*color.Color{pass, fail, skip} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for _, c := range rep.Checks {
		prefix := fmt.Sprintf("day %d part %d", c.Day, c.Part)
		switch {
		case !c.Known:
			fmt.Fprintf(w, "%s: %s (%s)\n", prefix, skip.Sprint("unknown"), c.Got)
		case c.OK:
			fmt.Fprintf(w, "%s: %s\n", prefix, pass.Sprint("ok"))
		default:
			fmt.Fprintf(w, "%s: %s (got %s, want %s)\n", prefix, fail.Sprint("FAIL"), c.Got, c.Want)
		}
	}
}
