// main.go bootstraps aoc: it builds the root Cobra command, wires profiling, and executes with signal-aware contexts.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/example/aoc/internal/config"
	"github.com/example/aoc/internal/featureflags"
	"github.com/example/aoc/internal/puzzle"
	"github.com/example/aoc/internal/runner"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stopProfile := setupProfiling()
	defer stopProfile()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		stopProfile()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := config.NewOptions()
	logLevel := "warn"
	var featureFlagValues []string
	v := newViper()
	cmd := &cobra.Command{
		Use:           "aoc [DAY...]",
		Short:         "Advent of Code 2022 puzzle solvers",
		Long:          "aoc solves Advent of Code 2022 puzzles from plain-text inputs and prints one answer per part.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyViper(v, cmd); err != nil {
				return err
			}
			flags, err := featureflags.Resolve(featureFlagValues, featureflags.EnabledFromEnv(nil))
			if err != nil {
				return err
			}
			cmd.SetContext(featureflags.ContextWithFlags(cmd.Context(), flags))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPuzzles(cmd, args, opts, &logLevel, runModeAnswers)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for aoc diagnostics on stderr (debug, info, warn, error)")
	cmd.PersistentFlags().StringSliceVar(&featureFlagValues, "feature", nil, "Enable experimental aoc features (repeat or pass comma-separated names)")
	if err := cmd.PersistentFlags().MarkHidden("feature"); err != nil {
		cobra.CheckErr(err)
	}
	opts.BindFlags(cmd.Flags())
	cmd.AddCommand(
		newRunCommand(&logLevel),
		newCheckCommand(&logLevel),
		newListCommand(),
		newHistoryCommand(&logLevel),
		newVersionCommand(),
	)
	cmd.Example = `  # Solve every day from ./input/DayNN.txt
  aoc

  # Solve day 5 from a specific file and show timings
  aoc run 5 --input ~/Downloads/input.txt --timings

  # Verify the worked examples
  aoc run --sample --output table`
	decorateCommandHelp(cmd, "Run Flags")
	return cmd
}

// newViper prepares the shared Viper instance: AOC_* environment overrides
// plus an optional config file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("AOC")
	v.AutomaticEnv()
	configureConfigFile(v, os.Getenv("AOC_CONFIG"))
	return v
}

// applyViper fills every flag the user did not pass from the environment or
// config file.
func applyViper(v *viper.Viper, cmd *cobra.Command) error {
	fs := cmd.Flags()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	if err := readConfigFile(v, os.Getenv("AOC_CONFIG") != ""); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var setErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if _, ok := f.Annotations[commandLineOnlyAnnotation]; ok {
			return
		}
		val := viperValueString(v.Get(f.Name))
		if val == "" {
			return
		}
		if err := f.Value.Set(val); err != nil {
			setErr = fmt.Errorf("invalid %s from config/env: %w", f.Name, err)
		}
	})
	return setErr
}

// commandLineOnlyAnnotation marks flags that never take values from the
// environment or config file.
const commandLineOnlyAnnotation = "aoc/command-line-only"

// commandLineOnly keeps the named flags out of the env/config overlay. Keys
// are shared by every command, so a flag whose name is reused with another
// meaning must opt out.
func commandLineOnly(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		cobra.CheckErr(fs.SetAnnotation(name, commandLineOnlyAnnotation, []string{"true"}))
	}
}

func viperValueString(val any) string {
	switch t := val.(type) {
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	case []int:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, fmt.Sprintf("%d", item))
		}
		return strings.Join(parts, ",")
	default:
		s := fmt.Sprintf("%v", t)
		// pflag renders empty slices as "[]".
		if s == "[]" {
			return ""
		}
		return s
	}
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	var mismatch *runner.SampleMismatchError
	switch {
	case errors.Is(err, errAnswersDiffer):
		// The diff has already been written.
	case errors.Is(err, puzzle.ErrUnknownDay):
		message = fmt.Sprintf("%s\nHint: run 'aoc list' to see the available days.", err)
	case errors.Is(err, os.ErrNotExist):
		message = fmt.Sprintf("%s\nHint: place DayNN.txt under --input-dir or pass --input for a single day.", err)
	case errors.As(err, &mismatch):
		message = fmt.Sprintf("%s\nHint: the solver disagrees with the worked example from the puzzle text.", err)
	case errors.Is(err, featureflags.ErrUnknownFeature):
		message = fmt.Sprintf("%s\nHint: known features: %s", err, knownFeatures())
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

func knownFeatures() string {
	var names []string
	for _, def := range featureflags.Definitions() {
		names = append(names, fmt.Sprintf("%s (%s)", def.Name, def.EnvVar()))
	}
	return strings.Join(names, ", ")
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, "aoc"))
	}
	if home, err := homedir.Dir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", "aoc"))
		add(filepath.Join(home, ".aoc"))
	}
	return dirs
}

func setupProfiling() func() {
	mode := strings.ToLower(os.Getenv("AOC_PROFILE"))
	if mode != "startup" {
		return func() {}
	}
	ts := time.Now().UTC().Format("20060102-150405")
	cpuPath := fmt.Sprintf("aoc-startup-%s.cpu.pprof", ts)
	cpuFile, err := os.Create(cpuPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: unable to create CPU profile %s: %v\n", cpuPath, err)
		return func() {}
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		fmt.Fprintf(os.Stderr, "warn: unable to start CPU profile: %v\n", err)
		cpuFile.Close()
		return func() {}
	}
	fmt.Fprintf(os.Stderr, "AOC_PROFILE=startup: writing CPU profile to %s\n", cpuPath)
	memPath := fmt.Sprintf("aoc-startup-%s.mem.pprof", ts)
	stopped := false
	return func() {
		if stopped {
			return
		}
		stopped = true
		pprof.StopCPUProfile()
		cpuFile.Close()
		memFile, err := os.Create(memPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warn: unable to create heap profile %s: %v\n", memPath, err)
			return
		}
		defer memFile.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(memFile); err != nil {
			fmt.Fprintf(os.Stderr, "warn: unable to write heap profile: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "AOC_PROFILE=startup: writing heap profile to %s\n", memPath)
	}
}
