// File: internal/config/config.go
// Brief: Internal config package implementation for 'config'.

// Package config defines the flag plumbing shared by the aoc commands,
// translating Cobra/Viper flag values into a strongly typed struct that the
// runner and reporters consume.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/aoc/internal/report"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options holds all CLI configuration used when solving puzzles.
type Options struct {
	InputDir   string
	InputFile  string
	DayArgs    []string
	Days       []int
	Parts      []int
	Sample     bool
	OutputRaw  string
	Output     report.Format
	ColorMode  string
	Timings    bool
	RecordPath string
	ExpectPath string
	Parallel   bool
	// WriteExpectPath is only bound by commands that can seed an answers file.
	WriteExpectPath string
}

const defaultInputDir = "input"

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		InputDir:  defaultInputDir,
		OutputRaw: string(report.FormatText),
		Output:    report.FormatText,
		ColorMode: "auto",
	}
}

// AddFlags binds configuration flags to the provided Cobra command.
func (o *Options) AddFlags(cmd *cobra.Command) {
	o.BindFlags(cmd.Flags())
}

// BindFlags attaches run flags to an arbitrary FlagSet and returns the flag names for further customization.
func (o *Options) BindFlags(fs *pflag.FlagSet) []string {
	var names []string
	fs.StringVarP(&o.InputDir, "input-dir", "i", o.InputDir, "Directory holding DayNN.txt puzzle inputs")
	names = append(names, "input-dir")
	fs.StringVar(&o.InputFile, "input", "", "Read this file instead of the day's default input (single day only)")
	names = append(names, "input")
	fs.StringSliceVarP(&o.DayArgs, "day", "d", nil, "Days to run (repeat or comma-separated); defaults to every day")
	names = append(names, "day")
	fs.IntSliceVarP(&o.Parts, "part", "p", nil, "Parts to run (1, 2); defaults to both")
	names = append(names, "part")
	fs.BoolVar(&o.Sample, "sample", false, "Solve the worked example and check it against the expected answer")
	names = append(names, "sample")
	fs.StringVarP(&o.OutputRaw, "output", "o", o.OutputRaw, "Output format: text, table, json, yaml")
	names = append(names, "output")
	fs.StringVar(&o.ColorMode, "color", o.ColorMode, "Colorize table output: auto, always, never")
	names = append(names, "color")
	fs.BoolVar(&o.Timings, "timings", false, "Append solve time to text output")
	names = append(names, "timings")
	fs.StringVar(&o.RecordPath, "record", "", "Append answers to this SQLite history database")
	names = append(names, "record")
	fs.StringVar(&o.ExpectPath, "expect", "", "YAML file of known answers to check results against")
	names = append(names, "expect")
	fs.BoolVar(&o.Parallel, "parallel", false, "Solve days concurrently")
	names = append(names, "parallel")
	return names
}

// Validate normalizes the raw flag values and rejects incoherent combinations.
// Positional day arguments are merged with --day.
func (o *Options) Validate(args []string) error {
	days, err := ParseDays(append(append([]string(nil), o.DayArgs...), args...))
	if err != nil {
		return err
	}
	o.Days = days
	for _, p := range o.Parts {
		if p != 1 && p != 2 {
			return fmt.Errorf("invalid --part value %d (allowed: 1, 2)", p)
		}
	}
	format, err := report.ParseFormat(o.OutputRaw)
	if err != nil {
		return err
	}
	o.Output = format
	switch strings.ToLower(strings.TrimSpace(o.ColorMode)) {
	case "", "auto":
		o.ColorMode = "auto"
	case "always":
		o.ColorMode = "always"
	case "never":
		o.ColorMode = "never"
	default:
		return fmt.Errorf("invalid --color value %q (allowed: auto, always, never)", o.ColorMode)
	}
	if strings.TrimSpace(o.InputFile) != "" {
		if len(o.Days) != 1 {
			return fmt.Errorf("--input needs exactly one day (got %d)", len(o.Days))
		}
		if o.Sample {
			return fmt.Errorf("cannot combine --input with --sample")
		}
	}
	if o.InputDir == "" {
		o.InputDir = defaultInputDir
	}
	for _, path := range []*string{&o.InputDir, &o.InputFile, &o.RecordPath, &o.ExpectPath, &o.WriteExpectPath} {
		*path = strings.TrimSpace(*path)
		if expanded, err := homedir.Expand(*path); err == nil {
			*path = expanded
		}
	}
	return nil
}

// ParseDays turns day tokens such as "2", "day05" or "5,6" into day numbers.
func ParseDays(raw []string) ([]int, error) {
	var days []int
	for _, value := range raw {
		for _, token := range strings.Split(value, ",") {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" {
				continue
			}
			token = strings.TrimPrefix(token, "day")
			n, err := strconv.Atoi(token)
			if err != nil || n < 1 || n > 25 {
				return nil, fmt.Errorf("invalid day %q (expected 1-25)", value)
			}
			days = append(days, n)
		}
	}
	return days, nil
}

// Colorize decides whether output should carry ANSI styling.
func (o *Options) Colorize(isTTY bool) bool {
	switch o.ColorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTTY
	}
}
