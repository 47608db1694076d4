// File: internal/config/config_test.go
// Brief: Internal config package implementation for 'config'.

// config_test.go verifies Options parsing and validation for the aoc flags.
package config

import (
	"strings"
	"testing"

	"github.com/example/aoc/internal/report"
	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	if opts.InputDir != "input" {
		t.Fatalf("input dir default mismatch, got %q", opts.InputDir)
	}
	if opts.Output != report.FormatText {
		t.Fatalf("output should default to text, got %q", opts.Output)
	}
	if opts.ColorMode != "auto" {
		t.Fatalf("color should default to auto, got %q", opts.ColorMode)
	}
}

func TestBindFlagsParses(t *testing.T) {
	opts := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	names := opts.BindFlags(fs)
	if len(names) == 0 {
		t.Fatalf("expected flag names")
	}
	if err := fs.Parse([]string{"--day", "2,5", "-p", "1", "-o", "JSON", "--sample"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := opts.Validate([]string{"day06"}); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if diff := cmp.Diff([]int{2, 5, 6}, opts.Days); diff != "" {
		t.Fatalf("days mismatch (-want +got):\n%s", diff)
	}
	if opts.Output != report.FormatJSON {
		t.Fatalf("expected json output, got %q", opts.Output)
	}
	if !opts.Sample || len(opts.Parts) != 1 || opts.Parts[0] != 1 {
		t.Fatalf("unexpected parsed options: %+v", opts)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Options) []string{
		"bad day":   func(o *Options) []string { return []string{"27"} },
		"bad token": func(o *Options) []string { return []string{"five"} },
		"bad part":  func(o *Options) []string { o.Parts = []int{3}; return nil },
		"bad color": func(o *Options) []string { o.ColorMode = "rainbow"; return nil },
		"bad output": func(o *Options) []string {
			o.OutputRaw = "xml"
			return nil
		},
		"input needs one day": func(o *Options) []string {
			o.InputFile = "x.txt"
			return []string{"2", "5"}
		},
		"input with sample": func(o *Options) []string {
			o.InputFile = "x.txt"
			o.Sample = true
			return []string{"2"}
		},
	}
	for name, mutate := range cases {
		opts := NewOptions()
		args := mutate(opts)
		if err := opts.Validate(args); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestColorize(t *testing.T) {
	opts := NewOptions()
	if !opts.Colorize(true) || opts.Colorize(false) {
		t.Fatalf("auto should follow the terminal")
	}
	opts.ColorMode = "never"
	if opts.Colorize(true) {
		t.Fatalf("never should disable color")
	}
	opts.ColorMode = "always"
	if !opts.Colorize(false) {
		t.Fatalf("always should force color")
	}
}

func TestValidateExpandsHomePaths(t *testing.T) {
	opts := NewOptions()
	opts.RecordPath = " ~/.aoc/history.db"
	opts.ExpectPath = "~/aoc/answers.yaml"
	opts.WriteExpectPath = "~/aoc/seed.yaml"
	if err := opts.Validate(nil); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	for raw, got := range map[string]string{
		"~/.aoc/history.db":  opts.RecordPath,
		"~/aoc/answers.yaml": opts.ExpectPath,
		"~/aoc/seed.yaml":    opts.WriteExpectPath,
	} {
		want, err := homedir.Expand(raw)
		if err != nil {
			t.Fatalf("expand %s: %v", raw, err)
		}
		if got != want || strings.HasPrefix(got, "~") {
			t.Fatalf("%s expanded to %q, want %q", raw, got, want)
		}
	}
}
