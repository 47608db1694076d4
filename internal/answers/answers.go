// File: internal/answers/answers.go
// Brief: Expected-answer files and result comparison.

// Package answers compares solved results against a file of known answers.
//
// The file is YAML keyed by day, each entry listing the answer per part:
//
//	days:
//	  2: ["15", "12"]
//	  5: [CMZ, MCD]
package answers

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/example/aoc/internal/report"
	"github.com/example/aoc/internal/runner"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Expected maps a day to its answers in part order.
type Expected struct {
	Days map[int][]string `yaml:"days"`
}

// Want returns the expected answer for a day and part.
func (e Expected) Want(day, part int) (string, bool) {
	vals, ok := e.Days[day]
	if !ok || part < 1 || part > len(vals) {
		return "", false
	}
	return vals[part-1], true
}

// Parse decodes an answers document.
func Parse(data []byte) (Expected, error) {
	var exp Expected
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return Expected{}, fmt.Errorf("parse answers: %w", err)
	}
	if exp.Days == nil {
		exp.Days = map[int][]string{}
	}
	return exp, nil
}

// Load reads an answers file from disk.
func Load(path string) (Expected, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Expected{}, fmt.Errorf("read answers %s: %w", path, err)
	}
	return Parse(data)
}

// FromResults builds an answers document from results.
func FromResults(results []runner.Result) Expected {
	exp := Expected{Days: map[int][]string{}}
	for _, res := range results {
		vals := make([]string, 0, len(res.Parts))
		for _, part := range res.Parts {
			for len(vals) < part.Part-1 {
				vals = append(vals, "")
			}
			vals = append(vals, part.Value)
		}
		exp.Days[res.Day] = vals
	}
	return exp
}

// Marshal encodes e as YAML.
func (e Expected) Marshal() ([]byte, error) {
	return yaml.Marshal(e)
}

// Save writes e to path in the format Load reads.
func (e Expected) Save(path string) error {
	data, err := e.Marshal()
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write answers %s: %w", path, err)
	}
	return nil
}

// Check is the verdict for one part.
type Check struct {
	Day   int
	Part  int
	Label string
	Want  string
	Got   string
	// Known is false when the answers file has no entry for the part.
	Known bool
	OK    bool
}

// Report collects checks in result order.
type Report struct {
	Checks []Check
}

// Failed returns the checks whose answer is known and differs.
func (r Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if c.Known && !c.OK {
			out = append(out, c)
		}
	}
	return out
}

// Unknown returns the checks that had no expected answer.
func (r Report) Unknown() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Known {
			out = append(out, c)
		}
	}
	return out
}

// Passed reports whether every known answer matched.
func (r Report) Passed() bool {
	return len(r.Failed()) == 0
}

// Compare checks each part of results against exp.
func Compare(results []runner.Result, exp Expected) Report {
	var rep Report
	for _, res := range results {
		for _, part := range res.Parts {
			want, known := exp.Want(res.Day, part.Part)
			rep.Checks = append(rep.Checks, Check{
				Day:   res.Day,
				Part:  part.Part,
				Label: part.Label,
				Want:  want,
				Got:   part.Value,
				Known: known,
				OK:    known && want == part.Value,
			})
		}
	}
	return rep
}

// Diff renders a unified diff of expected versus actual answers. Parts with no
// expected answer are left out. It returns "" when nothing differs.
func (r Report) Diff() string {
	var want, got strings.Builder
	checks := append([]Check(nil), r.Checks...)
	sort.SliceStable(checks, func(i, j int) bool {
		if checks[i].Day != checks[j].Day {
			return checks[i].Day < checks[j].Day
		}
		return checks[i].Part < checks[j].Part
	})
	for _, c := range checks {
		if !c.Known {
			continue
		}
		prefix := fmt.Sprintf("day %d ", c.Day)
		want.WriteString(prefix + report.Line(runner.PartResult{Label: c.Label, Value: c.Want}) + "\n")
		got.WriteString(prefix + report.Line(runner.PartResult{Label: c.Label, Value: c.Got}) + "\n")
	}
	if want.String() == got.String() {
		return ""
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want.String()),
		B:        difflib.SplitLines(got.String()),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	return diff
}
