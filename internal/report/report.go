// File: internal/report/report.go
// Brief: Renders puzzle results in text, table, json, or yaml form.

// Package report writes runner results for humans and for machines.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/example/aoc/internal/runner"
	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat normalizes raw into a Format. Empty selects text.
func ParseFormat(raw string) (Format, error) {
	mode := Format(strings.ToLower(strings.TrimSpace(raw)))
	if mode == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if f == mode {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid output format %q (must be one of: text, table, json, yaml)", raw)
}

// Options tune rendering.
type Options struct {
	Format Format
	// Color enables ANSI styling for the table format.
	Color bool
	// Timings appends each part's solve time to text output.
	Timings bool
}

// Write renders results to w.
func Write(w io.Writer, results []runner.Result, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, results, opts.Timings)
	case FormatTable:
		return writeTable(w, results, opts.Color)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(documents(results))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(documents(results)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

// Line renders one answer the way every puzzle prints it.
func Line(p runner.PartResult) string {
	return fmt.Sprintf("%s: %s", p.Label, p.Value)
}

func writeText(w io.Writer, results []runner.Result, timings bool) error {
	for _, res := range results {
		for _, part := range res.Parts {
			line := Line(part)
			if timings {
				line += fmt.Sprintf(" (took %v)", roundElapsed(part.Elapsed))
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

type partDocument struct {
	Part      int    `json:"part" yaml:"part"`
	Label     string `json:"label" yaml:"label"`
	Value     string `json:"value" yaml:"value"`
	ElapsedNS int64  `json:"elapsedNs" yaml:"elapsedNs"`
}

type resultDocument struct {
	Day    int            `json:"day" yaml:"day"`
	Title  string         `json:"title" yaml:"title"`
	Sample bool           `json:"sample,omitempty" yaml:"sample,omitempty"`
	Parts  []partDocument `json:"parts" yaml:"parts"`
}

func documents(results []runner.Result) []resultDocument {
	out := make([]resultDocument, 0, len(results))
	for _, res := range results {
		doc := resultDocument{Day: res.Day, Title: res.Title, Sample: res.Sample}
		for _, part := range res.Parts {
			doc.Parts = append(doc.Parts, partDocument{
				Part:      part.Part,
				Label:     part.Label,
				Value:     part.Value,
				ElapsedNS: part.Elapsed.Nanoseconds(),
			})
		}
		out = append(out, doc)
	}
	return out
}

func writeTable(w io.Writer, results []runner.Result, colorize bool) error {
	headers := []string{"DAY", "TITLE", "PART", "ANSWER", "TIME"}
	var rows [][]string
	for _, res := range results {
		for _, part := range res.Parts {
			rows = append(rows, []string{
				strconv.Itoa(res.Day),
				res.Title,
				strconv.Itoa(part.Part),
				part.Value,
				roundElapsed(part.Elapsed).String(),
			})
		}
	}
	return Table(w, headers, rows, colorize)
}

// Table writes rows as space-aligned columns under a header row. Widths are
// measured in terminal cells.
func Table(w io.Writer, headers []string, rows [][]string, colorize bool) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, col := range row {
			if i < len(widths) {
				if cw := runewidth.StringWidth(col); cw > widths[i] {
					widths[i] = cw
				}
			}
		}
	}
	header := color.New(color.Bold, color.FgCyan)
	if !colorize {
		header.DisableColor()
	} else {
		header.EnableColor()
	}
	render := func(cols []string, style *color.Color) error {
		var b strings.Builder
		for i, col := range cols {
			cell := col
			if style != nil {
				cell = style.Sprint(col)
			}
			b.WriteString(cell)
			if i == len(cols)-1 {
				break
			}
			pad := widths[i] - runewidth.StringWidth(col)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+2))
		}
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	if err := render(headers, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := render(row, nil); err != nil {
			return err
		}
	}
	return nil
}

func roundElapsed(d time.Duration) time.Duration {
	return d.Round(time.Microsecond)
}
