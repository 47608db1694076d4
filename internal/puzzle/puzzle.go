// File: internal/puzzle/puzzle.go
// Brief: Puzzle catalog shared by the runner and the CLI.

// Package puzzle describes the solvable puzzles: their day number, default
// input file, worked example and the solver for each part.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDay is returned when no puzzle is registered for a day.
var ErrUnknownDay = errors.New("unknown puzzle day")

// SolveFunc computes one answer from the puzzle input lines.
type SolveFunc func(lines []string) (string, error)

// Part is one half of a puzzle.
type Part struct {
	Number int
	// Label prefixes the answer when printed as "<label>: <value>".
	Label string
	Solve SolveFunc
}

// Sample is the worked example from the puzzle text.
type Sample struct {
	Input string
	// Want holds the expected answer for each part, in part order.
	Want []string
}

// Puzzle is a single day's puzzle.
type Puzzle struct {
	Day       int
	Title     string
	InputName string
	Sample    Sample
	Parts     []Part
}

// Part returns part n of p.
func (p Puzzle) Part(n int) (Part, bool) {
	for _, part := range p.Parts {
		if part.Number == n {
			return part, true
		}
	}
	return Part{}, false
}

// SampleWant returns the expected sample answer for part n, if known.
func (p Puzzle) SampleWant(n int) (string, bool) {
	if n < 1 || n > len(p.Sample.Want) {
		return "", false
	}
	return p.Sample.Want[n-1], true
}

func (p Puzzle) String() string {
	return fmt.Sprintf("day %d: %s", p.Day, p.Title)
}

// InputName returns the conventional input file name for day.
func InputName(day int) string {
	return fmt.Sprintf("Day%02d.txt", day)
}

// All returns every registered puzzle ordered by day.
func All() []Puzzle {
	out := make([]Puzzle, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (Puzzle, bool) {
	p, ok := catalog[day]
	return p, ok
}

// Select resolves days to puzzles. An empty list selects every puzzle.
func Select(days []int) ([]Puzzle, error) {
	if len(days) == 0 {
		return All(), nil
	}
	seen := make(map[int]struct{}, len(days))
	out := make([]Puzzle, 0, len(days))
	for _, day := range days {
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		p, ok := Lookup(day)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}
