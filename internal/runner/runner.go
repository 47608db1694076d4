// File: internal/runner/runner.go
// Brief: Executes puzzle parts and times them.

// Package runner loads puzzle input, solves the selected parts and records
// how long each part took.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/example/aoc/internal/input"
	"github.com/example/aoc/internal/puzzle"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// LoadFunc returns the input lines for a puzzle.
type LoadFunc func(p puzzle.Puzzle) ([]string, error)

// Options control a run.
type Options struct {
	// Parts limits which parts are solved; empty means every part.
	Parts []int
	// Sample solves the worked example instead of the real input and checks
	// each answer against the expected one.
	Sample bool
	// Parallel solves puzzles concurrently. Result order is unchanged.
	Parallel bool
	Logger   logr.Logger
	// Now returns the current time. Defaults to time.Now.
	Now  func() time.Time
	Load LoadFunc
}

// PartResult is the answer to one part.
type PartResult struct {
	Part    int
	Label   string
	Value   string
	Elapsed time.Duration
}

// Result holds the answers for one puzzle.
type Result struct {
	Day    int
	Title  string
	Sample bool
	Parts  []PartResult
}

// SampleMismatchError reports a wrong answer for a worked example.
type SampleMismatchError struct {
	Day  int
	Part int
	Want string
	Got  string
}

func (e *SampleMismatchError) Error() string {
	return fmt.Sprintf("day %d part %d sample: got %s, want %s", e.Day, e.Part, e.Got, e.Want)
}

// Run solves puzzles and returns one Result per puzzle in the order given.
// On error the results gathered so far are returned alongside it.
func Run(ctx context.Context, puzzles []puzzle.Puzzle, opts Options) ([]Result, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Load == nil {
		opts.Load = FileLoader("input", "")
	}
	if opts.Logger.GetSink() == nil {
		opts.Logger = logr.Discard()
	}
	if !opts.Parallel {
		results := make([]Result, 0, len(puzzles))
		for _, p := range puzzles {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res, err := solve(p, opts)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
		return results, nil
	}

	results := make([]Result, len(puzzles))
	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range puzzles {
		i, p := i, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := solve(p, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		done := make([]Result, 0, len(results))
		for _, res := range results {
			if res.Day != 0 {
				done = append(done, res)
			}
		}
		return done, err
	}
	return results, nil
}

func solve(p puzzle.Puzzle, opts Options) (Result, error) {
	log := opts.Logger.WithValues("day", p.Day)
	var (
		lines []string
		err   error
	)
	if opts.Sample {
		lines = input.ReadString(p.Sample.Input)
	} else {
		lines, err = opts.Load(p)
		if err != nil {
			return Result{}, fmt.Errorf("day %d: %w", p.Day, err)
		}
	}
	log.V(1).Info("input loaded", "lines", len(lines), "sample", opts.Sample)

	res := Result{Day: p.Day, Title: p.Title, Sample: opts.Sample}
	for _, part := range p.Parts {
		if !wanted(opts.Parts, part.Number) {
			continue
		}
		start := opts.Now()
		value, err := part.Solve(lines)
		elapsed := opts.Now().Sub(start)
		if err != nil {
			return res, fmt.Errorf("day %d part %d: %w", p.Day, part.Number, err)
		}
		log.V(1).Info("part solved", "part", part.Number, "elapsed", elapsed)
		if opts.Sample {
			if want, ok := p.SampleWant(part.Number); ok && want != value {
				return res, &SampleMismatchError{Day: p.Day, Part: part.Number, Want: want, Got: value}
			}
		}
		res.Parts = append(res.Parts, PartResult{
			Part:    part.Number,
			Label:   part.Label,
			Value:   value,
			Elapsed: elapsed,
		})
	}
	return res, nil
}

func wanted(parts []int, n int) bool {
	if len(parts) == 0 {
		return true
	}
	for _, p := range parts {
		if p == n {
			return true
		}
	}
	return false
}

// FileLoader reads each puzzle's input from dir, or from override when set.
func FileLoader(dir, override string) LoadFunc {
	return func(p puzzle.Puzzle) ([]string, error) {
		return input.Load(input.Resolve(dir, override, p))
	}
}
