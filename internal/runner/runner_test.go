package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/aoc/internal/puzzle"
)

func fixedClock() func() time.Time {
	now := time.Date(2022, 12, 1, 5, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
}

func TestRunSamples(t *testing.T) {
	results, err := Run(context.Background(), puzzle.All(), Options{Sample: true, Now: fixedClock()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	day5 := results[1]
	if day5.Day != 5 || len(day5.Parts) != 2 {
		t.Fatalf("unexpected day 5 result: %+v", day5)
	}
	if day5.Parts[0].Value != "CMZ" || day5.Parts[1].Value != "MCD" {
		t.Fatalf("unexpected day 5 answers: %+v", day5.Parts)
	}
	if day5.Parts[0].Elapsed != time.Millisecond {
		t.Fatalf("expected elapsed from injected clock, got %v", day5.Parts[0].Elapsed)
	}
}

func TestRunParallelKeepsOrder(t *testing.T) {
	results, err := Run(context.Background(), puzzle.All(), Options{Sample: true, Parallel: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, want := range []int{2, 5, 6} {
		if results[i].Day != want {
			t.Fatalf("result %d is day %d, want %d", i, results[i].Day, want)
		}
	}
}

func TestRunSelectedPart(t *testing.T) {
	p, _ := puzzle.Lookup(6)
	results, err := Run(context.Background(), []puzzle.Puzzle{p}, Options{Sample: true, Parts: []int{2}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	parts := results[0].Parts
	if len(parts) != 1 || parts[0].Part != 2 || parts[0].Value != "19" {
		t.Fatalf("unexpected parts: %+v", parts)
	}
}

func TestRunFromFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Day02.txt"), []byte("A Y\nB X\nC Z\nA Z\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	p, _ := puzzle.Lookup(2)
	results, err := Run(context.Background(), []puzzle.Puzzle{p}, Options{Load: FileLoader(dir, "")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// A Z: scissors vs rock loses (3+0) in part one; needing a win against rock picks paper (2+6).
	if got := results[0].Parts[0].Value; got != "18" {
		t.Fatalf("part 1 = %s, want 18", got)
	}
	if got := results[0].Parts[1].Value; got != "20" {
		t.Fatalf("part 2 = %s, want 20", got)
	}
}

func TestRunMissingInput(t *testing.T) {
	p, _ := puzzle.Lookup(5)
	_, err := Run(context.Background(), []puzzle.Puzzle{p}, Options{Load: FileLoader(t.TempDir(), "")})
	if err == nil {
		t.Fatalf("expected error for missing input")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error in chain, got %v", err)
	}
}

func TestRunSampleMismatch(t *testing.T) {
	p := puzzle.Puzzle{
		Day:    99,
		Title:  "broken",
		Sample: puzzle.Sample{Input: "x\n", Want: []string{"1"}},
		Parts: []puzzle.Part{{Number: 1, Label: "answer", Solve: func([]string) (string, error) {
			return "2", nil
		}}},
	}
	_, err := Run(context.Background(), []puzzle.Puzzle{p}, Options{Sample: true})
	var mismatch *SampleMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SampleMismatchError, got %v", err)
	}
	if mismatch.Want != "1" || mismatch.Got != "2" {
		t.Fatalf("unexpected mismatch: %+v", mismatch)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, puzzle.All(), Options{Sample: true})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
