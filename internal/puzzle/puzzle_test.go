package puzzle

import (
	"errors"
	"strings"
	"testing"
)

func TestAllOrderedByDay(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 puzzles, got %d", len(all))
	}
	for i, want := range []int{2, 5, 6} {
		if all[i].Day != want {
			t.Fatalf("puzzle %d is day %d, want %d", i, all[i].Day, want)
		}
	}
}

func TestInputName(t *testing.T) {
	p, ok := Lookup(5)
	if !ok {
		t.Fatalf("day 5 not registered")
	}
	if p.InputName != "Day05.txt" {
		t.Fatalf("InputName = %q, want Day05.txt", p.InputName)
	}
}

func TestSelect(t *testing.T) {
	got, err := Select([]int{6, 2, 6})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 2 || got[0].Day != 2 || got[1].Day != 6 {
		t.Fatalf("unexpected selection: %v", got)
	}
	if _, err := Select([]int{25}); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
}

func TestSamplesSolve(t *testing.T) {
	for _, p := range All() {
		lines := strings.Split(strings.TrimRight(p.Sample.Input, "\n"), "\n")
		for _, part := range p.Parts {
			want, ok := p.SampleWant(part.Number)
			if !ok {
				t.Fatalf("%v part %d has no sample answer", p, part.Number)
			}
			got, err := part.Solve(lines)
			if err != nil {
				t.Fatalf("%v part %d: %v", p, part.Number, err)
			}
			if got != want {
				t.Fatalf("%v part %d = %q, want %q", p, part.Number, got, want)
			}
		}
	}
}

func TestPartLookup(t *testing.T) {
	p, _ := Lookup(2)
	if _, ok := p.Part(3); ok {
		t.Fatalf("day 2 should not have a part 3")
	}
	part, ok := p.Part(2)
	if !ok || part.Label != "yourScore for part 2" {
		t.Fatalf("unexpected part 2: %+v", part)
	}
}
