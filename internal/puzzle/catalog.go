package puzzle

import (
	"strconv"

	"github.com/example/aoc/internal/crates"
	"github.com/example/aoc/internal/marker"
	"github.com/example/aoc/internal/rockpaper"
)

var catalog = map[int]Puzzle{}

func register(p Puzzle) {
	if p.InputName == "" {
		p.InputName = InputName(p.Day)
	}
	catalog[p.Day] = p
}

func ints(fn func([]string) int) SolveFunc {
	return func(lines []string) (string, error) {
		return strconv.Itoa(fn(lines)), nil
	}
}

func init() {
	register(Puzzle{
		Day:   2,
		Title: "Rock Paper Scissors",
		Sample: Sample{
			Input: "A Y\nB X\nC Z\n",
			Want:  []string{"15", "12"},
		},
		Parts: []Part{
			{Number: 1, Label: "yourScore for part 1", Solve: ints(rockpaper.PartOne)},
			{Number: 2, Label: "yourScore for part 2", Solve: ints(rockpaper.PartTwo)},
		},
	})
	register(Puzzle{
		Day:   5,
		Title: "Supply Stacks",
		Sample: Sample{
			Input: "    [D]    \n" +
				"[N] [C]    \n" +
				"[Z] [M] [P]\n" +
				" 1   2   3 \n" +
				"\n" +
				"move 1 from 2 to 1\n" +
				"move 3 from 1 to 3\n" +
				"move 2 from 2 to 1\n" +
				"move 1 from 1 to 2\n",
			Want: []string{"CMZ", "MCD"},
		},
		Parts: []Part{
			{Number: 1, Label: "topStackElements", Solve: crates.PartOne},
			{Number: 2, Label: "topStackAfterRearrange", Solve: crates.PartTwo},
		},
	})
	register(Puzzle{
		Day:   6,
		Title: "Tuning Trouble",
		Sample: Sample{
			Input: "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n",
			Want:  []string{"7", "19"},
		},
		Parts: []Part{
			{Number: 1, Label: "beginning index", Solve: ints(marker.PartOne)},
			{Number: 2, Label: "beginning index", Solve: ints(marker.PartTwo)},
		},
	})
}
