// File: internal/rockpaper/rockpaper.go
// Brief: Day 2 rock paper scissors scoring.

// Package rockpaper scores rounds of rock paper scissors from an encrypted
// strategy guide. Each guide line holds the opponent's symbol (A/B/C) and a
// second column that is read either as your shape (X/Y/Z) or as the outcome
// you need (lose/draw/win).
package rockpaper

import "strings"

// Shape is a hand shape. Its numeric value is the shape score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

// Score returns the points awarded for playing s.
func (s Shape) Score() int { return int(s) }

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// Outcome is the result of a round from your side. Its numeric value is the
// outcome score.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Score returns the points awarded for the outcome.
func (o Outcome) Score() int { return int(o) }

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return "unknown"
}

// beats[s] is the shape that s defeats; beatenBy[s] is the shape that defeats s.
var (
	beats = [...]Shape{
		Rock:     Scissors,
		Paper:    Rock,
		Scissors: Paper,
	}
	beatenBy = [...]Shape{
		Rock:     Paper,
		Paper:    Scissors,
		Scissors: Rock,
	}
)

func (s Shape) valid() bool { return s >= Rock && s <= Scissors }

// ParseOpponent maps A/B/C to a shape. Unknown symbols are read as Rock.
func ParseOpponent(sym string) Shape {
	switch sym {
	case "A":
		return Rock
	case "B":
		return Paper
	case "C":
		return Scissors
	}
	return Rock
}

// ParseShape maps X/Y/Z to a shape. Unknown symbols are read as Rock.
func ParseShape(sym string) Shape {
	switch sym {
	case "X":
		return Rock
	case "Y":
		return Paper
	case "Z":
		return Scissors
	}
	return Rock
}

// ParseOutcome maps X/Y/Z to the outcome you need. Unknown symbols are read
// as Lose.
func ParseOutcome(sym string) Outcome {
	switch sym {
	case "X":
		return Lose
	case "Y":
		return Draw
	case "Z":
		return Win
	}
	return Lose
}

// Play reports how a round ends for you.
func Play(opponent, you Shape) Outcome {
	switch {
	case you == opponent:
		return Draw
	case you.valid() && beats[you] == opponent:
		return Win
	default:
		return Lose
	}
}

// Score is the round score: your shape plus the outcome.
func Score(opponent, you Shape) int {
	return you.Score() + Play(opponent, you).Score()
}

// Respond picks the shape that produces want against opponent.
func Respond(opponent Shape, want Outcome) Shape {
	if !opponent.valid() {
		opponent = Rock
	}
	switch want {
	case Win:
		return beatenBy[opponent]
	case Draw:
		return opponent
	default:
		return beats[opponent]
	}
}

// columns splits a guide line into its two symbols. A missing column is
// returned as the empty string so that it falls back like any unknown symbol.
func columns(line string) (string, string, bool) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", "", false
	case 1:
		return fields[0], "", true
	default:
		return fields[0], fields[1], true
	}
}

// PartOne totals the score when the second column is your shape.
func PartOne(lines []string) int {
	total := 0
	for _, line := range lines {
		a, b, ok := columns(line)
		if !ok {
			continue
		}
		total += Score(ParseOpponent(a), ParseShape(b))
	}
	return total
}

// PartTwo totals the score when the second column is the outcome to reach.
func PartTwo(lines []string) int {
	total := 0
	for _, line := range lines {
		a, b, ok := columns(line)
		if !ok {
			continue
		}
		opponent := ParseOpponent(a)
		total += Score(opponent, Respond(opponent, ParseOutcome(b)))
	}
	return total
}
