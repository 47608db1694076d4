// File: internal/crates/crates.go
// Brief: Day 5 crate stack rearrangement.

// Package crates simulates a cargo crane rearranging stacks of crates. The
// input is a fixed-width drawing of the stacks followed by move instructions.
package crates

import (
	"fmt"
	"strconv"
	"strings"
)

// Move relocates Quantity crates from stack From to stack To (1-based).
type Move struct {
	Quantity int
	From     int
	To       int
}

func (m Move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.Quantity, m.From, m.To)
}

// Stack holds crate labels ordered bottom to top.
type Stack []byte

// Stacks is the full set of piles, indexed from zero.
type Stacks []Stack

// Crane selects how a move carries crates.
type Crane int

const (
	// CrateMover9000 lifts one crate at a time, so the moved run ends up reversed.
	CrateMover9000 Crane = iota
	// CrateMover9001 lifts the whole run at once and keeps its order.
	CrateMover9001
)

func (c Crane) String() string {
	switch c {
	case CrateMover9000:
		return "CrateMover 9000"
	case CrateMover9001:
		return "CrateMover 9001"
	}
	return fmt.Sprintf("Crane(%d)", int(c))
}

// Plan is a parsed puzzle input.
type Plan struct {
	Stacks Stacks
	Moves  []Move
}

const columnWidth = 4

// Clone returns a deep copy so callers can rearrange without touching s.
func (s Stacks) Clone() Stacks {
	out := make(Stacks, len(s))
	for i, st := range s {
		out[i] = append(Stack(nil), st...)
	}
	return out
}

// Apply performs m with crane c. Moves naming a stack that does not exist are
// ignored and a quantity larger than the source stack moves what is there.
func (s Stacks) Apply(m Move, c Crane) {
	from, to := m.From-1, m.To-1
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || m.Quantity <= 0 {
		return
	}
	n := m.Quantity
	if n > len(s[from]) {
		n = len(s[from])
	}
	cut := len(s[from]) - n
	run := append(Stack(nil), s[from][cut:]...)
	s[from] = s[from][:cut]
	if c == CrateMover9000 {
		for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
			run[i], run[j] = run[j], run[i]
		}
	}
	s[to] = append(s[to], run...)
}

// Tops concatenates the top crate of every stack. Empty stacks are skipped.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, st := range s {
		if len(st) == 0 {
			continue
		}
		b.WriteByte(st[len(st)-1])
	}
	return b.String()
}

// ParseDrawing reads the stack drawing rows, top row first. A numbering row
// such as " 1   2   3 " may be included; it fixes the number of stacks.
func ParseDrawing(lines []string) Stacks {
	count := 0
	var rows []string
	for _, line := range lines {
		if n, ok := stackLabels(line); ok {
			count = n
			break
		}
		if !strings.Contains(line, "[") {
			continue
		}
		rows = append(rows, line)
	}
	if count == 0 {
		for _, row := range rows {
			if n := (len(row) + columnWidth - 1) / columnWidth; n > count {
				count = n
			}
		}
	}
	stacks := make(Stacks, count)
	// Rows run top to bottom, so fill from the last row up.
	for r := len(rows) - 1; r >= 0; r-- {
		row := rows[r]
		for i := 0; i < count; i++ {
			pos := i*columnWidth + 1
			if pos >= len(row) {
				break
			}
			if ch := row[pos]; isCrate(ch) {
				stacks[i] = append(stacks[i], ch)
			}
		}
	}
	return stacks
}

func isCrate(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// stackLabels reports whether line is the numbering row and returns the
// largest label on it. Labels larger than the row's width cannot name a
// drawing column, so such a row does not count.
func stackLabels(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	max := 0
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n > len(line) {
			return 0, false
		}
		if n > max {
			max = n
		}
	}
	return max, true
}

// ParseMove parses "move <q> from <a> to <b>".
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
		return Move{}, fmt.Errorf("malformed move %q", line)
	}
	var nums [3]int
	for i, f := range []string{fields[1], fields[3], fields[5]} {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Move{}, fmt.Errorf("malformed move %q: %w", line, err)
		}
		nums[i] = n
	}
	return Move{Quantity: nums[0], From: nums[1], To: nums[2]}, nil
}

// ParsePlan splits the input into the drawing and the move list. Lines that
// are neither drawing rows nor moves are ignored.
func ParsePlan(lines []string) (Plan, error) {
	drawingEnd := len(lines)
	for i, line := range lines {
		if _, ok := stackLabels(line); ok {
			drawingEnd = i + 1
			break
		}
		if strings.HasPrefix(line, "move") {
			drawingEnd = i
			break
		}
	}
	plan := Plan{Stacks: ParseDrawing(lines[:drawingEnd])}
	for i := drawingEnd; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], "move") {
			continue
		}
		m, err := ParseMove(lines[i])
		if err != nil {
			return Plan{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		plan.Moves = append(plan.Moves, m)
	}
	return plan, nil
}

// Rearrange runs every move of plan on a copy of its stacks and returns the
// resulting top crates.
func Rearrange(plan Plan, c Crane) string {
	stacks := plan.Stacks.Clone()
	for _, m := range plan.Moves {
		stacks.Apply(m, c)
	}
	return stacks.Tops()
}

// PartOne returns the top crates after a CrateMover 9000 run.
func PartOne(lines []string) (string, error) {
	plan, err := ParsePlan(lines)
	if err != nil {
		return "", err
	}
	return Rearrange(plan, CrateMover9000), nil
}

// PartTwo returns the top crates after a CrateMover 9001 run.
func PartTwo(lines []string) (string, error) {
	plan, err := ParsePlan(lines)
	if err != nil {
		return "", err
	}
	return Rearrange(plan, CrateMover9001), nil
}
