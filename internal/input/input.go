// File: internal/input/input.go
// Brief: Puzzle input loading.

// Package input reads puzzle input files as lines.
package input

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/aoc/internal/puzzle"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// maxLineBytes bounds a single input line; datastream puzzles put the whole
// input on one line.
const maxLineBytes = 1 << 20

// Read returns the lines of r without line terminators. Trailing blank lines
// are dropped.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan input")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// ReadString is Read over an in-memory input.
func ReadString(s string) []string {
	lines, _ := Read(strings.NewReader(s))
	return lines
}

// Load reads the file at path. A leading "~" expands to the home directory.
func Load(path string) ([]string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "expand input path %s", path)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %s", path)
	}
	defer f.Close()
	lines, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %s", path)
	}
	return lines, nil
}

// Resolve picks the input file for p: override when set, otherwise the
// puzzle's conventional file name under dir.
func Resolve(dir, override string, p puzzle.Puzzle) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	name := p.InputName
	if name == "" {
		name = puzzle.InputName(p.Day)
	}
	return filepath.Join(dir, name)
}
