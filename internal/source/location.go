package source

import (
	"bufio"
	"fmt"
	"os"
)

// Location is a span of source code, start to end, within a named file.
type Location struct {
	Start    Position
	End      Position
	Filename string
}

func NewLocation(filename string, start, end Position) Location {
	return Location{Filename: filename, Start: start, End: end}
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Start.Line, l.Start.Column)
}

// Line returns the raw text of line lineNo (1-based) of filename, reading it
// fresh from disk. The diagnostic printer uses this rather than holding the
// source buffer alive for the whole run (spec.md §5: the buffer is released
// once the pipeline stages that need it are done).
func Line(filename string, lineNo int) (string, error) {
	lines, err := LinesInRange(filename, lineNo, lineNo)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("line %d out of range", lineNo)
	}
	return lines[0], nil
}

// LinesInRange reads lines [start, end] (1-indexed, inclusive) from filename.
func LinesInRange(filename string, start, end int) ([]string, error) {
	if start < 1 || end < start {
		return nil, fmt.Errorf("invalid line range: %d-%d", start, end)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lines := make([]string, 0, end-start+1)
	current := 0
	for scanner.Scan() {
		current++
		if current < start {
			continue
		}
		if current > end {
			break
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
