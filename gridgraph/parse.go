package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a digit grid: one line per row, one decimal digit per
// tile. Surrounding whitespace on a line and blank lines are ignored.
// Rectangularity and emptiness are checked by NewWeightedGrid.
func ParseDigits(r io.Reader, opts ...Option) (*WeightedGrid, error) {
	var costs [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadDigit, ch, line, col+1)
			}
			row = append(row, int(ch-'0'))
		}
		costs = append(costs, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading digit grid: %w", err)
	}

	return NewWeightedGrid(costs, opts...)
}

// ParseDigitsString is ParseDigits over an in-memory string.
func ParseDigitsString(s string, opts ...Option) (*WeightedGrid, error) {
	return ParseDigits(strings.NewReader(s), opts...)
}
