package field

import (
	"errors"
	"strings"
)

// ParseText parses a newline- or space-delimited grid of h rows and w
// columns. Whitespace between tokens is ignored; each remaining
// character must be a recognized cell token.
func ParseText(h, w int, s string) (*Field, error) {
	rows := strings.Fields(s)
	cells := make([][]Kind, 0, len(rows))
	for _, row := range rows {
		if len(row) != w {
			return nil, errors.New("failed to parse")
		}
		line := make([]Kind, w)
		for i := 0; i < w; i++ {
			k, err := kindFromChar(row[i])
			if err != nil {
				return nil, err
			}
			line[i] = k
		}
		cells = append(cells, line)
	}
	if len(cells) != h {
		return nil, errors.New("failed to parse")
	}
	return &Field{H: h, W: w, Cells: cells}, nil
}

// ParseMatrix parses a rectangular character matrix using the same
// token set and error conditions as ParseText.
func ParseMatrix(rows [][]byte) (*Field, error) {
	if len(rows) == 0 {
		return nil, errors.New("level data is empty")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, errors.New("level data has zero width")
	}
	for _, row := range rows {
		if len(row) != w {
			return nil, errors.New("row widths are inconsistent")
		}
	}
	cells := make([][]Kind, 0, len(rows))
	for _, row := range rows {
		line := make([]Kind, w)
		for i, c := range row {
			k, err := kindFromChar(c)
			if err != nil {
				return nil, err
			}
			line[i] = k
		}
		cells = append(cells, line)
	}
	return &Field{H: len(rows), W: w, Cells: cells}, nil
}
