package astar

import (
	"strings"

	"github.com/pkg/errors"
)

var stateGlyphs = map[State]byte{
	Unvisited: '.',
	Open:      'o',
	Closed:    'x',
	Barrier:   '#',
	Start:     'S',
	End:       'E',
	Path:      '*',
}

// Glyph is the single-character form of s used by layouts.
func (s State) Glyph() byte {
	if c, ok := stateGlyphs[s]; ok {
		return c
	}
	return '?'
}

// ParseLayout builds a grid from square text rows: '.' free, '#' barrier,
// 'S' start, 'E' end. Blank lines and surrounding spaces are ignored.
func ParseLayout(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	return FromRows(rows)
}

// FromRows builds a grid from already split layout rows.
func FromRows(rows []string) (*Grid, error) {
	grid, err := NewGrid(len(rows))
	if err != nil {
		return nil, errors.Wrap(ErrBadLayout, "empty layout")
	}
	for i, row := range rows {
		if len(row) != grid.dimension {
			return nil, errors.Wrapf(ErrBadLayout, "row %d has %d cells, want %d", i, len(row), grid.dimension)
		}
		for j := 0; j < len(row); j++ {
			n := grid.cells[i][j]
			switch row[j] {
			case '.':
			case '#':
				err = n.MarkBarrier()
			case 'S':
				err = n.MarkStart()
			case 'E':
				err = n.MarkEnd()
			default:
				return nil, errors.Wrapf(ErrBadLayout, "unknown cell %q at (%d, %d)", row[j], i, j)
			}
			if err != nil {
				return nil, errors.Wrapf(ErrBadLayout, "cell (%d, %d): %v", i, j, err)
			}
		}
	}
	return grid, nil
}

// Rows renders every cell as its state glyph, one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.dimension)
	buf := make([]byte, g.dimension)
	for i, row := range g.cells {
		for j, n := range row {
			buf[j] = n.state.Glyph()
		}
		rows[i] = string(buf)
	}
	return rows
}

// Layout is Rows joined by newlines.
func (g *Grid) Layout() string {
	return strings.Join(g.Rows(), "\n")
}
