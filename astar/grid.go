package astar

import (
	"github.com/pkg/errors"
)

// Grid is a square, row-major collection of nodes. It owns every node it
// creates.
type Grid struct {
	dimension int
	cells     [][]*Node
	start     *Node
	end       *Node
}

// NewGrid builds a dimension x dimension grid of unvisited nodes.
func NewGrid(dimension int) (*Grid, error) {
	if dimension <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "dimension %d", dimension)
	}
	g := &Grid{dimension: dimension}
	g.Rebuild()
	return g, nil
}

// Rebuild discards every node and creates fresh unvisited ones.
func (g *Grid) Rebuild() {
	g.start, g.end = nil, nil
	g.cells = make([][]*Node, g.dimension)
	for i := 0; i < g.dimension; i++ {
		g.cells[i] = make([]*Node, g.dimension)
		for j := 0; j < g.dimension; j++ {
			g.cells[i][j] = &Node{row: i, col: j, grid: g}
		}
	}
}

func (g *Grid) Dimension() int { return g.dimension }
func (g *Grid) Start() *Node   { return g.start }
func (g *Grid) End() *Node     { return g.end }

// Cell returns the node at (row, col).
func (g *Grid) Cell(row, col int) (*Node, error) {
	if !g.inBounds(row, col) {
		return nil, errors.Wrapf(ErrOutOfBounds, "(%d, %d) outside %dx%d grid", row, col, g.dimension, g.dimension)
	}
	return g.cells[row][col], nil
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.dimension && col >= 0 && col < g.dimension
}

// Contains reports whether n is one of g's own nodes.
func (g *Grid) Contains(n *Node) bool {
	return n != nil && n.grid == g && g.inBounds(n.row, n.col) && g.cells[n.row][n.col] == n
}

// Each visits every node in row-major order.
func (g *Grid) Each(fn func(n *Node)) {
	for _, row := range g.cells {
		for _, n := range row {
			fn(n)
		}
	}
}

// RecomputeAllNeighbors refreshes every node's neighbor list. Call it after
// changing barriers and before searching.
func (g *Grid) RecomputeAllNeighbors() {
	g.Each(func(n *Node) { n.UpdateNeighbors() })
}

// ClearSearch drops the marks left by a previous search, keeping barriers,
// start and end.
func (g *Grid) ClearSearch() {
	g.Each(func(n *Node) {
		switch {
		case n == g.start:
			n.state = Start
		case n == g.end:
			n.state = End
		case n.state == Open || n.state == Closed || n.state == Path:
			n.state = Unvisited
		}
	})
}

// Place applies a primary click at (row, col): the first free click sets the
// start, the next sets the end, later clicks raise barriers. Clicks on the
// start or end leave them untouched.
func (g *Grid) Place(row, col int) (*Node, error) {
	n, err := g.Cell(row, col)
	if err != nil {
		return nil, err
	}
	switch {
	case n == g.start || n == g.end:
	case g.start == nil:
		err = n.MarkStart()
	case g.end == nil:
		err = n.MarkEnd()
	default:
		err = n.MarkBarrier()
	}
	return n, err
}

// Erase applies a secondary click at (row, col), resetting the cell.
func (g *Grid) Erase(row, col int) (*Node, error) {
	n, err := g.Cell(row, col)
	if err != nil {
		return nil, err
	}
	n.Reset()
	return n, nil
}
