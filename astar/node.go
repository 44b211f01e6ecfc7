package astar

import (
	"github.com/pkg/errors"
)

// State is the tag of a single cell. Exactly one is active at a time.
type State int

const (
	Unvisited State = iota
	Open
	Closed
	Barrier
	Start
	End
	Path
)

var stateNames = [...]string{
	Unvisited: "unvisited",
	Open:      "open",
	Closed:    "closed",
	Barrier:   "barrier",
	Start:     "start",
	End:       "end",
	Path:      "path",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Node is one grid cell.
type Node struct {
	row       int
	col       int
	state     State
	neighbors []*Node
	grid      *Grid
}

func (n *Node) Row() int           { return n.row }
func (n *Node) Col() int           { return n.col }
func (n *Node) Pos() (int, int)    { return n.row, n.col }
func (n *Node) State() State       { return n.state }
func (n *Node) Neighbors() []*Node { return n.neighbors }

func (n *Node) IsOpen() bool    { return n.state == Open }
func (n *Node) IsClosed() bool  { return n.state == Closed }
func (n *Node) IsBarrier() bool { return n.state == Barrier }
func (n *Node) IsStart() bool   { return n.state == Start }
func (n *Node) IsEnd() bool     { return n.state == End }
func (n *Node) IsPath() bool    { return n.state == Path }

// MarkBarrier blocks the cell. Start and end cells must be reset first.
func (n *Node) MarkBarrier() error {
	if n.grid.start == n || n.grid.end == n {
		return errors.Wrapf(ErrOccupied, "cell (%d, %d) is %v", n.row, n.col, n.state)
	}
	n.state = Barrier
	return nil
}

// MarkStart makes n the start cell of its grid. A grid holds one start at most.
func (n *Node) MarkStart() error {
	switch {
	case n.grid.start == n:
		n.state = Start
		return nil
	case n.grid.end == n:
		return errors.Wrapf(ErrOccupied, "cell (%d, %d) is end", n.row, n.col)
	case n.grid.start != nil:
		return errors.Wrapf(ErrOccupied, "start already at (%d, %d)", n.grid.start.row, n.grid.start.col)
	}
	n.state = Start
	n.grid.start = n
	return nil
}

// MarkEnd makes n the end cell of its grid. A grid holds one end at most.
func (n *Node) MarkEnd() error {
	switch {
	case n.grid.end == n:
		n.state = End
		return nil
	case n.grid.start == n:
		return errors.Wrapf(ErrOccupied, "cell (%d, %d) is start", n.row, n.col)
	case n.grid.end != nil:
		return errors.Wrapf(ErrOccupied, "end already at (%d, %d)", n.grid.end.row, n.grid.end.col)
	}
	n.state = End
	n.grid.end = n
	return nil
}

// Reset returns the cell to Unvisited, releasing the grid's start/end
// reference if n held it. Resetting an Unvisited cell does nothing.
func (n *Node) Reset() {
	if n.grid.start == n {
		n.grid.start = nil
	}
	if n.grid.end == n {
		n.grid.end = nil
	}
	n.state = Unvisited
}

func (n *Node) markOpen()   { n.state = Open }
func (n *Node) markClosed() { n.state = Closed }
func (n *Node) markPath()   { n.state = Path }

// markEnd puts the end tag back after the goal was reached; the engine tags it
// Open when it enters the frontier.
func (n *Node) markEnd() { n.state = End }

// UpdateNeighbors rebuilds the neighbor list in down, up, right, left order,
// skipping barriers.
func (n *Node) UpdateNeighbors() {
	g := n.grid
	n.neighbors = n.neighbors[:0]
	if n.row < g.dimension-1 && !g.cells[n.row+1][n.col].IsBarrier() {
		n.neighbors = append(n.neighbors, g.cells[n.row+1][n.col])
	}
	if n.row > 0 && !g.cells[n.row-1][n.col].IsBarrier() {
		n.neighbors = append(n.neighbors, g.cells[n.row-1][n.col])
	}
	if n.col < g.dimension-1 && !g.cells[n.row][n.col+1].IsBarrier() {
		n.neighbors = append(n.neighbors, g.cells[n.row][n.col+1])
	}
	if n.col > 0 && !g.cells[n.row][n.col-1].IsBarrier() {
		n.neighbors = append(n.neighbors, g.cells[n.row][n.col-1])
	}
}
