package models

import (
	"Pathfinder/astar"

	"github.com/pkg/errors"
)

// Cell is a (row, col) pair on the wire.
type Cell [2]int

func CellOf(n *astar.Node) Cell {
	r, c := n.Pos()
	return Cell{r, c}
}

// GridRequest describes a grid to search. Layout, when present, fixes the
// dimension; Start, End and Barriers are applied on top of it.
type GridRequest struct {
	Dimension int      `json:"dimension"`
	Layout    []string `json:"layout,omitempty"`
	Start     *Cell    `json:"start,omitempty"`
	End       *Cell    `json:"end,omitempty"`
	Barriers  []Cell   `json:"barriers,omitempty"`
}

// Build creates the grid and refreshes its neighbor lists.
func (r *GridRequest) Build(maxDimension int) (*astar.Grid, error) {
	dim := r.Dimension
	if len(r.Layout) > 0 {
		dim = len(r.Layout)
	}
	if maxDimension > 0 && dim > maxDimension {
		return nil, errors.Wrapf(astar.ErrInvalidConfiguration, "dimension %d exceeds %d", dim, maxDimension)
	}

	var (
		grid *astar.Grid
		err  error
	)
	if len(r.Layout) > 0 {
		grid, err = astar.FromRows(r.Layout)
	} else {
		grid, err = astar.NewGrid(dim)
	}
	if err != nil {
		return nil, err
	}

	if r.Start != nil {
		if err := mark(grid, *r.Start, (*astar.Node).MarkStart); err != nil {
			return nil, errors.Wrap(err, "start")
		}
	}
	if r.End != nil {
		if err := mark(grid, *r.End, (*astar.Node).MarkEnd); err != nil {
			return nil, errors.Wrap(err, "end")
		}
	}
	for _, b := range r.Barriers {
		if err := mark(grid, b, (*astar.Node).MarkBarrier); err != nil {
			return nil, errors.Wrap(err, "barrier")
		}
	}
	grid.RecomputeAllNeighbors()
	return grid, nil
}

func mark(grid *astar.Grid, cell Cell, fn func(*astar.Node) error) error {
	n, err := grid.Cell(cell[0], cell[1])
	if err != nil {
		return err
	}
	return fn(n)
}

// SearchResponse is the outcome of a one-shot search.
type SearchResponse struct {
	Found     bool     `json:"found"`
	Length    int      `json:"length"`
	Path      []Cell   `json:"path,omitempty"`
	Waypoints []Cell   `json:"waypoints,omitempty"`
	Expanded  int      `json:"expanded"`
	Grid      []string `json:"grid"`
}

func NewSearchResponse(grid *astar.Grid, engine *astar.Engine) SearchResponse {
	resp := SearchResponse{
		Found:    engine.Status() == astar.Found,
		Length:   engine.Length(),
		Expanded: engine.Expanded(),
		Grid:     grid.Rows(),
	}
	for _, n := range engine.Path() {
		resp.Path = append(resp.Path, CellOf(n))
	}
	if resp.Found {
		resp.Waypoints = Waypoints(resp.Path)
	}
	return resp
}

type SessionResponse struct {
	ID        string   `json:"id"`
	Dimension int      `json:"dimension"`
	Grid      []string `json:"grid"`
}
