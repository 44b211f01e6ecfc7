package astar

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Status is where an Engine stands after a step.
type Status int

const (
	Running Status = iota
	Found
	NotFound
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

// Options holds engine settings.
type Options struct {
	Logger *zap.Logger
	OnStep func()
}

// Option modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithStepFunc sets the callback run after every expansion and every path
// marking. It must not change barriers.
func WithStepFunc(fn func()) Option {
	return func(o *Options) { o.OnStep = fn }
}

// Engine is an A* search that advances one expansion per Step call. It owns
// the score maps and the frontier; the grid's barrier layout must stay fixed
// until the engine is done.
type Engine struct {
	grid   *Grid
	start  *Node
	end    *Node
	logger *zap.Logger
	onStep func()

	open     *frontier
	gScore   map[*Node]float64
	fScore   map[*Node]float64
	cameFrom map[*Node]*Node

	status   Status
	expanded int
	path     []*Node
}

// NewEngine checks the search preconditions and seeds the frontier with start.
// Nothing on the grid changes when it returns an error.
func NewEngine(grid *Grid, start, end *Node, options ...Option) (*Engine, error) {
	opts := Options{}
	for _, option := range options {
		option(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.OnStep == nil {
		opts.OnStep = func() {}
	}

	if err := validate(grid, start, end); err != nil {
		return nil, err
	}

	e := &Engine{
		grid:     grid,
		start:    start,
		end:      end,
		logger:   opts.Logger,
		onStep:   opts.OnStep,
		open:     newFrontier(),
		gScore:   map[*Node]float64{start: 0},
		fScore:   map[*Node]float64{start: Manhattan(start, end)},
		cameFrom: make(map[*Node]*Node),
	}
	e.open.Push(start, e.fScore[start])

	e.logger.Debug("search begin",
		zap.Int("dimension", grid.dimension),
		zap.Int("startRow", start.row), zap.Int("startCol", start.col),
		zap.Int("endRow", end.row), zap.Int("endCol", end.col))
	return e, nil
}

func validate(grid *Grid, start, end *Node) error {
	switch {
	case grid == nil:
		return errors.Wrap(ErrPrecondition, "nil grid")
	case start == nil || end == nil:
		return errors.Wrap(ErrPrecondition, "start and end must both be set")
	case !grid.Contains(start) || !grid.Contains(end):
		return errors.Wrap(ErrPrecondition, "start and end must belong to the grid")
	case start != grid.start || end != grid.end:
		return errors.Wrap(ErrPrecondition, "start and end must be the grid's marked start and end")
	case start == end:
		return errors.Wrapf(ErrPrecondition, "start and end are the same cell (%d, %d)", start.row, start.col)
	case start.IsBarrier() || end.IsBarrier():
		return errors.Wrap(ErrPrecondition, "start and end must not be barriers")
	}
	return nil
}

func (e *Engine) score(m map[*Node]float64, n *Node) float64 {
	if s, ok := m[n]; ok {
		return s
	}
	return math.Inf(1)
}

// Step runs one iteration of the search loop. Once the engine has finished,
// further calls return the final status without doing anything.
func (e *Engine) Step() Status {
	if e.status != Running {
		return e.status
	}
	if e.open.Len() == 0 {
		e.status = NotFound
		e.logger.Debug("search exhausted", zap.Int("expanded", e.expanded))
		return e.status
	}

	current := e.open.Pop()
	e.expanded++

	if current == e.end {
		trail := reconstructPath(e.cameFrom, e.end, e.onStep)
		e.end.markEnd()
		e.path = make([]*Node, 0, len(trail)+1)
		e.path = append(e.path, e.start)
		for i := len(trail) - 1; i >= 0; i-- {
			e.path = append(e.path, trail[i])
		}
		e.status = Found
		e.logger.Debug("search found path",
			zap.Int("length", len(trail)),
			zap.Int("expanded", e.expanded))
		return e.status
	}

	for _, neighbor := range current.neighbors {
		tentative := e.score(e.gScore, current) + 1
		if tentative < e.score(e.gScore, neighbor) {
			e.cameFrom[neighbor] = current
			e.gScore[neighbor] = tentative
			e.fScore[neighbor] = tentative + Manhattan(neighbor, e.end)
			if !e.open.Contains(neighbor) {
				e.open.Push(neighbor, e.fScore[neighbor])
				neighbor.markOpen()
			}
		}
	}

	e.onStep()

	if current != e.start {
		current.markClosed()
	}
	return e.status
}

func (e *Engine) Status() Status { return e.status }

// Expanded is the number of nodes popped from the frontier so far.
func (e *Engine) Expanded() int { return e.expanded }

// Path returns the nodes from start to end inclusive, or nil unless the
// search found the end.
func (e *Engine) Path() []*Node { return e.path }

// Length is the edge count of the found path, or -1.
func (e *Engine) Length() int {
	if e.status != Found {
		return -1
	}
	return len(e.path) - 1
}
