package astar

import (
	"context"

	"go.uber.org/zap"
)

// Search runs A* from start to end to completion. onStep may be nil. The
// result is false, with a nil error, when no path exists.
func Search(grid *Grid, start, end *Node, onStep func(), options ...Option) (bool, error) {
	return SearchContext(context.Background(), grid, start, end, onStep, options...)
}

// SearchContext is Search with cancellation checked between steps. A cancelled
// search leaves the grid as it was after the last completed step.
func SearchContext(ctx context.Context, grid *Grid, start, end *Node, onStep func(), options ...Option) (bool, error) {
	if onStep != nil {
		options = append(options, WithStepFunc(onStep))
	}
	engine, err := NewEngine(grid, start, end, options...)
	if err != nil {
		return false, err
	}
	status, err := engine.Run(ctx)
	return status == Found, err
}

// Run steps the engine until it finishes or ctx is done.
func (e *Engine) Run(ctx context.Context) (Status, error) {
	for e.status == Running {
		if err := ctx.Err(); err != nil {
			e.logger.Debug("search cancelled", zap.Int("expanded", e.expanded), zap.Error(err))
			return e.status, err
		}
		e.Step()
	}
	return e.status, nil
}
