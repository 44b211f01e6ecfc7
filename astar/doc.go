// Package astar finds shortest paths on square grids of passable and blocked
// cells with A* and the Manhattan heuristic.
//
// A caller builds a Grid, marks barriers, a start and an end, refreshes the
// neighbor lists with RecomputeAllNeighbors and then either:
//
//   - calls Search to run to completion, observing progress through a callback, or
//   - creates an Engine and drives it one expansion at a time with Step.
//
// Ties between equal f-scores are broken by insertion order, so a given grid
// always produces the same sequence of state changes and the same path.
package astar
