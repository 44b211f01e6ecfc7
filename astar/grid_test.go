package astar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCell(t *testing.T, g *Grid, row, col int) *Node {
	t.Helper()
	n, err := g.Cell(row, col)
	require.NoError(t, err)
	return n
}

func TestNewGridRejectsNonPositiveDimension(t *testing.T) {
	for _, dim := range []int{0, -1, -50} {
		g, err := NewGrid(dim)
		assert.Nil(t, g)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "dimension %d: %v", dim, err)
	}
}

func TestNewGridCells(t *testing.T) {
	g, err := NewGrid(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Dimension())

	count := 0
	g.Each(func(n *Node) {
		assert.Equal(t, Unvisited, n.State())
		assert.Equal(t, count/4, n.Row())
		assert.Equal(t, count%4, n.Col())
		count++
	})
	assert.Equal(t, 16, count)
}

func TestCellOutOfBounds(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
		n, err := g.Cell(rc[0], rc[1])
		assert.Nil(t, n)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "%v: %v", rc, err)
	}
}

func TestNeighborOrder(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)
	g.RecomputeAllNeighbors()

	center := mustCell(t, g, 1, 1)
	var got [][2]int
	for _, nb := range center.Neighbors() {
		r, c := nb.Pos()
		got = append(got, [2]int{r, c})
	}
	assert.Equal(t, [][2]int{{2, 1}, {0, 1}, {1, 2}, {1, 0}}, got)

	corner := mustCell(t, g, 0, 0)
	assert.Len(t, corner.Neighbors(), 2)
}

func TestNeighborsSkipBarriersAfterRecompute(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)
	g.RecomputeAllNeighbors()
	center := mustCell(t, g, 1, 1)
	require.Len(t, center.Neighbors(), 4)

	require.NoError(t, mustCell(t, g, 2, 1).MarkBarrier())
	require.NoError(t, mustCell(t, g, 1, 0).MarkBarrier())
	assert.Len(t, center.Neighbors(), 4, "lists are only rebuilt on request")

	g.RecomputeAllNeighbors()
	var got [][2]int
	for _, nb := range center.Neighbors() {
		r, c := nb.Pos()
		got = append(got, [2]int{r, c})
	}
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, got)
}

func TestStartEndAreSingleAndSticky(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)
	a, b, c := mustCell(t, g, 0, 0), mustCell(t, g, 1, 1), mustCell(t, g, 2, 2)

	require.NoError(t, a.MarkStart())
	assert.Same(t, a, g.Start())
	assert.True(t, errors.Is(b.MarkStart(), ErrOccupied))
	assert.True(t, errors.Is(a.MarkEnd(), ErrOccupied))
	assert.True(t, errors.Is(a.MarkBarrier(), ErrOccupied))
	assert.True(t, a.IsStart())

	require.NoError(t, c.MarkEnd())
	assert.Same(t, c, g.End())
	assert.True(t, errors.Is(b.MarkEnd(), ErrOccupied))
	assert.True(t, errors.Is(c.MarkBarrier(), ErrOccupied))

	require.NoError(t, b.MarkBarrier())
	assert.True(t, b.IsBarrier())
}

func TestResetIsIdempotent(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)
	start, end, free := mustCell(t, g, 0, 0), mustCell(t, g, 2, 2), mustCell(t, g, 1, 1)
	require.NoError(t, start.MarkStart())
	require.NoError(t, end.MarkEnd())

	start.Reset()
	assert.Nil(t, g.Start())
	assert.Equal(t, Unvisited, start.State())
	end.Reset()
	assert.Nil(t, g.End())

	free.Reset()
	assert.Equal(t, Unvisited, free.State())
	free.Reset()
	assert.Equal(t, Unvisited, free.State())

	require.NoError(t, free.MarkStart(), "start slot is free again")
}

func TestPlaceAndErase(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)

	n, err := g.Place(0, 0)
	require.NoError(t, err)
	assert.True(t, n.IsStart())
	n, err = g.Place(0, 0)
	require.NoError(t, err)
	assert.True(t, n.IsStart(), "clicking the start again keeps it")
	n, err = g.Place(2, 2)
	require.NoError(t, err)
	assert.True(t, n.IsEnd())
	n, err = g.Place(1, 1)
	require.NoError(t, err)
	assert.True(t, n.IsBarrier())

	_, err = g.Place(3, 0)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	n, err = g.Erase(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Unvisited, n.State())
	assert.Nil(t, g.Start())

	n, err = g.Place(1, 2)
	require.NoError(t, err)
	assert.True(t, n.IsStart(), "next click refills the missing start")
}

func TestRebuildDropsEverything(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)
	old := mustCell(t, g, 0, 0)
	require.NoError(t, old.MarkStart())
	require.NoError(t, mustCell(t, g, 1, 1).MarkBarrier())

	g.Rebuild()
	assert.Nil(t, g.Start())
	assert.False(t, g.Contains(old))
	g.Each(func(n *Node) { assert.Equal(t, Unvisited, n.State()) })
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "barrier", Barrier.String())
	assert.Equal(t, "path", Path.String())
	assert.Equal(t, "unknown", State(42).String())
}
