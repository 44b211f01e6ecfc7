package models

import (
	"testing"

	"Pathfinder/astar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepFrameWireFormat(t *testing.T) {
	grid, err := (&GridRequest{Layout: []string{"S..", ".#.", "..E"}}).Build(0)
	require.NoError(t, err)
	engine, err := astar.NewEngine(grid, grid.Start(), grid.End())
	require.NoError(t, err)
	for engine.Step() == astar.Running {
	}
	require.Equal(t, astar.Found, engine.Status())

	frame := NewStepFrame(7, grid, engine)
	b, err := frame.Marshal()
	require.NoError(t, err)

	decoded, err := DecodeStepFrame(b)
	require.NoError(t, err)
	assert.Equal(t, int32(7), decoded.Step)
	assert.Equal(t, astar.Found, decoded.SearchStatus())
	assert.Equal(t, grid.Rows(), decoded.Rows())
	assert.Equal(t, frame.Path, decoded.Path)
	assert.Len(t, decoded.PathCells(), 5)
	assert.Equal(t, Cell{0, 0}, decoded.PathCells()[0])
	assert.Equal(t, Cell{2, 2}, decoded.PathCells()[4])

	js := decoded.JSON()
	assert.Equal(t, "found", js.Status)
	assert.Equal(t, 7, js.Step)
	assert.Equal(t, engine.Expanded(), js.Expanded)
}

func TestStepFrameRowsRejectsShortCells(t *testing.T) {
	frame := &StepFrame{Dimension: 3, Cells: []byte("S..")}
	assert.Nil(t, frame.Rows())
	assert.Nil(t, (&StepFrame{}).PathCells())
}

func TestDecodeStepFrameGarbage(t *testing.T) {
	_, err := DecodeStepFrame([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}
