package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierOrder(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)
	a, b, c, d := mustCell(t, g, 0, 0), mustCell(t, g, 0, 1), mustCell(t, g, 0, 2), mustCell(t, g, 1, 0)

	f := newFrontier()
	f.Push(a, 5)
	f.Push(b, 3)
	f.Push(c, 5)
	f.Push(d, 3)
	assert.Equal(t, 4, f.Len())
	assert.True(t, f.Contains(c))

	var got []*Node
	for f.Len() > 0 {
		got = append(got, f.Pop())
	}
	assert.Equal(t, []*Node{b, d, a, c}, got, "equal scores pop in insertion order")
	assert.False(t, f.Contains(c))
}
