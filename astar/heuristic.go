package astar

// Manhattan is the L1 distance between two cells. It never overestimates the
// remaining cost on a 4-connected unit-cost grid.
func Manhattan(a, b *Node) float64 {
	return float64(abs(a.row-b.row) + abs(a.col-b.col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
