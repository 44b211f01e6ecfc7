package astar

// reconstructPath walks cameFrom from end toward the start. It returns the
// nodes from end back to, but excluding, the start. Intermediate nodes are
// tagged Path, with onStep called after each one; start and end keep their tags.
func reconstructPath(cameFrom map[*Node]*Node, end *Node, onStep func()) []*Node {
	path := []*Node{end}
	current := end
	for {
		prev, ok := cameFrom[current]
		if !ok {
			return path[:len(path)-1]
		}
		current = prev
		path = append(path, current)
		if _, more := cameFrom[current]; more {
			current.markPath()
			onStep()
		}
	}
}
