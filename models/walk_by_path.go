package models

// Waypoints reduces a path of adjacent cells to its first cell, the cells
// where it turns and its last cell. A walker moving in straight lines between
// waypoints covers the same cells.
func Waypoints(path []Cell) []Cell {
	if len(path) <= 2 {
		return append([]Cell(nil), path...)
	}
	points := []Cell{path[0]}
	for i := 1; i < len(path)-1; i++ {
		prev, cur, next := path[i-1], path[i], path[i+1]
		if cur[0]-prev[0] != next[0]-cur[0] || cur[1]-prev[1] != next[1]-cur[1] {
			points = append(points, cur)
		}
	}
	return append(points, path[len(path)-1])
}
