package astar

import (
	"container/heap"

	mapset "github.com/deckarep/golang-set"
)

type frontierEntry struct {
	fScore float64
	count  int
	node   *Node
}

// entryHeap orders entries by f-score, then by insertion count.
type entryHeap []frontierEntry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].fScore != h[j].fScore {
		return h[i].fScore < h[j].fScore
	}
	return h[i].count < h[j].count
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) {
	*h = append(*h, x.(frontierEntry))
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = frontierEntry{}
	*h = old[:n-1]
	return e
}

// frontier is the open set: a heap plus a membership set of the nodes it holds.
type frontier struct {
	entries entryHeap
	members mapset.Set
	count   int
}

func newFrontier() *frontier {
	return &frontier{members: mapset.NewThreadUnsafeSet()}
}

func (f *frontier) Len() int { return f.entries.Len() }

func (f *frontier) Contains(n *Node) bool { return f.members.Contains(n) }

// Push adds n with the next insertion count.
func (f *frontier) Push(n *Node, fScore float64) {
	heap.Push(&f.entries, frontierEntry{fScore: fScore, count: f.count, node: n})
	f.count++
	f.members.Add(n)
}

// Pop removes the entry with the smallest (f-score, count).
func (f *frontier) Pop() *Node {
	e := heap.Pop(&f.entries).(frontierEntry)
	f.members.Remove(e.node)
	return e.node
}
