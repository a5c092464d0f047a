package search

import (
	"container/heap"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
)

// frontierNode is one open-set entry for A*/Weighted A*: position,
// cost-from-start g, heuristic h, and priority f = g + ε·h. seq is the
// insertion sequence number; it is the third comparison key, which makes
// the heap order exactly the stable (f, then h) sort the tie-break rule
// calls for.
type frontierNode struct {
	pos     grid.Position
	g, h, f int
	seq     int
	index   int // heap slot, maintained by openList.Swap
}

// openList is a binary min-heap of frontier nodes ordered by
// (f, h, seq). It supports decrease-key in place via update.
type openList struct {
	nodes []*frontierNode
	bySeq int // monotonically increasing insertion counter
}

func (o *openList) Len() int { return len(o.nodes) }

func (o *openList) Less(i, j int) bool {
	a, b := o.nodes[i], o.nodes[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

func (o *openList) Swap(i, j int) {
	o.nodes[i], o.nodes[j] = o.nodes[j], o.nodes[i]
	o.nodes[i].index = i
	o.nodes[j].index = j
}

func (o *openList) Push(x any) {
	n := x.(*frontierNode)
	n.index = len(o.nodes)
	o.nodes = append(o.nodes, n)
}

func (o *openList) Pop() any {
	old := o.nodes
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	o.nodes = old[:n-1]

	return item
}

// add inserts a fresh node and stamps its insertion sequence.
func (o *openList) add(n *frontierNode) {
	n.seq = o.bySeq
	o.bySeq++
	heap.Push(o, n)
}

// update applies decrease-key: the node's g and f were lowered in
// place, so its heap slot must be fixed.
func (o *openList) update(n *frontierNode) {
	heap.Fix(o, n.index)
}

// next removes and returns the minimum node.
func (o *openList) next() *frontierNode {
	return heap.Pop(o).(*frontierNode)
}
