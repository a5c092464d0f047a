package search

import "github.com/aneeshsunganahalli/PathVisualiser/grid"

// runBFS is breadth-first search: least-recently-added removal.
//
// A cell is marked visited the moment it is enqueued, so it can never
// be queued twice. With unit edge cost the first dequeue of the goal is
// a shortest path.
func (e *engine) runBFS() error {
	queue := []grid.Position{e.start}
	visited := map[grid.Position]bool{e.start: true}
	parent := make(map[grid.Position]grid.Position)
	var buf [4]grid.Position

	e.opts.OnEnqueue(e.start)
	for len(queue) > 0 {
		if err := e.cancelled(); err != nil {
			return err
		}

		cur := queue[0]
		queue = queue[1:]
		if err := e.expand(cur); err != nil {
			return err
		}
		if cur == e.goal {
			e.finish(true, parent)

			return nil
		}

		for _, n := range e.neighbors(cur, buf[:0]) {
			if visited[n] {
				continue
			}
			visited[n] = true
			parent[n] = cur
			e.opts.OnEnqueue(n)
			queue = append(queue, n)
		}
	}
	e.finish(false, nil)

	return nil
}
