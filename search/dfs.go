package search

import "github.com/aneeshsunganahalli/PathVisualiser/grid"

// runDFS is depth-first search: most-recently-added removal.
//
// Deduplication happens on push (a cell already pushed is never pushed
// again) plus a defensive re-check on pop, so no position is ever
// expanded twice. Neighbors are pushed in reverse scan order; the LIFO
// stack then pops them in scan order, preserving the shared neighbor
// priority despite the stack discipline.
func (e *engine) runDFS() error {
	stack := []grid.Position{e.start}
	pushed := map[grid.Position]bool{e.start: true}
	expanded := make(map[grid.Position]bool)
	parent := make(map[grid.Position]grid.Position)
	var buf [4]grid.Position

	e.opts.OnEnqueue(e.start)
	for len(stack) > 0 {
		if err := e.cancelled(); err != nil {
			return err
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if expanded[cur] {
			// defensive re-check; push-time dedup should make this unreachable
			continue
		}
		expanded[cur] = true
		if err := e.expand(cur); err != nil {
			return err
		}
		if cur == e.goal {
			e.finish(true, parent)

			return nil
		}

		nbrs := e.neighbors(cur, buf[:0])
		for i := len(nbrs) - 1; i >= 0; i-- {
			n := nbrs[i]
			if pushed[n] {
				continue
			}
			pushed[n] = true
			parent[n] = cur
			e.opts.OnEnqueue(n)
			stack = append(stack, n)
		}
	}
	e.finish(false, nil)

	return nil
}
