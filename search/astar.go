package search

import "github.com/aneeshsunganahalli/PathVisualiser/grid"

// runAStar is best-first search with f = g + weight·h, covering both
// A* (weight 1) and Weighted A* (weight 2).
//
// The open set is the (f, h, seq)-ordered heap from open_list.go.
// Closed-set membership is checked on pop; when a strictly cheaper g is
// found for a node still open, decrease-key updates it in place. With
// weight 1 and the Manhattan heuristic — admissible and consistent on a
// 4-connected unit-cost grid — the first pop of the goal is optimal;
// with weight 2 the path is at most twice the shortest.
func (e *engine) runAStar(weight int) error {
	open := &openList{}
	inOpen := make(map[grid.Position]*frontierNode)
	closed := make(map[grid.Position]bool)
	parent := make(map[grid.Position]grid.Position)
	var buf [4]grid.Position

	h0 := grid.Manhattan(e.start, e.goal)
	root := &frontierNode{pos: e.start, g: 0, h: h0, f: weight * h0}
	open.add(root)
	inOpen[e.start] = root
	e.opts.OnEnqueue(e.start)

	for open.Len() > 0 {
		if err := e.cancelled(); err != nil {
			return err
		}

		cur := open.next()
		delete(inOpen, cur.pos)
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true
		if err := e.expand(cur.pos); err != nil {
			return err
		}
		if cur.pos == e.goal {
			e.finish(true, parent)

			return nil
		}

		for _, n := range e.neighbors(cur.pos, buf[:0]) {
			if closed[n] {
				continue
			}
			tentativeG := cur.g + 1
			if node, ok := inOpen[n]; ok {
				if tentativeG < node.g {
					// decrease-key: cheaper route to an open node
					node.g = tentativeG
					node.f = tentativeG + weight*node.h
					parent[n] = cur.pos
					open.update(node)
				}

				continue
			}
			h := grid.Manhattan(n, e.goal)
			node := &frontierNode{pos: n, g: tentativeG, h: h, f: tentativeG + weight*h}
			parent[n] = cur.pos
			open.add(node)
			inOpen[n] = node
			e.opts.OnEnqueue(n)
		}
	}
	e.finish(false, nil)

	return nil
}
