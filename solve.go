package keymaze

// state is a node in the implicit search graph: where the agent stands and
// which keys it holds. The collected set includes the key the agent stands
// on, except for the synthetic start state.
type state struct {
	at        Key
	collected KeySet
}

// Solve returns the minimum total steps to collect every key in all,
// starting from the entrance with nothing collected. It runs Dijkstra over
// (key, collected-set) states generated on demand from adj, keeping a
// best-cost table as the sole dominance check. Returns ErrUnreachable if
// the queue empties before every key is held.
func Solve(adj Adjacency, all KeySet) (int, error) {
	best := make(map[state]int)
	// Ties on steps are broken by (collected, at) so the pop order is a
	// total order and runs are deterministic.
	pq := MinQueue(func(a, b state) bool {
		if a.collected != b.collected {
			return a.collected < b.collected
		}
		return a.at < b.at
	})
	pq.Push(state{at: Start}, 0)

	for pq.Len() > 0 {
		cur, steps := pq.Pop()
		if cur.collected == all {
			return steps, nil
		}
		for _, e := range adj[cur.at] {
			if !cur.collected.ContainsAll(e.Needs) {
				continue
			}
			next := state{
				at:        e.Target,
				collected: cur.collected.Plus(e.Target),
			}
			nsteps := steps + e.Steps
			if b, ok := best[next]; ok && nsteps >= b {
				continue
			}
			best[next] = nsteps
			pq.Push(next, nsteps)
		}
	}
	return 0, ErrUnreachable
}
