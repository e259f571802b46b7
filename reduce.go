package keymaze

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Edge is a reduced path from one key (or the entrance) to another key:
// the number of steps along the shortest route, and the set of keys needed
// to unlock every door on it.
type Edge struct {
	Target Key
	Steps  int
	Needs  KeySet
}

// Adjacency maps each key (and Start) to the reduced edges leaving it.
type Adjacency map[Key][]Edge

// frontier is one BFS queue entry: a position, the doors passed to get
// there, and the steps taken. Each branch carries its own Needs value, so
// sibling branches never see each other's doors.
type frontier struct {
	at    Pt
	needs KeySet
	steps int
}

// Reduce collapses the cell grid into a key-to-key graph. For every key
// position and the entrance it runs one BFS over the 4-connected grid,
// emitting an edge for each reachable key annotated with the exact step
// distance and the doors crossed en route. Keys found along a route do not
// block it and do not extend its Needs set.
func (m *Maze) Reduce() Adjacency {
	adj := make(Adjacency, len(m.keys))
	sources := maps.Keys(m.keys)
	slices.Sort(sources)
	for _, src := range sources {
		adj[src] = m.pathsFrom(m.keys[src])
	}
	return adj
}

func (m *Maze) pathsFrom(src Pt) []Edge {
	var edges []Edge
	seen := map[Pt]bool{src: true}
	q := NewQueue(frontier{at: src})
	q.While(func(cur frontier) bool {
		cur.at.ForImmediateNeighbors(func(n Pt) bool {
			c, ok := m.grid.AtOk(n)
			if !ok || !c.Walkable() || seen[n] {
				return true
			}
			seen[n] = true
			next := frontier{at: n, needs: cur.needs, steps: cur.steps + 1}
			switch {
			case c.IsDoor():
				// A door whose key is absent from this maze can
				// never be locked for good, so it costs nothing.
				if m.all.Contains(c.DoorKey()) {
					next.needs = next.needs.Plus(c.DoorKey())
				}
			case c.IsKey():
				edges = append(edges, Edge{
					Target: Key(c),
					Steps:  next.steps,
					Needs:  next.needs,
				})
			}
			q.Push(next)
			return true
		})
		return true
	})
	return edges
}
