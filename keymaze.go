// Package keymaze solves the "collect every key with minimum travel"
// problem on 2-D grid mazes: walls, floor, lowercase keys, uppercase doors
// that need the matching key, and an entrance marked '@'.
//
// The grid is first reduced to a sparse key-to-key graph (Maze.Reduce),
// then a Dijkstra search over (position, collected-keys-bitmask) states
// finds the exact minimum (Solve). CollectAllKeysFourAgents handles the
// variant where the entrance is replaced by four agents, one per quadrant.
package keymaze

import "strconv"

// CollectAllKeys returns the minimum number of single-step moves needed to
// collect every key in the maze, starting from the entrance.
func CollectAllKeys(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Solve(m.Reduce(), m.AllKeys())
}

// Part1 is CollectAllKeys with the answer rendered as text.
func Part1(input string) (string, error) {
	n, err := CollectAllKeys(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// Part2 is CollectAllKeysFourAgents with the answer rendered as text.
func Part2(input string) (string, error) {
	n, err := CollectAllKeysFourAgents(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
