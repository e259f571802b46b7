package keymaze

import (
	"errors"
	"fmt"
)

// SplitQuadrants rewrites the 3x3 region around the single entrance so its
// center and edge midpoints become walls and its corners become four
// entrances, then splits the grid into four sub-grids along the center row
// and column. The center row and column go to the top/left sub-grids; the
// bottom/right sub-grids simply end at the cut, and anything beyond a
// sub-grid's edge reads as a wall.
func SplitQuadrants(input string) ([4]string, error) {
	var quads [4]string
	m, err := Parse(input)
	if err != nil {
		return quads, err
	}
	center, ok := m.keys[Start]
	if !ok {
		return quads, errors.New("no entrance marker")
	}
	size := m.grid.Size()
	if center.X < 1 || center.Y < 1 || center.X >= size.X-1 || center.Y >= size.Y-1 {
		return quads, fmt.Errorf("entrance %v too close to the edge to split", center)
	}

	rows := make([][]byte, size.Y)
	for y := range rows {
		rows[y] = make([]byte, size.X)
		for x := range rows[y] {
			c := m.grid.At(Pt{x, y})
			if c == 0 {
				c = Wall
			}
			rows[y][x] = byte(c)
		}
	}
	rows[center.Y][center.X] = '#'
	for _, d := range [4]Pt{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		rows[center.Y+d.Y][center.X+d.X] = '#'
	}
	for _, d := range [4]Pt{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		rows[center.Y+d.Y][center.X+d.X] = '@'
	}

	for y, row := range rows {
		i := 0
		if y > center.Y {
			i = 2
		}
		left, right := row[:center.X+1], row[center.X+1:]
		quads[i] += string(left) + "\n"
		quads[i+1] += string(right) + "\n"
	}
	return quads, nil
}

// CollectAllKeysFourAgents solves the four-agent variant: the grid is
// split into four independent quadrants per SplitQuadrants and the four
// minimum step counts are summed. Doors whose keys sit in another quadrant
// are inert there, which is what lets each quadrant be solved on its own.
// The four solves share nothing and run concurrently.
func CollectAllKeysFourAgents(input string) (int, error) {
	quads, err := SplitQuadrants(input)
	if err != nil {
		return 0, err
	}
	type result struct {
		steps int
		err   error
	}
	total := 0
	for _, r := range Parallel(quads[:], func(q string) result {
		n, err := CollectAllKeys(q)
		return result{n, err}
	}) {
		if r.err != nil {
			return 0, r.err
		}
		total += r.steps
	}
	return total, nil
}
