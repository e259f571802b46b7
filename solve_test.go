package keymaze

import (
	"errors"
	"testing"
)

func TestCollectAllKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "no keys",
			input: "###\n#@#\n###",
			want:  0,
		},
		{
			name:  "single key",
			input: "#####\n#@.a#\n#####",
			want:  2,
		},
		{
			name:  "single key around a corner",
			input: "#####\n#@..#\n#.#a#\n#####",
			want:  3,
		},
		{
			name:  "one door",
			input: "#########\n#b.A.@.a#\n#########",
			want:  8,
		},
		{
			name: "two corridors",
			input: "########################\n" +
				"#f.D.E.e.C.b.A.@.a.B.c.#\n" +
				"######################.#\n" +
				"#d.....................#\n" +
				"########################",
			want: 86,
		},
		{
			name: "doors in sequence",
			input: "########################\n" +
				"#...............b.C.D.f#\n" +
				"#.######################\n" +
				"#.....@.a.B.c.d.A.e.F.g#\n" +
				"########################",
			want: 132,
		},
		{
			name: "sixteen keys",
			input: "#################\n" +
				"#i.G..c...e..H.p#\n" +
				"########.########\n" +
				"#j.A..b...f..D.o#\n" +
				"########@########\n" +
				"#k.E..a...g..B.n#\n" +
				"########.########\n" +
				"#l.F..d...h..C.m#\n" +
				"#################",
			want: 136,
		},
		{
			name: "key cul-de-sacs",
			input: "########################\n" +
				"#@..............ac.GI.b#\n" +
				"###d#e#f################\n" +
				"###A#B#C################\n" +
				"###g#h#i################\n" +
				"########################",
			want: 81,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectAllKeys(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("CollectAllKeys = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCollectAllKeysUnreachable(t *testing.T) {
	tests := []string{
		// Key walled off entirely.
		"#######\n#@.#.a#\n#######",
		// Door whose key sits behind the door itself.
		"#######\n#@.Aa.#\n#######",
	}
	for _, in := range tests {
		if _, err := CollectAllKeys(in); !errors.Is(err, ErrUnreachable) {
			t.Errorf("CollectAllKeys(%q) err = %v, want ErrUnreachable", in, err)
		}
	}
}

func TestCollectAllKeysInvalidEntry(t *testing.T) {
	if _, err := CollectAllKeys("###\n#!#\n###"); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("err = %v, want ErrInvalidEntry", err)
	}
}

// Adding a door (with its key present) along the only route can only keep
// the answer or raise it; a door with no matching key changes nothing.
func TestDoorMonotonicity(t *testing.T) {
	const (
		base      = "##########\n#a...@..b#\n##########"
		withDoor  = "##########\n#a...@.Ab#\n##########"
		inertDoor = "##########\n#a...@.Cb#\n##########"
	)
	got := MustGet(CollectAllKeys(base))
	if want := 10; got != want {
		t.Fatalf("base = %d, want %d", got, want)
	}
	if gotDoor := MustGet(CollectAllKeys(withDoor)); gotDoor < got {
		t.Errorf("with door = %d, less than base %d", gotDoor, got)
	} else if want := 11; gotDoor != want {
		t.Errorf("with door = %d, want %d", gotDoor, want)
	}
	if gotInert := MustGet(CollectAllKeys(inertDoor)); gotInert != got {
		t.Errorf("with inert door = %d, want base %d", gotInert, got)
	}
}

// Solving is a pure function of the input: repeated runs agree, and the
// parsed maze is left untouched.
func TestSolveIdempotent(t *testing.T) {
	const input = "#########\n#b.A.@.a#\n#########"
	m := MustGet(Parse(input))
	h0 := m.Hash()

	first := MustGet(Solve(m.Reduce(), m.AllKeys()))
	second := MustGet(Solve(m.Reduce(), m.AllKeys()))
	if first != second {
		t.Errorf("repeated solves disagree: %d then %d", first, second)
	}
	if m.Hash() != h0 {
		t.Error("solving mutated the maze grid")
	}
}

func TestSolveSourceWithNoEdges(t *testing.T) {
	// The reduced graph can legitimately have a key with no outgoing
	// edges; the solver must treat that as a dead end, not a crash.
	adj := Adjacency{
		Start: {{Target: 'a', Steps: 3}},
		'a':   nil,
	}
	if _, err := Solve(adj, Key('a').Bit()|Key('b').Bit()); !errors.Is(err, ErrUnreachable) {
		t.Errorf("err = %v, want ErrUnreachable", err)
	}
	if got := MustGet(Solve(adj, Key('a').Bit())); got != 3 {
		t.Errorf("steps = %d, want 3", got)
	}
}
