// Command example reads a key maze from a file (or stdin) and prints the
// minimum steps to collect every key, for the single-agent and four-agent
// variants.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/maisem/keymaze"
)

var (
	flagPart = flag.Int("part", 0, "part to run (1 or 2; 0 runs both)")
	flagSeq  = flag.Bool("seq", false, "solve the four quadrants sequentially")
)

func main() {
	flag.Parse()
	input := readInput()

	if *flagPart != 2 {
		run("part 1", func() (int, error) {
			return keymaze.CollectAllKeys(input)
		})
	}
	if *flagPart != 1 {
		solve := keymaze.CollectAllKeysFourAgents
		if *flagSeq {
			solve = fourAgentsSeq
		}
		run("part 2", func() (int, error) {
			return solve(input)
		})
	}
}

func readInput() string {
	r := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}
	return string(keymaze.MustGet(io.ReadAll(r)))
}

func run(name string, f func() (int, error)) {
	t0 := time.Now()
	n, err := f()
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	fmt.Printf("%s: %d (took %v)\n", name, n, time.Since(t0).Round(time.Microsecond))
}

// fourAgentsSeq is the one-quadrant-at-a-time version of
// keymaze.CollectAllKeysFourAgents.
func fourAgentsSeq(input string) (int, error) {
	quads, err := keymaze.SplitQuadrants(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, q := range quads {
		n, err := keymaze.CollectAllKeys(q)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
