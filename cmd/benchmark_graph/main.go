package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/delaneyj/pozitron/reactive"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	repeatsKey = "repeats"
	seedKey    = "seed"
)

// shape describes one layered graph: width signals feed depth rows of memos,
// each memo reading fanIn neighbours of the row above.
type shape struct {
	label   string
	width   int
	depth   int
	fanIn   int
	static  float64 // share of memos with a fixed source list
	read    float64 // share of leaves read after every write
	updates int
}

var shapes = []shape{
	{label: "simple component", width: 10, depth: 5, fanIn: 2, static: 1, read: 0.2, updates: 600_000},
	{label: "dynamic component", width: 10, depth: 10, fanIn: 6, static: 0.75, read: 0.2, updates: 15_000},
	{label: "large web app", width: 1000, depth: 12, fanIn: 4, static: 0.95, read: 1, updates: 7_000},
	{label: "wide dense", width: 1000, depth: 5, fanIn: 25, static: 1, read: 1, updates: 3_000},
	{label: "deep", width: 5, depth: 500, fanIn: 3, static: 1, read: 1, updates: 500},
	{label: "very dynamic", width: 100, depth: 15, fanIn: 6, static: 0.5, read: 1, updates: 2_000},
}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_graph",
		Usage: "Run layered static/dynamic memo graphs and report update rates",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Timed runs per shape after one warm-up run; the fastest is reported",
				Value: 5,
			},
			&cli.IntFlag{
				Name:  seedKey,
				Usage: "Seed for picking static memos and read leaves",
				Value: 0,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type measurement struct {
	elapsed     time.Duration
	recomputes  int64
	checksum    int
	edges       int
	fingerprint uint64
}

func run(ctx context.Context, cmd *cli.Command) error {
	repeats := int(cmd.Uint(repeatsKey))
	seed := cmd.Int(seedKey)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"shape", "size", "fan-in", "static", "read", "updates", "best", "recomputes/ms", "edges", "checksum", "topology"})

	for _, s := range shapes {
		log.Printf("running %q", s.label)
		var best *measurement
		for i := 0; i <= repeats; i++ {
			m, err := measure(s, seed)
			if err != nil {
				return fmt.Errorf("%s: %w", s.label, err)
			}
			if i == 0 {
				continue // warm-up
			}
			if best == nil || m.elapsed < best.elapsed {
				best = m
			}
		}
		if best == nil {
			return fmt.Errorf("%s: %s must be at least 1", s.label, repeatsKey)
		}

		perMs := float64(best.recomputes) / (float64(best.elapsed) / float64(time.Millisecond))
		table.Append([]string{
			s.label,
			fmt.Sprintf("%dx%d", s.width, s.depth),
			fmt.Sprint(s.fanIn),
			fmt.Sprintf("%.0f%%", 100*s.static),
			fmt.Sprintf("%.0f%%", 100*s.read),
			humanize.Comma(int64(s.updates)),
			best.elapsed.String(),
			humanize.Comma(int64(perMs)),
			humanize.Comma(int64(best.edges)),
			humanize.Comma(int64(best.checksum)),
			fmt.Sprintf("%016x", best.fingerprint),
		})
	}
	table.Render()
	return nil
}

// measure builds a fresh graph for s and times s.updates single-signal writes,
// each followed by reading the chosen leaves.
func measure(s shape, seed int64) (*measurement, error) {
	rng := rand.New(rand.NewSource(seed))
	rs := reactive.NewSystem()
	var recomputes int64

	getters := make([]reactive.Getter[int], s.width)
	setters := make([]reactive.Setter[int], s.width)
	for i := range getters {
		getters[i], setters[i] = reactive.CreateSignal(rs, i)
	}

	row := getters
	for d := 1; d < s.depth; d++ {
		next := make([]reactive.Getter[int], s.width)
		for col := range next {
			inputs := make([]reactive.Getter[int], s.fanIn)
			for k := range inputs {
				inputs[k] = row[(col+k)%len(row)]
			}
			if rng.Float64() < s.static {
				next[col] = reactive.CreateMemo(rs, sumAll(inputs, &recomputes), reactive.Static())
			} else {
				next[col] = reactive.CreateMemo(rs, sumSkipping(inputs, &recomputes))
			}
		}
		row = next
	}

	leaves := make([]reactive.Getter[int], 0, len(row))
	for _, i := range rng.Perm(len(row)) {
		if float64(len(leaves)) >= float64(len(row))*s.read {
			break
		}
		leaves = append(leaves, row[i])
	}

	start := time.Now()
	for i := 0; i < s.updates; i++ {
		col := i % s.width
		setters[col](i + col)
		for _, leaf := range leaves {
			leaf()
		}
	}
	elapsed := time.Since(start)

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	m := &measurement{
		elapsed:     elapsed,
		recomputes:  recomputes,
		edges:       rs.Stats().Edges,
		fingerprint: rs.Fingerprint(),
	}
	for _, leaf := range leaves {
		m.checksum += leaf()
	}
	return m, nil
}

func sumAll(inputs []reactive.Getter[int], count *int64) func() int {
	return func() int {
		*count++
		sum := 0
		for _, in := range inputs {
			sum += in()
		}
		return sum
	}
}

// sumSkipping always reads the first input; when that value is odd it leaves
// out one of the others, so the source list changes from run to run.
func sumSkipping(inputs []reactive.Getter[int], count *int64) func() int {
	head, rest := inputs[0], inputs[1:]
	return func() int {
		*count++
		sum := head()
		skip := -1
		if sum%2 == 1 && len(rest) > 0 {
			skip = sum % len(rest)
		}
		for i, in := range rest {
			if i != skip {
				sum += in()
			}
		}
		return sum
	}
}
