package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/pozitron/reactive"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
	batchedKey = "batched"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure write propagation through W chains of H memos, each ending in an effect",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes per configuration",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
			&cli.BoolFlag{
				Name:  batchedKey,
				Usage: "Also run every configuration with two writes per batch",
				Value: true,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	log.Printf("warming up")
	if err := benchmarkPropagate(iters, false, false); err != nil {
		return err
	}
	if err := benchmarkPropagate(iters, false, true); err != nil {
		return err
	}
	if cmd.Bool(batchedKey) {
		return benchmarkPropagate(iters, true, true)
	}
	return nil
}

func addOne(get reactive.Getter[int]) func() int {
	return func() int {
		return get() + 1
	}
}

func benchmarkPropagate(iters int, batched, shouldRender bool) error {
	tbl := table.NewWriter()
	if batched {
		tbl.SetTitle("Signals (batched writes)")
	} else {
		tbl.SetTitle("Signals")
	}
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "effect runs"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := reactive.NewSystem()
			src, setSrc := reactive.CreateSignal(rs, 1)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					last = reactive.CreateMemo(rs, addOne(last))
				}
				tail := last
				reactive.CreateEffect(rs, func() error {
					tail()
					return nil
				})
			}

			before := rs.Stats().EffectRuns
			for i := 0; i < iters; i++ {
				start := time.Now()
				if batched {
					rs.Batch(func() {
						setSrc(src() + 1)
						setSrc(src() + 1)
					})
				} else {
					setSrc(src() + 1)
				}
				tach.AddTime(time.Since(start))
			}
			if err := rs.Validate(); err != nil {
				return fmt.Errorf("propagate %d * %d: %w", w, h, err)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					rs.Stats().EffectRuns - before,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}
