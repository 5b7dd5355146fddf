package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/pozitron/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "count"
	outKey      = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed SubscribeN helpers for the reactive package",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest number of getters to generate a Subscribe variant for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write",
				Value: "reactive/subscribe_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for reactive started")
	defer func() {
		log.Printf("Codegen for reactive finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	if maxArity < 2 {
		return fmt.Errorf("count must be at least 2, got %d", maxArity)
	}
	out := cmd.String(outKey)
	log.Printf("Subscribe2..Subscribe%d -> %s", maxArity, out)

	contents, err := format.Source([]byte(templates.SubscribeGen(maxArity)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}

	return nil
}
