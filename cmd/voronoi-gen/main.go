// Command voronoi-gen generates random sites in a box and prints the
// computed Voronoi diagram as JSON, mirroring the teacher library's
// cmd/genlinesegments random-input generator.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/wesleyclements/voronoi"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoi-gen",
		Usage:     "Generates a Voronoi diagram for random sites and outputs results to stdout as JSON",
		UsageText: "voronoi-gen --number <value> --width <value> --height <value> --seed <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of sites to generate",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(n int64) error {
					if n <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "width",
				Usage:    "The width of the bounding box",
				Value:    100,
				OnlyOnce: true,
				Validator: func(w int64) error {
					if w <= 0 {
						return fmt.Errorf("width must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "height",
				Usage:    "The height of the bounding box",
				Value:    100,
				OnlyOnce: true,
				Validator: func(h int64) error {
					if h <= 0 {
						return fmt.Errorf("height must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "seed",
				Usage:    "Seed for the random site generator (0 picks a random seed)",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/wesleyclements"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	width := float64(cmd.Int("width"))
	height := float64(cmd.Int("height"))
	n := cmd.Int("number")
	seed := cmd.Int("seed")

	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		s := uint64(seed)
		src = rand.NewPCG(s, s^0x9e3779b97f4a7c15)
	}
	rng := rand.New(src)

	points := make([]voronoi.Point, n)
	for i := int64(0); i < n; i++ {
		points[i] = voronoi.Point{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		}
	}

	diagram, err := voronoi.Compute(points, width, height)
	if err != nil {
		return err
	}

	b, err := json.Marshal(diagram)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
