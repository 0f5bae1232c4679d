// Package main provides the digits CLI: train and evaluate MNIST classifiers,
// and inspect IDX files.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const version = "v0.1.0-dev"

// Flags.
const (
	flagConfig      = "config"
	flagData        = "data"
	flagModel       = "model"
	flagHidden1     = "hidden1"
	flagHidden2     = "hidden2"
	flagLR          = "lr"
	flagSeed        = "seed"
	flagPrecision   = "precision"
	flagMaxRecords  = "max-records"
	flagLogEvery    = "log-every"
	flagWorkers     = "workers"
	flagLogLevel    = "log-level"
	flagLogEncoding = "log-encoding"
)

func newApp() *cli.App {
	return &cli.App{
		Name:            "digits",
		Usage:           "train and evaluate handwritten digit classifiers",
		Version:         version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  flagLogEncoding,
				Usage: "log encoding (console, json)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "train",
				Usage: "train a model on the training split and evaluate it on the test split",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagData, Aliases: []string{"d"}, Usage: "dataset `DIR`"},
					&cli.StringFlag{Name: flagModel, Aliases: []string{"m"}, Usage: "model kind (single-layer, two-hidden-layer)"},
					&cli.IntFlag{Name: flagHidden1, Usage: "width of the first hidden layer"},
					&cli.IntFlag{Name: flagHidden2, Usage: "width of the second hidden layer"},
					&cli.Float64Flag{Name: flagLR, Usage: "learning rate"},
					&cli.Int64Flag{Name: flagSeed, Usage: "weight initialization seed"},
					&cli.StringFlag{Name: flagPrecision, Usage: "float32 or float64"},
					&cli.IntFlag{Name: flagMaxRecords, Usage: "stop after `N` training records"},
					&cli.IntFlag{Name: flagLogEvery, Usage: "log throughput every `N` records"},
					&cli.IntFlag{Name: flagWorkers, Usage: "evaluation workers (default: number of CPUs)"},
				},
				Action: trainAction,
			},
			{
				Name:      "inspect",
				Usage:     "print the headers of IDX files",
				ArgsUsage: "[file...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagData, Aliases: []string{"d"}, Usage: "dataset `DIR`"},
				},
				Action: inspectAction,
			},
			{
				Name:  "version",
				Usage: "show version",
				Action: func(c *cli.Context) error {
					fmt.Fprintf(c.App.Writer, "digits %s\n", version)
					fmt.Fprintf(c.App.Writer, "cpu: %s\n", cpuSummary())
					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
