package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/born-ml/digits/internal/config"
	"github.com/born-ml/digits/internal/idx"
)

// inspectAction prints the header of every file named on the command line,
// or of the four configured dataset files when none are given.
func inspectAction(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		cfg := config.Default()
		if path := c.String(flagConfig); path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		cfg.ApplyOverrides(config.Overrides{DataDir: c.String(flagData)})
		trainImages, trainLabels := cfg.TrainPaths()
		testImages, testLabels := cfg.TestPaths()
		paths = []string{trainImages, trainLabels, testImages, testLabels}
	}

	headers := make([]idx.Header, len(paths))
	for i, path := range paths {
		h, err := idx.ReadHeaderFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		headers[i] = h
	}
	fmt.Fprintln(c.App.Writer, renderHeaders(paths, headers))
	return nil
}

func renderHeaders(paths []string, headers []idx.Header) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"File", "Type", "Rank", "Items", "Sizes", "Item bytes"})
	for i, h := range headers {
		t.AppendRow(table.Row{paths[i], h.Type.String(), h.Dimensions, h.ItemCount, fmt.Sprint(h.Sizes), h.ItemSize()})
	}
	return t.Render()
}
