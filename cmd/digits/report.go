package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/born-ml/digits/internal/trainer"
)

func renderSummary(run, kind string, trained int, r trainer.Report) string {
	t := table.NewWriter()
	t.SetTitle("Evaluation")
	t.AppendRows([]table.Row{
		{"Run", run},
		{"Model", kind},
		{"Trained on", trained},
		{"Test samples", r.Samples},
		{"Correct", r.Correct},
		{"Accuracy", fmt.Sprintf("%.2f%%", 100*r.Accuracy)},
		{"Mean cross-entropy", fmt.Sprintf("%.4f", r.MeanLoss)},
	})
	return t.Render()
}

// renderConfusion renders one row per actual class with its per-class
// accuracy in the last column.
func renderConfusion(r trainer.Report) string {
	t := table.NewWriter()
	t.SetTitle("Confusion (rows: actual, columns: predicted)")

	header := table.Row{""}
	for c := range r.Confusion {
		header = append(header, strconv.Itoa(c))
	}
	header = append(header, "Accuracy")
	t.AppendHeader(header)

	for actual, counts := range r.Confusion {
		row := table.Row{strconv.Itoa(actual)}
		for _, n := range counts {
			row = append(row, n)
		}
		row = append(row, fmt.Sprintf("%.1f%%", 100*r.PerClass[actual]))
		t.AppendRow(row)
	}
	return t.Render()
}
