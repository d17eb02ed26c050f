package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"recetin/internal/recipe"
	"recetin/internal/textutil"
)

// renderRecipeTable lays out the list view. Descriptions are shortened to
// previewLength runes; counts are right aligned.
func renderRecipeTable(recipes []*recipe.Recipe, previewLength int, colorize bool) string {
	tw := table.NewWriter()
	style := table.StyleRounded
	if colorize {
		style.Color.Header = text.Colors{text.Bold, text.FgCyan}
	}
	tw.SetStyle(style)

	tw.AppendHeader(table.Row{"ID", "Title", "Description", "Ingredients", "Steps"})
	for _, r := range recipes {
		tw.AppendRow(table.Row{
			r.ID,
			r.Title,
			textutil.Preview(r.Description, previewLength),
			len(r.Ingredients),
			len(r.Steps),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Ingredients", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Steps", Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
