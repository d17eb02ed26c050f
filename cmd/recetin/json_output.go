package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"recetin/internal/recipe"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// recipeSummary is the list --json row.
type recipeSummary struct {
	ID          string `json:"_id"`
	Rev         string `json:"_rev"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients int    `json:"ingredients"`
	Steps       int    `json:"steps"`
	HasImage    bool   `json:"has_image"`
}

func summarize(r *recipe.Recipe) recipeSummary {
	return recipeSummary{
		ID:          r.ID,
		Rev:         r.Rev,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: len(r.Ingredients),
		Steps:       len(r.Steps),
		HasImage:    r.Image != nil,
	}
}
