package recipe_test

import (
	"testing"

	"recetin/internal/recipe"
)

func TestSortedStepsOrdersByOrder(t *testing.T) {
	r := recipe.Recipe{Steps: []recipe.Step{
		{Order: 2, Directions: "c"},
		{Order: 0, Directions: "a"},
		{Order: 1, Directions: "b"},
	}}
	got := r.SortedSteps()
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Directions != want {
			t.Fatalf("step %d: got %q want %q", i, got[i].Directions, want)
		}
	}
	if r.Steps[0].Directions != "c" {
		t.Fatal("SortedSteps must not reorder the receiver")
	}
}

func TestEqualIgnoresRevisionAndEmptySlices(t *testing.T) {
	a := recipe.Recipe{
		ID:          "recetin:Soup:1",
		Rev:         "1-abc",
		Title:       "Soup",
		Ingredients: []recipe.Ingredient{{Name: "Leek", Amount: "1", Unit: "piece"}},
	}
	b := a
	b.Rev = "2-def"
	b.Ingredients = []recipe.Ingredient{{Name: "Leek", Amount: "1", Unit: "piece", Replacements: []recipe.Ingredient{}}}
	b.Steps = []recipe.Step{}
	if !recipe.Equal(a, b) {
		t.Fatal("expected recipes to compare equal")
	}

	b.Notes = "changed"
	if recipe.Equal(a, b) {
		t.Fatal("expected notes change to be detected")
	}

	c := a
	c.Image = &recipe.Image{ContentType: "image/png", Data: []byte{1}}
	if recipe.Equal(a, c) {
		t.Fatal("expected image change to be detected")
	}
}
