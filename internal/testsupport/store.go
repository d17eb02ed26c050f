package testsupport

import (
	"context"
	"testing"

	"recetin/internal/config"
	"recetin/internal/recipe"
	"recetin/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SaveRecipe stores a new recipe for tests using the provided store.
func SaveRecipe(t testing.TB, st *store.Store, r recipe.Recipe) *recipe.Recipe {
	t.Helper()

	saved, err := st.Save(context.Background(), &r)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return saved
}

// SampleRecipe returns a small recipe with nested replacements and two steps.
func SampleRecipe(title string) recipe.Recipe {
	return recipe.Recipe{
		Title:       title,
		Description: "Weeknight dinner",
		Ingredients: []recipe.Ingredient{
			{Name: "Flour", Amount: "2", Unit: "cups", Replacements: []recipe.Ingredient{
				{Name: "Rice flour", Amount: "2", Unit: "cups", Replacements: []recipe.Ingredient{}},
			}},
			{Name: "Salt", Amount: "1", Unit: "pinch", Replacements: []recipe.Ingredient{}},
		},
		Steps: []recipe.Step{
			{Order: 0, Directions: "Mix"},
			{Order: 1, Directions: "Bake"},
		},
	}
}
