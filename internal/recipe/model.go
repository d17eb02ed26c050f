package recipe

import (
	"bytes"
	"slices"
	"time"
)

// Ingredient is a single ingredient plus any substitutes. Replacements are
// themselves ingredients and may nest further.
type Ingredient struct {
	Name         string       `json:"name"`
	Amount       string       `json:"amount"`
	Unit         string       `json:"unit"`
	Replacements []Ingredient `json:"replacements,omitempty"`
}

// Step is one instruction. Order is authoritative; the slice position of a
// step inside Recipe.Steps carries no meaning.
type Step struct {
	Order      int    `json:"order"`
	Directions string `json:"directions"`
}

// Image is the optional picture attached to a recipe document.
type Image struct {
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Recipe is a stored recipe document.
type Recipe struct {
	ID          string       `json:"_id"`
	Rev         string       `json:"_rev,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Notes       string       `json:"notes,omitempty"`
	Image       *Image       `json:"image,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// SaveProps is the subset of a recipe produced by Parse and accepted by the
// store when creating or replacing a document.
type SaveProps struct {
	ID          string       `json:"_id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
}

// ToRecipe converts the props into a recipe with no notes, image, or revision.
func (p SaveProps) ToRecipe() Recipe {
	return Recipe{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Ingredients: p.Ingredients,
		Steps:       p.Steps,
	}
}

// SortedSteps returns a copy of the steps ordered by Order. Ties keep their
// slice order.
func (r Recipe) SortedSteps() []Step {
	out := slices.Clone(r.Steps)
	slices.SortStableFunc(out, func(a, b Step) int { return a.Order - b.Order })
	return out
}

// Equal reports whether two recipes carry the same user-editable content.
// Revision and timestamps are ignored; nil and empty slices compare equal.
func Equal(a, b Recipe) bool {
	if a.ID != b.ID || a.Title != b.Title || a.Description != b.Description || a.Notes != b.Notes {
		return false
	}
	if !imagesEqual(a.Image, b.Image) {
		return false
	}
	if !ingredientsEqual(a.Ingredients, b.Ingredients) {
		return false
	}
	return slices.Equal(a.Steps, b.Steps)
}

func imagesEqual(a, b *Image) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ContentType == b.ContentType && bytes.Equal(a.Data, b.Data)
}

func ingredientsEqual(a, b []Ingredient) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Amount != b[i].Amount || a[i].Unit != b[i].Unit {
			return false
		}
		if !ingredientsEqual(a[i].Replacements, b[i].Replacements) {
			return false
		}
	}
	return true
}
