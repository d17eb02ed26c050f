package recipe

import (
	"fmt"
	"strings"
)

// Stringify renders r as text. With export set, every line keeps its sigil and
// the result can be fed back to Parse. Otherwise the sigils are stripped to
// produce plain text for reading or sharing.
func Stringify(r Recipe, export bool) string {
	lines := make([]string, 0, 3+len(r.Ingredients)+len(r.Steps))
	lines = append(lines,
		SigilTitle+strings.TrimSpace(continueLines(r.Title, SigilTitle)),
		SigilDescription+" "+strings.TrimSpace(continueLines(r.Description, SigilDescription+" ")),
		SigilNotes+" "+continueLines(r.Notes, SigilNotes+" "),
	)
	for _, ingredient := range r.Ingredients {
		lines = append(lines, SigilIngredient+" "+stringifyIngredient(ingredient))
	}
	for _, step := range r.Steps {
		lines = append(lines, stringifyStep(step))
	}

	text := strings.Join(lines, "\n")
	if !export {
		return StripSigils(text)
	}
	return text
}

// stringifyIngredient writes "name ; amount, unit" followed by one "+" line
// per replacement. Nested replacements recurse and reuse the "+" sigil, so
// depth is not encoded.
func stringifyIngredient(ingredient Ingredient) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ; %s, %s",
		strings.TrimSpace(ingredient.Name),
		strings.TrimSpace(ingredient.Amount),
		strings.TrimSpace(ingredient.Unit),
	)
	for _, replacement := range ingredient.Replacements {
		b.WriteString("\n" + SigilReplacement + " ")
		b.WriteString(stringifyIngredient(replacement))
	}
	return b.String()
}

func stringifyStep(step Step) string {
	directions := strings.TrimSpace(continueLines(step.Directions, SigilContinuation+" "))
	return fmt.Sprintf("%s %d %s %s", SigilStep, step.Order+1, stepSeparator, directions)
}
