package recipe

import (
	"strconv"
	"strings"
)

// maxStepOrder bounds the order a step header may declare so a single line
// cannot force a huge fragment table.
const maxStepOrder = 1000

// ingredientGroup is an ingredient line plus the replacement lines that
// followed it. Replacement lines do not encode depth, so they stay flat.
type ingredientGroup struct {
	head         Ingredient
	replacements []Ingredient
}

// parseState is the accumulator folded over the input lines.
type parseState struct {
	title       string
	description string
	groups      []ingredientGroup
	fragments   []string
}

// Parse folds export text into SaveProps.
//
// Title and description lines are concatenated and trimmed. Each "~" line
// starts a new ingredient and "+" lines attach to the most recent one. A ".-"
// header declares a step at its 1-based order and replaces whatever was held
// at that position; ".~" lines append to the last step slot without a
// separator. Notes lines are ignored, as are lines without a sigil.
//
// Malformed step orders and ingredient triples are reported as a *LineError
// wrapping ErrMalformedStepOrder or ErrMalformedIngredientLine.
func Parse(text string) (SaveProps, error) {
	var st parseState
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if err := st.consume(line); err != nil {
			return SaveProps{}, &LineError{Line: i + 1, Text: line, Err: err}
		}
	}
	return st.result(), nil
}

func (st *parseState) consume(line string) error {
	sigil, rest := splitSigil(line)
	switch sigil {
	case SigilTitle:
		st.title += rest
	case SigilDescription:
		st.description += rest
	case SigilIngredient:
		ingredient, err := parseTriple(rest)
		if err != nil {
			return err
		}
		st.groups = append(st.groups, ingredientGroup{head: ingredient})
	case SigilReplacement:
		if len(st.groups) == 0 {
			return nil
		}
		replacement, err := parseTriple(rest)
		if err != nil {
			return err
		}
		last := &st.groups[len(st.groups)-1]
		last.replacements = append(last.replacements, replacement)
	case SigilStep:
		return st.declareStep(rest)
	case SigilContinuation:
		if len(st.fragments) == 0 {
			return nil
		}
		st.fragments[len(st.fragments)-1] += strings.TrimPrefix(rest, " ")
	}
	return nil
}

func (st *parseState) declareStep(header string) error {
	orderText, directions, _ := strings.Cut(strings.TrimLeft(header, " \t"), stepSeparator)
	order, err := strconv.Atoi(strings.TrimSpace(orderText))
	if err != nil || order < 1 || order > maxStepOrder {
		return ErrMalformedStepOrder
	}
	index := order - 1
	for len(st.fragments) <= index {
		st.fragments = append(st.fragments, "")
	}
	st.fragments[index] = strings.TrimSpace(directions)
	return nil
}

func (st *parseState) result() SaveProps {
	ingredients := make([]Ingredient, 0, len(st.groups))
	for _, group := range st.groups {
		ingredient := group.head
		ingredient.Replacements = make([]Ingredient, 0, len(group.replacements))
		for _, replacement := range group.replacements {
			replacement.Replacements = []Ingredient{}
			ingredient.Replacements = append(ingredient.Replacements, replacement)
		}
		ingredients = append(ingredients, ingredient)
	}

	steps := make([]Step, 0, len(st.fragments))
	for i, directions := range st.fragments {
		steps = append(steps, Step{Order: i, Directions: directions})
	}

	return SaveProps{
		Title:       strings.TrimSpace(st.title),
		Description: strings.TrimSpace(st.description),
		Ingredients: ingredients,
		Steps:       steps,
	}
}

// parseTriple splits "name ; amount, unit" at the first ";" and then the
// first "," after it. Everything after that comma belongs to the unit.
func parseTriple(text string) (Ingredient, error) {
	name, amountUnit, found := strings.Cut(text, ";")
	if !found {
		return Ingredient{}, ErrMalformedIngredientLine
	}
	amount, unit, found := strings.Cut(amountUnit, ",")
	if !found {
		return Ingredient{}, ErrMalformedIngredientLine
	}
	return Ingredient{
		Name:   strings.TrimSpace(name),
		Amount: strings.TrimSpace(amount),
		Unit:   strings.TrimSpace(unit),
	}, nil
}

// ParseIngredient parses a single "name ; amount, unit" triple with no sigil.
func ParseIngredient(text string) (Ingredient, error) {
	ingredient, err := parseTriple(text)
	if err != nil {
		return Ingredient{}, &LineError{Line: 1, Text: text, Err: err}
	}
	ingredient.Replacements = []Ingredient{}
	return ingredient, nil
}
