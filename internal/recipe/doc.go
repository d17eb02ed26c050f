// Package recipe defines the recipe document model and the line-oriented
// text codec used to share, copy, import, and hand-edit recipes.
//
// Stringify renders a Recipe either in export form, where every physical line
// carries a sigil naming the field it belongs to, or in display form with the
// sigils removed. Parse folds export text back into SaveProps. The two
// transforms are pure and keep no state between calls, so they are safe to use
// from any number of goroutines.
//
// The format is intentionally lossy in a few places: notes are written but
// never read back, continuation lines of a step are joined without a
// separator, and nested replacements flatten to a single level. Callers that
// round-trip text through an editor must carry those fields themselves.
package recipe
