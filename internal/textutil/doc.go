// Package textutil provides text helpers shared by the CLI: filename
// sanitization for exports, description previews for listings, and
// token fingerprints used to suggest recipes with similar titles.
//
// Fingerprints use term frequency vectors, optionally weighted by inverse
// document frequency across the recipe collection. Tokenization case-folds
// text, splits on anything that is not a letter or digit, and drops tokens
// shorter than 3 runes.
package textutil
