package textutil

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// minTokenRunes drops articles and other short words from title matching.
const minTokenRunes = 3

var folder = cases.Fold()

// Fingerprint is a weighted term vector over a recipe title or description.
type Fingerprint struct {
	weights map[string]float64
	norm    float64
}

// NewFingerprint counts the tokens of text. It returns nil when text has no
// token of at least three runes.
func NewFingerprint(text string) *Fingerprint {
	weights := map[string]float64{}
	for _, token := range Tokenize(text) {
		weights[token]++
	}
	return fromWeights(weights)
}

func fromWeights(weights map[string]float64) *Fingerprint {
	if len(weights) == 0 {
		return nil
	}
	var sum float64
	for _, w := range weights {
		sum += w * w
	}
	return &Fingerprint{weights: weights, norm: math.Sqrt(sum)}
}

// Tokenize case-folds text and splits it on every rune that is neither a
// letter nor a digit. Tokens shorter than three runes are dropped.
func Tokenize(text string) []string {
	tokens := []string{}
	var current strings.Builder
	flush := func() {
		if utf8.RuneCountInString(current.String()) >= minTokenRunes {
			tokens = append(tokens, current.String())
		}
		current.Reset()
	}
	for _, r := range folder.String(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// TokenCount reports how many distinct tokens the fingerprint holds.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.weights)
}

// WithIDF scales each weight by its inverse document frequency. Tokens the
// corpus never saw keep their raw count.
func (f *Fingerprint) WithIDF(idf map[string]float64) *Fingerprint {
	if f == nil || len(idf) == 0 {
		return f
	}
	scaled := make(map[string]float64, len(f.weights))
	for token, w := range f.weights {
		if factor, ok := idf[token]; ok {
			w *= factor
		}
		if w != 0 {
			scaled[token] = w
		}
	}
	return fromWeights(scaled)
}

// Corpus tracks how many documents contain each token.
type Corpus struct {
	docs    int
	docFreq map[string]int
}

func NewCorpus() *Corpus {
	return &Corpus{docFreq: map[string]int{}}
}

// Add counts each distinct token of fp once.
func (c *Corpus) Add(fp *Fingerprint) {
	if c == nil || fp == nil {
		return
	}
	c.docs++
	for token := range fp.weights {
		c.docFreq[token]++
	}
}

// IDF returns 1 + ln((N+1)/(1+df)) per token; a token present in every
// document still weighs more than zero.
func (c *Corpus) IDF() map[string]float64 {
	if c == nil || c.docs == 0 {
		return nil
	}
	n := float64(c.docs + 1)
	idf := make(map[string]float64, len(c.docFreq))
	for token, df := range c.docFreq {
		idf[token] = 1 + math.Log(n/float64(df+1))
	}
	return idf
}
