package textutil

import (
	"cmp"
	"slices"
)

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.weights {
		if other, ok := b.weights[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Match is one ranked candidate returned by RankSimilar.
type Match struct {
	Index int
	Score float64
}

// RankSimilar scores candidates against query with IDF weights drawn from the
// candidates themselves. Matches scoring below threshold are dropped; at most
// limit matches are returned, best first.
func RankSimilar(query string, candidates []string, threshold float64, limit int) []Match {
	q := NewFingerprint(query)
	if q == nil || len(candidates) == 0 {
		return nil
	}
	corpus := NewCorpus()
	prints := make([]*Fingerprint, len(candidates))
	for i, candidate := range candidates {
		prints[i] = NewFingerprint(candidate)
		corpus.Add(prints[i])
	}
	idf := corpus.IDF()
	q = q.WithIDF(idf)

	var matches []Match
	for i, fp := range prints {
		score := CosineSimilarity(q, fp.WithIDF(idf))
		if score < threshold || score == 0 {
			continue
		}
		matches = append(matches, Match{Index: i, Score: score})
	}
	slices.SortStableFunc(matches, func(a, b Match) int { return cmp.Compare(b.Score, a.Score) })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
