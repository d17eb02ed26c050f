package textutil

import (
	"math"
	"testing"
)

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
	}{
		{"both nil", nil, nil},
		{"a nil", nil, NewFingerprint("garlic butter")},
		{"b nil", NewFingerprint("garlic butter"), nil},
		{"zero norm", &Fingerprint{weights: map[string]float64{}}, NewFingerprint("garlic butter")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CosineSimilarity(tt.a, tt.b); got != 0 {
				t.Errorf("CosineSimilarity() = %v, want 0", got)
			}
		})
	}
}

func TestCosineSimilarityShape(t *testing.T) {
	same := CosineSimilarity(NewFingerprint("Roast chicken with lemon"), NewFingerprint("roast CHICKEN with lemon"))
	if math.Abs(same-1) > 1e-9 {
		t.Errorf("identical text similarity = %v, want 1", same)
	}

	if got := CosineSimilarity(NewFingerprint("apple banana cherry"), NewFingerprint("beef onion carrot")); got != 0 {
		t.Errorf("disjoint similarity = %v, want 0", got)
	}

	a := NewFingerprint("roast chicken dinner")
	b := NewFingerprint("fried chicken sandwich")
	ab, ba := CosineSimilarity(a, b), CosineSimilarity(b, a)
	if ab <= 0 || ab >= 1 {
		t.Errorf("partial similarity = %v, want between 0 and 1", ab)
	}
	if ab != ba {
		t.Errorf("CosineSimilarity not symmetric: (%v, %v)", ab, ba)
	}
}

func TestNewFingerprintNormCalculation(t *testing.T) {
	// "salt salt pepper" -> salt:2, pepper:1
	fp := NewFingerprint("salt salt pepper")
	if fp == nil {
		t.Fatal("expected fingerprint")
	}
	if math.Abs(fp.norm-math.Sqrt(5)) > 0.0001 {
		t.Errorf("norm = %v, want %v", fp.norm, math.Sqrt(5))
	}
	if NewFingerprint("a an to") != nil {
		t.Error("expected nil for text with only short tokens")
	}
	if NewFingerprint("") != nil {
		t.Error("expected nil for empty text")
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple words", "Banana Bread", []string{"banana", "bread"}},
		{"filters short", "a to the big pie", []string{"the", "big", "pie"}},
		{"punctuation", "Salt; pepper, oil!", []string{"salt", "pepper", "oil"}},
		{"accents kept", "Crème Brûlée", []string{"crème", "brûlée"}},
		{"digits", "pie2 365days", []string{"pie2", "365days"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFingerprintTokenCount(t *testing.T) {
	var nilPrint *Fingerprint
	if nilPrint.TokenCount() != 0 {
		t.Error("nil fingerprint should have zero tokens")
	}
	if got := NewFingerprint("soup soup soup bread").TokenCount(); got != 2 {
		t.Errorf("TokenCount() = %d, want 2", got)
	}
}

func TestCorpusIDFDownweightsCommonTerms(t *testing.T) {
	corpus := NewCorpus()
	for _, text := range []string{"chicken soup", "chicken curry", "chicken pie"} {
		corpus.Add(NewFingerprint(text))
	}
	idf := corpus.IDF()
	if idf["chicken"] >= idf["curry"] {
		t.Fatalf("expected shared term to weigh less: chicken=%v curry=%v", idf["chicken"], idf["curry"])
	}
	if idf["chicken"] <= 0 {
		t.Fatalf("expected positive weight for shared term, got %v", idf["chicken"])
	}
	if NewCorpus().IDF() != nil {
		t.Fatal("expected nil IDF for empty corpus")
	}
}

func TestRankSimilar(t *testing.T) {
	titles := []string{
		"Chicken Curry",
		"Lemon Tart",
		"Green Curry with Tofu",
		"Chicken Noodle Soup",
	}

	matches := RankSimilar("curry", titles, 0.1, 5)
	if len(matches) != 2 {
		t.Fatalf("expected two curry matches, got %+v", matches)
	}
	if matches[0].Index != 0 || matches[1].Index != 2 {
		t.Fatalf("unexpected ranking %+v", matches)
	}
	if matches[0].Score < matches[1].Score {
		t.Fatalf("matches not sorted by score: %+v", matches)
	}

	if got := RankSimilar("chicken", titles, 0.1, 1); len(got) != 1 {
		t.Fatalf("expected limit to cap results, got %+v", got)
	}
	if got := RankSimilar("tiramisu", titles, 0.1, 5); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
	if got := RankSimilar("a", titles, 0.1, 5); got != nil {
		t.Fatalf("expected nil for token-less query, got %+v", got)
	}
}
