// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"lowercases and splits", "Python SQL", []string{"python", "sql"}},
		{"single char dropped", "a bc d ef", []string{"bc", "ef"}},
		{"punctuation splits runs", "node.js,react", []string{"node", "js", "react"}},
		{"digits kept", "python3 2024", []string{"python3", "2024"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tokenize(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAnalyzeRemovesStopWords(t *testing.T) {
	result := analyze("the design and analysis of software")
	expected := []string{"design", "analysis", "software"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("analyze() = %v, want %v", result, expected)
	}
}

func TestFitVectorSpaceDeterministic(t *testing.T) {
	corpus := []string{
		"python data analysis",
		"patient care nursing",
		"software engineering python",
	}

	vs1, docs1 := FitVectorSpace(corpus)
	vs2, docs2 := FitVectorSpace(corpus)

	if !reflect.DeepEqual(vs1.terms, vs2.terms) {
		t.Errorf("vocabulary differs between fits: %v vs %v", vs1.terms, vs2.terms)
	}
	if !reflect.DeepEqual(docs1, docs2) {
		t.Error("document vectors differ between fits over the same corpus")
	}
	if !sortedStrings(vs1.terms) {
		t.Errorf("vocabulary not alphabetically sorted: %v", vs1.terms)
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestFitVectorSpaceIDF(t *testing.T) {
	// "python" appears in 2 of 3 docs, "nursing" in 1 of 3.
	corpus := []string{
		"python data",
		"nursing care",
		"python software",
	}
	vs, _ := FitVectorSpace(corpus)

	idfFor := func(term string) float64 {
		idx, ok := vs.vocab[term]
		if !ok {
			t.Fatalf("term %q not in vocabulary", term)
		}
		return vs.idf[idx]
	}

	wantPython := math.Log(4.0/3.0) + 1
	wantNursing := math.Log(4.0/2.0) + 1

	if got := idfFor("python"); math.Abs(got-wantPython) > 1e-12 {
		t.Errorf("idf(python) = %v, want %v", got, wantPython)
	}
	if got := idfFor("nursing"); math.Abs(got-wantNursing) > 1e-12 {
		t.Errorf("idf(nursing) = %v, want %v", got, wantNursing)
	}
	if idfFor("nursing") <= idfFor("python") {
		t.Error("rarer term should have higher idf")
	}
}

func TestDocumentVectorsUnitLength(t *testing.T) {
	corpus := []string{
		"python data analysis statistics",
		"nursing patient care",
	}
	_, docs := FitVectorSpace(corpus)

	for i, doc := range docs {
		var norm float64
		for _, w := range doc {
			norm += w * w
		}
		if math.Abs(math.Sqrt(norm)-1.0) > 1e-12 {
			t.Errorf("doc %d has norm %v, want 1.0", i, math.Sqrt(norm))
		}
	}
}

func TestTransformIgnoresUnknownTerms(t *testing.T) {
	vs, _ := FitVectorSpace([]string{"python data", "nursing care"})

	withUnknown := vs.Transform("python quantum blockchain")
	onlyKnown := vs.Transform("python")
	if !reflect.DeepEqual(withUnknown, onlyKnown) {
		t.Errorf("unknown terms changed the vector: %v vs %v", withUnknown, onlyKnown)
	}

	if before := vs.VocabularySize(); before != 4 {
		t.Fatalf("vocabulary size = %d, want 4", before)
	}
	vs.Transform("entirely new words here")
	if after := vs.VocabularySize(); after != 4 {
		t.Errorf("Transform grew the vocabulary to %d", after)
	}
}

func TestTransformAllUnknownYieldsEmptyVector(t *testing.T) {
	vs, docs := FitVectorSpace([]string{"python data", "nursing care"})

	query := vs.Transform("quantum blockchain")
	if len(query) != 0 {
		t.Fatalf("expected empty vector, got %v", query)
	}

	ranked := Rank(query, docs)
	for _, rd := range ranked {
		if rd.Score != 0 {
			t.Errorf("doc %d scored %v against empty query, want 0", rd.Index, rd.Score)
		}
	}
}

func TestRankFullPermutationDescending(t *testing.T) {
	corpus := []string{
		"python programming data analysis",
		"nursing patient hospital care",
		"python software development",
		"accounting ledger finance",
	}
	vs, docs := FitVectorSpace(corpus)
	ranked := Rank(vs.Transform("python data"), docs)

	if len(ranked) != len(corpus) {
		t.Fatalf("Rank returned %d entries, want %d", len(ranked), len(corpus))
	}
	seen := make(map[int]bool)
	for _, rd := range ranked {
		if seen[rd.Index] {
			t.Errorf("index %d appears twice", rd.Index)
		}
		seen[rd.Index] = true
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Errorf("scores not non-increasing at %d: %v < %v", i, ranked[i-1].Score, ranked[i].Score)
		}
	}
	if ranked[0].Index != 0 {
		t.Errorf("best match index = %d, want 0", ranked[0].Index)
	}
	if ranked[0].Score <= 0 || ranked[0].Score > 1+1e-12 {
		t.Errorf("best score %v outside (0, 1]", ranked[0].Score)
	}
}

func TestRankTiesKeepCorpusOrder(t *testing.T) {
	corpus := []string{"alpha beta", "gamma delta", "epsilon zeta"}
	vs, docs := FitVectorSpace(corpus)

	// No known terms, so every score is zero and order must be stable.
	ranked := Rank(vs.Transform("unrelated words"), docs)
	for i, rd := range ranked {
		if rd.Index != i {
			t.Errorf("tied ranking position %d has index %d, want %d", i, rd.Index, i)
		}
	}
}
