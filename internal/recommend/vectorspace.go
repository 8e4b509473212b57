// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// VectorSpace is a fitted TF-IDF model over a fixed corpus. It is
// immutable after FitVectorSpace returns and therefore safe for
// concurrent use.
type VectorSpace struct {
	vocab map[string]int
	terms []string
	idf   []float64
	n     int
}

// tokenize lowercases the input and extracts maximal runs of letters and
// digits that are at least two runes long. Single-character tokens are
// dropped.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	var tokens []string
	start := -1
	for i, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if tok := lower[start:i]; len([]rune(tok)) >= 2 {
				tokens = append(tokens, tok)
			}
			start = -1
		}
	}
	if start >= 0 {
		if tok := lower[start:]; len([]rune(tok)) >= 2 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// analyze tokenizes text and removes stop words.
func analyze(text string) []string {
	tokens := tokenize(text)
	out := tokens[:0]
	for _, t := range tokens {
		if _, stop := englishStopWords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FitVectorSpace builds a TF-IDF model from the corpus and returns it
// together with the corpus document vectors. doc i in the returned slice
// corresponds to corpus[i].
//
// The vocabulary is every distinct analyzed term sorted alphabetically,
// so term indices are deterministic across runs. Inverse document
// frequency uses the smoothed form ln((1+n)/(1+df)) + 1, which keeps
// terms appearing in every document at a positive weight. Document
// vectors are raw term counts scaled by idf and L2-normalized.
func FitVectorSpace(corpus []string) (*VectorSpace, []SparseVector) {
	analyzed := make([][]string, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		analyzed[i] = analyze(doc)
		seen := make(map[string]struct{}, len(analyzed[i]))
		for _, t := range analyzed[i] {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	vs := &VectorSpace{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
		n:     len(corpus),
	}
	for i, t := range terms {
		vs.vocab[t] = i
		vs.idf[i] = math.Log(float64(1+vs.n)/float64(1+df[t])) + 1
	}

	docs := make([]SparseVector, len(corpus))
	for i, tokens := range analyzed {
		docs[i] = vs.vectorize(tokens)
	}
	return vs, docs
}

// Transform maps free text into the fitted space. Terms outside the
// vocabulary are ignored; a query with no known terms yields an empty
// vector. The model itself is never mutated.
func (vs *VectorSpace) Transform(text string) SparseVector {
	return vs.vectorize(analyze(text))
}

// vectorize turns analyzed tokens into an L2-normalized TF-IDF vector.
func (vs *VectorSpace) vectorize(tokens []string) SparseVector {
	counts := make(map[int]float64)
	for _, t := range tokens {
		if idx, ok := vs.vocab[t]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	var norm float64
	for idx, c := range counts {
		w := c * vs.idf[idx]
		counts[idx] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for idx := range counts {
		counts[idx] /= norm
	}
	return counts
}

// VocabularySize returns the number of terms in the fitted vocabulary.
func (vs *VectorSpace) VocabularySize() int {
	return len(vs.terms)
}

// Rank scores every document against the query by cosine similarity and
// returns the full permutation sorted by descending score. Both sides are
// already L2-normalized, so cosine reduces to a dot product. Ties keep
// corpus order.
func Rank(query SparseVector, docs []SparseVector) []RankedDoc {
	ranked := make([]RankedDoc, len(docs))
	for i, doc := range docs {
		ranked[i] = RankedDoc{Index: i, Score: dot(query, doc)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})
	return ranked
}

func dot(a, b SparseVector) float64 {
	// Iterate the smaller operand.
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, w := range a {
		sum += w * b[idx]
	}
	return sum
}
