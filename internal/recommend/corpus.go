// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import "strings"

// CorpusDocument builds the text that represents one occupation in the
// vector space: skill, description and education level joined with single
// spaces, in that order. Experience level is deliberately not part of the
// document; it only enters through the query side.
func CorpusDocument(o Occupation) string {
	var b strings.Builder
	b.Grow(len(o.Skill) + len(o.Description) + len(o.EducationLevel) + 2)
	b.WriteString(o.Skill)
	b.WriteByte(' ')
	b.WriteString(o.Description)
	b.WriteByte(' ')
	b.WriteString(o.EducationLevel)
	return b.String()
}

// BuildCorpus maps occupations to their vector-space documents, preserving
// order. Document i corresponds to occupations[i].
func BuildCorpus(occupations []Occupation) []string {
	docs := make([]string, len(occupations))
	for i, o := range occupations {
		docs[i] = CorpusDocument(o)
	}
	return docs
}
