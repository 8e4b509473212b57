// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import (
	"strings"
	"unicode/utf8"
)

// TitleDelimiter separates the display title of a posting from trailing
// metadata, e.g. "Senior Engineer-----Acme Corp-----Berlin". Only the
// portion before the first delimiter is matched; company and location
// segments carry no occupation signal.
const TitleDelimiter = "-----"

// tooGeneric are words that match too many occupation titles to carry any
// signal. Compared case-insensitively.
var tooGeneric = map[string]struct{}{
	"manager": {},
}

// wordMatches reports whether a single posting-title word links to the
// occupation title. Short words (3 runes or fewer), the literal
// lowercase conjunction "and" and overly generic words never match; any
// other word matches when its lowercase form is a substring of some
// lowercase word of the occupation title.
func wordMatches(word string, titleWords []string) bool {
	if word == "" || word == "and" || utf8.RuneCountInString(word) <= 3 {
		return false
	}
	lower := strings.ToLower(word)
	if _, generic := tooGeneric[lower]; generic {
		return false
	}
	for _, tw := range titleWords {
		if strings.Contains(strings.ToLower(tw), lower) {
			return true
		}
	}
	return false
}

// Matches reports whether a posting-title segment refers to the given
// occupation title. Words joined with "/" count as alternatives: each
// side is tested on its own, so "Engineer/Director" matches "Director".
func Matches(segment, occupationTitle string) bool {
	titleWords := strings.Fields(occupationTitle)
	if len(titleWords) == 0 {
		return false
	}
	for _, word := range strings.Fields(segment) {
		if strings.Contains(word, "/") {
			for _, part := range strings.Split(word, "/") {
				if wordMatches(part, titleWords) {
					return true
				}
			}
			continue
		}
		if wordMatches(word, titleWords) {
			return true
		}
	}
	return false
}

// CollectPostings returns the postings whose display title reconciles
// against the occupation title, preserving posting order. Only the text
// before the first TitleDelimiter is considered, and a posting appears at
// most once even when several of its words match.
func CollectPostings(occupationTitle string, postings []Posting) []Posting {
	matched := make([]Posting, 0)
	for _, p := range postings {
		displayTitle, _, _ := strings.Cut(p.Title, TitleDelimiter)
		if Matches(displayTitle, occupationTitle) {
			matched = append(matched, p)
		}
	}
	return matched
}
