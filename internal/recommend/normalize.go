// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import (
	"strings"
	"unicode"
)

// NormalizeQuery prepares free-form profile text for the vector space.
// The input is split on whitespace; tokens containing anything other than
// letters are dropped entirely, the rest are lowercased. Order is
// preserved. "C++" and "3D" vanish, "Python" becomes "python".
func NormalizeQuery(raw string) []string {
	fields := strings.Fields(raw)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !isAlphabetic(f) {
			continue
		}
		out = append(out, strings.ToLower(f))
	}
	return out
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
