// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package api

import "testing"

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "Software Developer", "Software Developer"},
		{"newline escaped", "line1\nline2", "line1\\x0aline2"},
		{"carriage return escaped", "a\rb", "a\\x0db"},
		{"tab escaped", "a\tb", "a\\x09b"},
		{"delete escaped", "a\x7fb", "a\\x7fb"},
		{"empty string", "", ""},
		{"unicode preserved", "Café Müller", "Café Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.expected {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
