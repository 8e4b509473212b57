// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import (
	"reflect"
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple words lowercased", "Python SQL Communication", []string{"python", "sql", "communication"}},
		{"mixed alphanumeric dropped", "C++ 3D Java", []string{"java"}},
		{"punctuated tokens dropped", "node.js react", []string{"react"}},
		{"extra whitespace collapsed", "  data   science  ", []string{"data", "science"}},
		{"empty input", "", []string{}},
		{"only non-alphabetic", "123 c# .net", []string{}},
		{"unicode letters kept", "Café Müller", []string{"café", "müller"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeQuery(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("NormalizeQuery(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeQueryPreservesOrder(t *testing.T) {
	result := NormalizeQuery("zebra apple zebra")
	expected := []string{"zebra", "apple", "zebra"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("NormalizeQuery order = %v, want %v", result, expected)
	}
}
