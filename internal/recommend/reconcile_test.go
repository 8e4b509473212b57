// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import (
	"reflect"
	"testing"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		segment  string
		title    string
		expected bool
	}{
		{"direct word match", "Software Engineer", "Software Developer", true},
		{"case-insensitive match", "SOFTWARE engineer", "Software Developer", true},
		{"substring of title word", "Engineer", "Senior Engineering Lead", true},
		{"conjunction never matches", "and", "Operations and Logistics", false},
		{"short word never matches", "Mgr", "Manager", false},
		{"three runes never match", "Dev", "Developer", false},
		{"four runes can match", "Deve", "Developer", true},
		{"manager is too generic", "Manager", "Office Manager", false},
		{"manager uppercase still generic", "MANAGER", "Office Manager", false},
		{"slash compound matches either side", "Engineer/Director", "Director", true},
		{"slash compound left side", "Engineer/Director", "Engineering", true},
		{"slash compound no side matches", "Engineer/Director", "Nurse", false},
		{"no overlap", "Registered Nurse", "Software Developer", false},
		{"empty segment", "", "Software Developer", false},
		{"empty title", "Software Engineer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Matches(tt.segment, tt.title)
			if result != tt.expected {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.segment, tt.title, result, tt.expected)
			}
		})
	}
}

func TestCollectPostings(t *testing.T) {
	postings := []Posting{
		{Title: "Senior Software Engineer-----Acme Corp-----Berlin", URL: "https://jobs.example/1"},
		{Title: "Registered Nurse-----City Hospital", URL: "https://jobs.example/2"},
		{Title: "Data Analyst", URL: "https://jobs.example/3"},
		{Title: "Engineer/Director of Platform-----Globex", URL: "https://jobs.example/4"},
	}

	tests := []struct {
		name     string
		title    string
		expected []Posting
	}{
		{
			name:     "software title picks engineering postings",
			title:    "Software Developer",
			expected: []Posting{postings[0]},
		},
		{
			name:     "nurse title picks nursing posting",
			title:    "Nurse Practitioner",
			expected: []Posting{postings[1]},
		},
		{
			name:     "engineer title picks compound posting",
			title:    "Director of Engineering",
			expected: []Posting{postings[0], postings[3]},
		},
		{
			name:     "no matching postings",
			title:    "Veterinarian",
			expected: []Posting{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CollectPostings(tt.title, postings)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("CollectPostings(%q) = %v, want %v", tt.title, result, tt.expected)
			}
		})
	}
}

func TestCollectPostingsDeduplicates(t *testing.T) {
	// Both "Software" and "Developer" match the title, but the posting
	// must appear once.
	postings := []Posting{
		{Title: "Software Developer Engineer-----Acme", URL: "https://jobs.example/1"},
	}
	result := CollectPostings("Software Developer", postings)
	if len(result) != 1 {
		t.Errorf("posting with multiple matching words returned %d times, want 1", len(result))
	}
}

func TestCollectPostingsIgnoresTrailingMetadata(t *testing.T) {
	// Company and location segments after the delimiter must carry no
	// occupation signal, even when their words overlap the title.
	postings := []Posting{
		{Title: "Receptionist-----Software Solutions Inc-----Berlin", URL: "https://jobs.example/1"},
		{Title: "Junior Software Engineer-----Nursing Home Group", URL: "https://jobs.example/2"},
	}

	software := CollectPostings("Software Developer", postings)
	if len(software) != 1 || software[0].URL != "https://jobs.example/2" {
		t.Errorf("CollectPostings(Software Developer) = %v, want only the engineering posting", software)
	}

	nurse := CollectPostings("Nurse Practitioner", postings)
	if len(nurse) != 0 {
		t.Errorf("CollectPostings(Nurse Practitioner) = %v, want none", nurse)
	}
}

func TestCollectPostingsPreservesOrder(t *testing.T) {
	postings := []Posting{
		{Title: "Software Engineer III", URL: "https://jobs.example/a"},
		{Title: "Junior Software Developer", URL: "https://jobs.example/b"},
		{Title: "Software Architect", URL: "https://jobs.example/c"},
	}
	result := CollectPostings("Software Developer", postings)
	expected := []string{"https://jobs.example/a", "https://jobs.example/b", "https://jobs.example/c"}
	if len(result) != len(expected) {
		t.Fatalf("got %d postings, want %d", len(result), len(expected))
	}
	for i, p := range result {
		if p.URL != expected[i] {
			t.Errorf("position %d has URL %q, want %q", i, p.URL, expected[i])
		}
	}
}
