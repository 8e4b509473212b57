// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package recommend

import "testing"

func TestCorpusDocument(t *testing.T) {
	o := Occupation{
		Code:           "2512",
		Title:          "Software Developer",
		Description:    "Designs and builds software systems",
		Skill:          "Python SQL",
		Experience:     "Mid",
		EducationLevel: "Bachelor",
	}
	got := CorpusDocument(o)
	want := "Python SQL Designs and builds software systems Bachelor"
	if got != want {
		t.Errorf("CorpusDocument() = %q, want %q", got, want)
	}
}

func TestBuildCorpusPreservesOrder(t *testing.T) {
	occupations := []Occupation{
		{Skill: "a", Description: "b", EducationLevel: "c"},
		{Skill: "x", Description: "y", EducationLevel: "z"},
	}
	docs := BuildCorpus(occupations)
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0] != "a b c" || docs[1] != "x y z" {
		t.Errorf("documents out of order: %v", docs)
	}
}
