// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWelcome(t *testing.T) {
	router := newTestServer(t, &stubSource{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data has unexpected shape: %T", resp.Data)
	}
	if data["message"] != WelcomeMessage {
		t.Errorf("message = %v, want %q", data["message"], WelcomeMessage)
	}
}

func TestHealth(t *testing.T) {
	router := newTestServer(t, &stubSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data has unexpected shape: %T", resp.Data)
	}
	if data["status"] != "healthy" {
		t.Errorf("health status = %v, want healthy", data["status"])
	}
	corpus, ok := data["corpus"].(map[string]interface{})
	if !ok {
		t.Fatalf("corpus has unexpected shape: %T", data["corpus"])
	}
	if corpus["occupations"].(float64) != 3 {
		t.Errorf("occupations = %v, want 3", corpus["occupations"])
	}
	if corpus["distinct_titles"].(float64) != 3 {
		t.Errorf("distinct_titles = %v, want 3", corpus["distinct_titles"])
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestServer(t, &stubSource{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("metrics body is empty")
	}
}
