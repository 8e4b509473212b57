// Occupatus - Occupation Recommendation and Job Posting Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/occupatus

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Skills string `validate:"required,min=1"`
	TopK   int    `validate:"required,gt=0"`
}

func TestValidateStructPasses(t *testing.T) {
	req := sampleRequest{Skills: "python", TopK: 3}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected valid struct, got: %v", err)
	}
}

func TestValidateStructMissingField(t *testing.T) {
	req := sampleRequest{TopK: 3}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error for missing Skills")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Skills") {
		t.Errorf("message %q does not name the failing field", apiErr.Message)
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	req := sampleRequest{}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("expected multi-error details to contain fields list")
	}
}

func TestTranslateErrorGtTag(t *testing.T) {
	req := sampleRequest{Skills: "python", TopK: -1}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error for non-positive TopK")
	}
	if !strings.Contains(err.Error(), "greater than") {
		t.Errorf("error %q should mention the gt constraint", err.Error())
	}
}
