package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("offset", "must be >= 0")

	if got := err.Error(); got != "validation: offset: must be >= 0" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: []FieldError{
		{Field: "text", Message: "required"},
		{Field: "offset", Message: "must be >= 0"},
	}}

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_WrappedAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("analyze: %w", NewValidationError("text", "required"))

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find *ValidationError through wrapping")
	}
	if ve.Errors[0].Field != "text" {
		t.Errorf("Field = %q, want %q", ve.Errors[0].Field, "text")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrNotFound, ErrValidation) {
		t.Fatal("ErrNotFound must not match ErrValidation")
	}
}
