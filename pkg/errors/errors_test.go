package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusBadRequest},
		{CodeBusinessRule, http.StatusBadRequest},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	if got := MetadataFor(Code("NOPE")).HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("db down")
	err := Wrap(CodeInternal, cause, "load cart")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	wrapped := fmt.Errorf("handler: %w", err)
	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected As to find typed error through wrapping")
	}
	if typed.Code() != CodeInternal {
		t.Fatalf("expected code %s got %s", CodeInternal, typed.Code())
	}
}

func TestAsReturnsNilForUntyped(t *testing.T) {
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}
