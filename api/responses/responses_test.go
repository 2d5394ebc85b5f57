package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 but got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestWriteErrorMapsCodes(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "not found keeps message",
			err:        pkgerrors.New(pkgerrors.CodeNotFound, "product not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "product not found",
		},
		{
			name:       "conflict maps to 400",
			err:        pkgerrors.New(pkgerrors.CodeConflict, "email or username already in use"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "CONFLICT",
			wantMsg:    "email or username already in use",
		},
		{
			name:       "business rule maps to 400",
			err:        pkgerrors.New(pkgerrors.CodeBusinessRule, "cart is empty"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BUSINESS_RULE",
			wantMsg:    "cart is empty",
		},
		{
			name:       "internal hides the message",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "internal server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(context.Background(), nil, w, tc.err)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d but got %d", tc.wantStatus, w.Code)
			}

			var envelope ErrorEnvelope
			if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if envelope.Error.Code != tc.wantCode {
				t.Fatalf("expected code %q but got %q", tc.wantCode, envelope.Error.Code)
			}
			if envelope.Error.Message != tc.wantMsg {
				t.Fatalf("expected message %q but got %q", tc.wantMsg, envelope.Error.Message)
			}
		})
	}
}
