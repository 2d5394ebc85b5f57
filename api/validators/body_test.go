package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
)

type samplePayload struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

func TestDecodeJSONBody(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"email":"a@b.com","quantity":2}`},
		{name: "unknown field", body: `{"email":"a@b.com","quantity":2,"extra":true}`, wantErr: true},
		{name: "bad email", body: `{"email":"nope","quantity":2}`, wantErr: true},
		{name: "zero quantity", body: `{"email":"a@b.com","quantity":0}`, wantErr: true},
		{name: "malformed json", body: `{"email":`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			var dest samplePayload
			err := DecodeJSONBody(r, &dest)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				appErr := pkgerrors.As(err)
				if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dest.Email != "a@b.com" || dest.Quantity != 2 {
				t.Fatalf("unexpected decode result %+v", dest)
			}
		})
	}
}
