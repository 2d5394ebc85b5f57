package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/kirtlelatino/store-api/pkg/db/models"
	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
)

type stubResolver struct {
	user *models.User
	err  error
	got  string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*models.User, error) {
	s.got = token
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	handler := Auth(&stubResolver{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	for name, header := range map[string]string{
		"missing": "",
		"empty":   "Bearer ",
	} {
		r := httptest.NewRequest("GET", "/api/cart", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, w.Code)
		}
	}
}

func TestAuthRejectsBadToken(t *testing.T) {
	resolver := &stubResolver{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token")}
	handler := Auth(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest("GET", "/api/cart", nil)
	r.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if resolver.got != "bad-token" {
		t.Fatalf("expected stripped token, got %q", resolver.got)
	}
}

func TestAuthSeedsUserContext(t *testing.T) {
	userID := uuid.New()
	resolver := &stubResolver{user: &models.User{ID: userID}}

	var seen uuid.UUID
	handler := Auth(resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest("GET", "/api/cart", nil)
	r.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if seen != userID {
		t.Fatalf("expected user %s in context, got %s", userID, seen)
	}
}
