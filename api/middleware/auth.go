package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kirtlelatino/store-api/api/responses"
	"github.com/kirtlelatino/store-api/pkg/db/models"
	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
	"github.com/kirtlelatino/store-api/pkg/logger"
)

// TokenResolver maps a raw bearer token to its user. The auth service
// implements it.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// Auth validates the bearer token and seeds the request context with the
// authenticated user id.
func Auth(resolver TokenResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithUserID(r.Context(), user.ID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, user.ID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
