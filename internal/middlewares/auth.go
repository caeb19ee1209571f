package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/jwt"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, or nil for anonymous requests.
func UserIDFromContext(ctx context.Context) *uuid.UUID {
	if id, ok := ctx.Value(userIDKey{}).(uuid.UUID); ok {
		return &id
	}
	return nil
}

// AuthMiddleware returns a middleware that rejects requests without a valid token.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return authenticate(tokener, true)
}

// OptionalAuthMiddleware lets anonymous requests through but still rejects
// requests that carry an invalid token.
func OptionalAuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return authenticate(tokener, false)
}

func authenticate(tokener Tokener, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if errors.Is(err, jwt.ErrMissingAuthHeader) && !required {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, claims.UserID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
