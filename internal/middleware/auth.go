package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripledger/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithUser returns a context carrying an authenticated user.
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, EmailKey, email)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}

// Authenticate validates an Authorization header value and returns the
// enriched context.
func Authenticate(ctx context.Context, jwtManager *auth.JWTManager, header string) (context.Context, error) {
	if header == "" {
		return ctx, auth.ErrMissingToken
	}
	token, ok := bearerToken(header)
	if !ok {
		return ctx, auth.ErrInvalidToken
	}
	claims, err := jwtManager.Validate(token)
	if err != nil {
		return ctx, err
	}
	return WithUser(ctx, claims.UserID, claims.Email), nil
}

// RequireAuth returns an interceptor that rejects requests without a valid
// JWT and adds the user ID and email to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			ctx, err := Authenticate(ctx, jwtManager, req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			return next(ctx, req)
		}
	}
}

// OptionalAuth returns an interceptor that validates JWT tokens if present,
// but allows requests without authentication.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			// invalid tokens are ignored here; handlers decide
			if authed, err := Authenticate(ctx, jwtManager, req.Header().Get("Authorization")); err == nil {
				ctx = authed
			}
			return next(ctx, req)
		}
	}
}
