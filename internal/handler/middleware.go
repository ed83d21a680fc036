package handler

import (
	"context"
	"net/http"

	"github.com/devlink-app/devlink/internal/domain"
	"github.com/devlink-app/devlink/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// authHeader is the fixed request header carrying the identity token.
const authHeader = "x-auth-token"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth is middleware that protects routes requiring authentication.
// It reads the x-auth-token header, validates the token, loads the user,
// and injects it into the request context. Missing, invalid, or expired
// tokens are all rejected with 401 before the handler runs.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(authHeader)
		if token == "" {
			writeMsg(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			writeMsg(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		user, err := auth.GetUserByID(r.Context(), userID)
		if err != nil {
			writeMsg(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
