package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"Agora/internal/core/users"
)

// Context keys for storing request-scoped identity
type contextKey string

const userKey contextKey = "authenticated_user"

// AuthMiddleware enforces bearer-token authentication for protected routes.
// Tokens are HS256 JWTs whose subject is the user id; the middleware loads
// the full User so handlers and services get the actor, not just an id.
// Everything downstream trusts this identity completely.
type AuthMiddleware struct {
	userService users.Service
	secret      []byte
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(userService users.Service, secret []byte) *AuthMiddleware {
	return &AuthMiddleware{
		userService: userService,
		secret:      secret,
	}
}

// RequireAuth ensures the request carries a valid token for an existing
// user. If not, returns 401. If so, injects the User into the context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=parse_error ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			writeAuthError(w, "Missing user id in token")
			return
		}
		userID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil {
			writeAuthError(w, "Invalid user id in token")
			return
		}

		user, err := m.userService.GetUser(r.Context(), userID)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=unknown_user ip=%s method=%s path=%s user_id=%d error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, userID, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticatedUser returns the actor injected by RequireAuth, or nil on
// routes that skipped it.
func AuthenticatedUser(r *http.Request) *users.User {
	user, _ := r.Context().Value(userKey).(*users.User)
	return user
}

// IssueToken mints an HS256 token for the given user id. Used by tests and
// local tooling; production token issuance belongs to the identity provider.
func IssueToken(secret []byte, userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
	})
	return token.SignedString(secret)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
