package middleware

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminTokenHeader carries the static shared admin token. There is no user
// model: one token guards every mutating endpoint.
const AdminTokenHeader = "X-Admin-Token"

// RequireAdmin rejects requests whose token does not match the configured
// one. When tokenHash is set (a bcrypt hash), it takes precedence over the
// plain token so the secret itself can stay out of the environment.
func RequireAdmin(token, tokenHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(AdminTokenHeader)
			if supplied == "" || !tokenMatches(supplied, token, tokenHash) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenMatches(supplied, token, tokenHash string) bool {
	if tokenHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) == 1
}
