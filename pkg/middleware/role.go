package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// RequireRole rejects requests whose authenticated user does not carry the
// given role. Must be applied after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetUserFromContext(r.Context())
			if claims == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if claims.Role != role {
				logrus.WithFields(logrus.Fields{
					"userID":   claims.UserID,
					"required": role,
				}).Warn("Forbidden access attempt")
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
