package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/benson/poolbuilder/internal/service"
)

// Admin gates moderation endpoints behind the shared admin credential:
// either the raw secret or a session token, presented as a bearer token.
// Failures say nothing beyond "unauthorized".
func Admin(adminService *service.AdminService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Admin] missing authorization header")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Admin] invalid authorization header format")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if !adminService.VerifyCredential(parts[1]) {
				log.Printf("ERROR [middleware.Admin] credential rejected")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
