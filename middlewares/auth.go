package middlewares

import (
	"net/http"
	"strings"

	"github.com/siamlex/gazette-search-service/common/utils"
)

// BearerToken guards a route subtree with a fixed bearer token. A missing
// or malformed Authorization header yields 401, a wrong token 403. The
// check runs before any handler work, so a rejected request never creates
// an automation session.
func BearerToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: Missing or invalid Authorization header")
				return
			}
			if strings.TrimPrefix(header, "Bearer ") != token {
				utils.WriteError(w, http.StatusForbidden, "Forbidden: Invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
