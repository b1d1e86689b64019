package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/user"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/handler/http/response"
)

// AdminOnly restricts a route to users with the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
