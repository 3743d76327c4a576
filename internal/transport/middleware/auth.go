package middleware

import (
	"net/http"
	"strings"

	"github.com/glyphdict/glyphdict-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

type adminChecker interface {
	IsAdmin(login string) bool
}

// Auth returns middleware that resolves the caller's identity from a bearer
// token. Requests without a token pass through anonymous; a present but
// invalid token is rejected with 401. The admin flag is decided per request
// from the allowlist, never stored in the token.
func Auth(validator tokenValidator, admins adminChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			login, err := validator.ValidateToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithLogin(r.Context(), login)
			ctx = ctxutil.WithAdmin(ctx, admins.IsAdmin(login))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
