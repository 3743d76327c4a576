package rest

import (
	"net/http"

	"github.com/glyphdict/glyphdict-backend/pkg/ctxutil"
)

type meResponse struct {
	Login string `json:"login"`
	Admin bool   `json:"admin"`
}

// Me returns the current caller's identity.
// GET /api/me
func Me(w http.ResponseWriter, r *http.Request) {
	login, ok := ctxutil.LoginFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		Login: login,
		Admin: ctxutil.IsAdminCtx(r.Context()),
	})
}
