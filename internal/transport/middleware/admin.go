package middleware

import (
	"context"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
	"github.com/glyphdict/glyphdict-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden for authenticated non-admins. Use in REST handlers,
// not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.LoginFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
