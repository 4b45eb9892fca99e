package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
)

// Header names set by the upstream auth gateway after token verification.
// This core never parses credentials itself.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Principal resolves the authenticated caller from gateway headers. Requests
// without a parseable user ID proceed as anonymous; handlers that require
// authentication reject those themselves.
func Principal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get(headerUserID))
		if err != nil || userID == uuid.Nil {
			next.ServeHTTP(w, r)
			return
		}

		role := model.Role(r.Header.Get(headerUserRole))
		if role != model.RoleModerator {
			role = model.RoleUser
		}

		principal := &model.Principal{UserID: userID, Role: role}
		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal retrieves the resolved principal from context.
// Returns nil for anonymous requests.
func GetPrincipal(ctx context.Context) *model.Principal {
	if p, ok := ctx.Value(principalKey).(*model.Principal); ok {
		return p
	}
	return nil
}
