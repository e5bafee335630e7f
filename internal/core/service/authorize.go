package service

import (
	"github.com/erplite/backoffice-client/internal/core/domain"
)

// authorize is the optimistic client-side gate every resource service
// runs before a call: it saves a round-trip the server would reject
// anyway. The server independently re-validates each request, so a stale
// table here degrades UX, never security.
func authorize(auth *SessionAuthority, action domain.Action) error {
	if !auth.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	if !auth.Can(action) {
		return domain.ErrForbidden
	}
	return nil
}
