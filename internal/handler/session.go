package handlers

import (
	"net/http"

	"personalblog/internal/auth"
	"personalblog/internal/models"
)

// requireSession returns the caller's claim or answers 401. The claim comes
// from the session middleware when present, otherwise the cookie is verified
// here so that handlers never depend on routing to be protected.
func (h *Handlers) requireSession(w http.ResponseWriter, r *http.Request) (models.SessionClaim, bool) {
	if claim, ok := auth.ClaimFromContext(r.Context()); ok {
		return claim, true
	}

	if token := auth.TokenFromRequest(r); token != "" {
		if session, ok := h.AuthService.Authenticate(r.Context(), token); ok {
			return session.Claim, true
		}
	}

	writeError(w, models.ErrInvalidSession.Message, http.StatusUnauthorized)
	return models.SessionClaim{}, false
}
