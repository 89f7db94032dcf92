package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"personalblog/internal/auth"
	"personalblog/internal/models"
)

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.validateRequest(req, models.ErrMissingCredentials); err != nil {
		writeServiceError(w, r, err)
		return
	}

	result, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, result.Token, result.ExpiresAt, h.Cfg.IsProduction())

	writeSuccess(w, SuccessResponse{Success: true, Message: "Вход выполнен успешно"}, http.StatusOK)
}

// Logout always clears the cookie. A revocation failure is logged and does
// not fail the request.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if token := auth.TokenFromRequest(r); token != "" {
		if err := h.AuthService.Logout(r.Context(), token); err != nil {
			log.Error().Err(err).Msg("Не удалось отозвать сессию")
		}
	}

	auth.ClearSessionCookie(w, h.Cfg.IsProduction())

	writeSuccess(w, SuccessResponse{Success: true, Message: "Выход выполнен"}, http.StatusOK)
}
