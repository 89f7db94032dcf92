package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"personalblog/internal/models"
)

const internalErrorMessage = "Внутренняя ошибка сервера"

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError - универсальная функция для отправки ошибок
func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Ошибка кодирования ответа")
	}
}

func statusForKind(kind error) int {
	switch {
	case errors.Is(kind, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, models.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the message of a DomainError and hides
// everything else behind a logged generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, domainErr.Message, statusForKind(domainErr.Kind))
		return
	}

	log.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Ошибка при обработке запроса")
	writeError(w, internalErrorMessage, http.StatusInternalServerError)
}
