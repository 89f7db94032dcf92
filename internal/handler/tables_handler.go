package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type DatabaseHealthResponse struct {
	Connected   bool     `json:"connected"`
	Tables      []string `json:"tables"`
	CountTables int      `json:"countTables"`
	Error       string   `json:"error,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// DatabaseHealth lists the public tables, which doubles as a connectivity
// probe.
func (h *Handlers) DatabaseHealth(w http.ResponseWriter, r *http.Request) {
	tables, err := h.TablesService.ListTables(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Проверка базы данных не пройдена")
		writeSuccess(w, DatabaseHealthResponse{
			Connected: false,
			Tables:    []string{},
			Error:     "База данных недоступна",
		}, http.StatusInternalServerError)
		return
	}

	writeSuccess(w, DatabaseHealthResponse{
		Connected:   true,
		Tables:      tables,
		CountTables: len(tables),
	}, http.StatusOK)
}
