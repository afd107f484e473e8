package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// seeder loads demo content, reporting whether anything was inserted.
type seeder interface {
	Seed() (bool, error)
}

type maintenanceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	seeder      seeder
	startupTime time.Time
}

func newMaintenanceHandler(s seeder, startupTime time.Time) maintenanceHandler {
	logger := log.With().Str("handlerName", "maintenanceHandler").Logger()

	return maintenanceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		seeder:      s,
		startupTime: startupTime,
	}
}

func (h maintenanceHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"uptime": time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}

// seed loads demo content once; repeat calls are no-ops.
func (h maintenanceHandler) seed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seeded, err := h.seeder.Seed()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("seed", "demo content", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"seeded": seeded,
		})
	}
}
