package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/djblanc360/portfolio-backend/errs"
	"github.com/djblanc360/portfolio-backend/services"
)

// sendFunc matches services.SendContactEmail; swapped out in tests.
type sendFunc func(cfg map[string]string, name, email, message string) error

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	config    map[string]string
	send      sendFunc
}

func newContactHandler(cfg map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		config:    cfg,
		send:      services.SendContactEmail,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// sendMessage forwards a contact-form submission to the transactional-email
// collaborator. Validation failures name the field; delivery failures come
// back as a generic upstream error.
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		required := []struct {
			field string
			value string
		}{
			{"name", req.Name},
			{"email", req.Email},
			{"message", req.Message},
		}
		for _, f := range required {
			if strings.TrimSpace(f.value) == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(f.field))
				return
			}
		}

		if !strings.Contains(req.Email, "@") {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "not a valid email address"))
			return
		}

		if err := h.send(h.config, req.Name, req.Email, req.Message); err != nil {
			h.logger.Error().Err(err).Msg("Failed to deliver contact email")
			h.responder.WriteError(w, errs.NewDeliveryError(err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message sent",
		})
	}
}
