package api

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/djblanc360/portfolio-backend/errs"
	"github.com/djblanc360/portfolio-backend/services"
)

// imageStore is the slice of the uploader the handler needs.
type imageStore interface {
	Upload(ctx context.Context, filename string, payload []byte, contentType string) (string, error)
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  imageStore
}

func newUploadHandler(uploader imageStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

const maxUploadBytes = 10 << 20 // 10MB

// uploadImage accepts a multipart "image" part, stores it in object storage,
// and returns the public URL to put into a project's imageUrl.
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "uploads are not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}
		defer file.Close()

		payload, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read upload"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), services.UploadTimeout)
		defer cancel()

		url, err := h.uploader.Upload(ctx, header.Filename, payload, header.Header.Get("Content-Type"))
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to upload image")
			h.responder.WriteError(w, errs.NewUploadError("put object", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}
