package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageStore struct {
	filename    string
	payload     []byte
	contentType string
	url         string
	err         error
}

func (f *fakeImageStore) Upload(ctx context.Context, filename string, payload []byte, contentType string) (string, error) {
	f.filename = filename
	f.payload = payload
	f.contentType = contentType
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func multipartImageRequest(t *testing.T, field, filename string, payload []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	t.Run("answers unavailable when storage is not configured", func(t *testing.T) {
		handler := newUploadHandler(nil)

		rec := httptest.NewRecorder()
		handler.uploadImage()(rec, multipartImageRequest(t, "image", "photo.png", []byte("png-bytes")))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("stores the image part and returns its public URL", func(t *testing.T) {
		store := &fakeImageStore{url: "https://bucket.s3.us-west-2.amazonaws.com/projects/abc.png"}
		handler := newUploadHandler(store)

		rec := httptest.NewRecorder()
		handler.uploadImage()(rec, multipartImageRequest(t, "image", "photo.png", []byte("png-bytes")))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, store.url, resp["url"])
		assert.Equal(t, "photo.png", store.filename)
		assert.Equal(t, []byte("png-bytes"), store.payload)
	})

	t.Run("missing image part is a validation failure", func(t *testing.T) {
		handler := newUploadHandler(&fakeImageStore{})

		rec := httptest.NewRecorder()
		handler.uploadImage()(rec, multipartImageRequest(t, "attachment", "photo.png", []byte("png-bytes")))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "image", resp["field"])
	})

	t.Run("storage failure surfaces as a bad gateway", func(t *testing.T) {
		handler := newUploadHandler(&fakeImageStore{err: errors.New("s3: access denied")})

		rec := httptest.NewRecorder()
		handler.uploadImage()(rec, multipartImageRequest(t, "image", "photo.png", []byte("png-bytes")))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotContains(t, rec.Body.String(), "access denied")
	})
}
