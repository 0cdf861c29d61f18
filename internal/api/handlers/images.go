package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/baharkarakas/mini-linkedin/internal/imagerelay"
	"github.com/baharkarakas/mini-linkedin/internal/metrics"
)

// multipartSlack covers boundaries and part headers around the file itself.
const multipartSlack = 64 << 10

// Uploader reads one image from a multipart request and passes it to the relay.
type Uploader struct {
	Relay    imagerelay.Relay
	MaxBytes int64
}

func (u Uploader) maxBytes() int64 {
	if u.MaxBytes <= 0 {
		return imagerelay.DefaultMaxBytes
	}
	return u.MaxBytes
}

// readImage returns the first file found under fields, in order.
func (u Uploader) readImage(w http.ResponseWriter, r *http.Request, fields ...string) ([]byte, string, error) {
	limit := u.maxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartSlack)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, "", fmt.Errorf("file too large: %w", apperr.ErrInvalidInput)
		}
		return nil, "", fmt.Errorf("expected multipart form: %w", apperr.ErrInvalidInput)
	}
	defer r.MultipartForm.RemoveAll()

	for _, field := range fields {
		f, hdr, err := r.FormFile(field)
		if err != nil {
			continue
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, limit+1))
		if err != nil {
			return nil, "", fmt.Errorf("read upload: %w", apperr.ErrInvalidInput)
		}
		mime := hdr.Header.Get("Content-Type")
		if mime == "" || mime == "application/octet-stream" {
			mime = http.DetectContentType(data)
		}
		return data, mime, nil
	}
	return nil, "", fmt.Errorf("no file uploaded: %w", apperr.ErrInvalidInput)
}

// Upload reads and relays the image, counting the outcome.
func (u Uploader) Upload(w http.ResponseWriter, r *http.Request, fields ...string) (imagerelay.Upload, error) {
	data, mime, err := u.readImage(w, r, fields...)
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return imagerelay.Upload{}, err
	}
	up, err := u.Relay.UploadImage(r.Context(), data, mime)
	switch {
	case err == nil:
		metrics.ImageUploads.WithLabelValues("ok").Inc()
	case errors.Is(err, apperr.ErrInvalidInput):
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
	default:
		metrics.ImageUploads.WithLabelValues("failed").Inc()
	}
	if err != nil {
		return imagerelay.Upload{}, fmt.Errorf("upload image: %w", err)
	}
	return up, nil
}
