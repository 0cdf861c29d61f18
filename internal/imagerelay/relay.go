// Package imagerelay stores uploaded images with a hosting provider and hands
// back a durable URL. The rest of the service only sees the Relay interface.
package imagerelay

import "context"

// Upload is a stored image: where to fetch it and the provider's handle for it.
type Upload struct {
	URL      string `json:"imageUrl"`
	PublicID string `json:"publicId"`
}

// Relay accepts raw image bytes. Rejected input wraps apperr.ErrInvalidInput;
// provider faults are returned as plain (internal) errors.
type Relay interface {
	UploadImage(ctx context.Context, data []byte, mimeType string) (Upload, error)
}
