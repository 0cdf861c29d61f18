package imagerelay

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	_ "golang.org/x/image/webp"
)

// DefaultMaxBytes is the largest accepted image.
const DefaultMaxBytes = 5 << 20

var extensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// Image is an upload that passed Validate.
type Image struct {
	Format   string // jpeg, png, gif or webp
	MIMEType string
	Ext      string
	Width    int
	Height   int
}

// Validate checks size, declared mimetype and that the bytes decode as one
// of the supported formats.
func Validate(data []byte, mimeType string, maxBytes int64) (Image, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("no image provided: %w", apperr.ErrInvalidInput)
	}
	if int64(len(data)) > maxBytes {
		return Image{}, fmt.Errorf("image exceeds %d bytes: %w", maxBytes, apperr.ErrInvalidInput)
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/") {
		return Image{}, fmt.Errorf("only image files are allowed, got %q: %w", mimeType, apperr.ErrInvalidInput)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("unreadable image: %w", apperr.ErrInvalidInput)
	}
	ext, ok := extensions[format]
	if !ok {
		return Image{}, fmt.Errorf("unsupported image format %q: %w", format, apperr.ErrInvalidInput)
	}
	return Image{
		Format:   format,
		MIMEType: "image/" + format,
		Ext:      ext,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}
