package imagerelay

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// Stored images are shrunk to fit these bounds, never enlarged.
const (
	DefaultMaxWidth  = 800
	DefaultMaxHeight = 600
)

// fitWithin returns the largest size with w:h's aspect ratio inside maxW x maxH.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	ratio := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := min(maxW, max(1, int(math.Round(float64(w)*ratio))))
	nh := min(maxH, max(1, int(math.Round(float64(h)*ratio))))
	return nw, nh
}

// Fit scales data down to fit maxW x maxH and re-encodes it. Images already
// within bounds are returned untouched. There is no webp encoder, so a
// resized webp comes back as png. Animated gifs keep their first frame only.
func Fit(data []byte, img Image, maxW, maxH int) ([]byte, Image, error) {
	if maxW <= 0 || maxH <= 0 {
		return data, img, nil
	}
	w, h := fitWithin(img.Width, img.Height, maxW, maxH)
	if w == img.Width && h == img.Height {
		return data, img, nil
	}

	original, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Image{}, fmt.Errorf("decode image: %w", err)
	}
	bitmap := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(bitmap, bitmap.Bounds(), original, original.Bounds(), draw.Over, nil)

	out := img
	out.Width, out.Height = w, h
	var buf bytes.Buffer
	switch img.Format {
	case "jpeg":
		err = jpeg.Encode(&buf, bitmap, &jpeg.Options{Quality: 85})
	case "gif":
		err = gif.Encode(&buf, bitmap, nil)
	default:
		out.Format, out.MIMEType, out.Ext = "png", "image/png", extensions["png"]
		err = png.Encode(&buf, bitmap)
	}
	if err != nil {
		return nil, Image{}, fmt.Errorf("encode %s: %w", out.Format, err)
	}
	return buf.Bytes(), out, nil
}
