// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging inspects uploaded images and produces the JPEG thumbnail
// stored next to each media file.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// ThumbnailWidth is the maximum width of generated thumbnails.
	ThumbnailWidth = 400
	jpegQuality    = 80
)

// allowedTypes maps accepted MIME types to their file extension.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Detect sniffs the MIME type of data and returns it with its extension.
// ok is false for anything but JPEG, PNG, GIF and WebP.
func Detect(data []byte) (mimeType, ext string, ok bool) {
	mimeType = http.DetectContentType(data)
	ext, ok = allowedTypes[mimeType]
	return mimeType, ext, ok
}

// Thumbnail holds an encoded thumbnail and the original's dimensions.
type Thumbnail struct {
	Data   []byte
	Width  int // original width
	Height int // original height
}

// MakeThumbnail decodes src and returns a JPEG no wider than maxWidth.
// Narrower images are re-encoded at their own size.
func MakeThumbnail(src []byte, maxWidth int) (*Thumbnail, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("decode image: empty bounds")
	}

	out := img
	if maxWidth > 0 && w > maxWidth {
		newH := h * maxWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return &Thumbnail{Data: buf.Bytes(), Width: w, Height: h}, nil
}
