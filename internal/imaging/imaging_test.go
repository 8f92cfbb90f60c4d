package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantExt string
		wantOK  bool
	}{
		{"png", pngBytes(t, 2, 2), "png", true},
		{"gif", []byte("GIF89a\x01\x00\x01\x00"), "gif", true},
		{"text", []byte("hello world"), "", false},
		{"pdf", []byte("%PDF-1.4"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ext, ok := Detect(tt.data)
			if ok != tt.wantOK || ext != tt.wantExt {
				t.Errorf("Detect = (%q, %v), want (%q, %v)", ext, ok, tt.wantExt, tt.wantOK)
			}
		})
	}
}

func TestMakeThumbnail(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantWidth int
		wantH     int
	}{
		{"downscaled", 800, 600, ThumbnailWidth, 300},
		{"kept when narrow", 200, 100, 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := MakeThumbnail(pngBytes(t, tt.w, tt.h), ThumbnailWidth)
			if err != nil {
				t.Fatalf("MakeThumbnail: %v", err)
			}
			if th.Width != tt.w || th.Height != tt.h {
				t.Errorf("original size = %dx%d", th.Width, th.Height)
			}
			cfg, err := jpeg.DecodeConfig(bytes.NewReader(th.Data))
			if err != nil {
				t.Fatalf("thumbnail is not a JPEG: %v", err)
			}
			if cfg.Width != tt.wantWidth || cfg.Height != tt.wantH {
				t.Errorf("thumbnail = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantWidth, tt.wantH)
			}
		})
	}
}

func TestMakeThumbnailInvalid(t *testing.T) {
	if _, err := MakeThumbnail([]byte("not an image"), ThumbnailWidth); err == nil {
		t.Error("expected decode error")
	}
}
