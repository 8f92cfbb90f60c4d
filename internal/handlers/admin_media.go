// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"reviewpress/internal/imaging"
	"reviewpress/internal/models"
	"reviewpress/internal/render"
	"reviewpress/internal/storage"
)

const (
	// maxUploadSize is the largest accepted upload.
	maxUploadSize = 10 << 20

	mediaListLimit = 200
)

// mediaView is a media row with its public URLs resolved.
type mediaView struct {
	models.Media
	URL      string
	ThumbURL string
}

// uploadResponse is the JSON answer of a successful upload.
type uploadResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// MediaLibrary renders the uploaded files.
func (a *Admin) MediaLibrary(w http.ResponseWriter, r *http.Request) {
	items, err := a.media.List(r.Context(), mediaListLimit, 0)
	if err != nil {
		slog.Error("list media failed", "error", err)
	}

	views := make([]mediaView, 0, len(items))
	for _, m := range items {
		v := mediaView{Media: m}
		if a.storage != nil {
			v.URL = a.storage.FileURL(m.S3Key)
			if m.ThumbS3Key != nil {
				v.ThumbURL = a.storage.FileURL(*m.ThumbS3Key)
			}
		}
		views = append(views, v)
	}

	a.renderer.Page(w, r, "media", &render.PageData{
		Title:   "Media",
		Section: "media",
		Data: map[string]any{
			"Items":          views,
			"StorageEnabled": a.storage != nil,
		},
		Flashes: flashesFrom(r),
	})
}

// MediaUpload stores an image in S3 with a JPEG thumbnail and answers with
// its public URL as JSON. Forms posting redirect=1 are sent back to the
// library instead.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}
	user := currentUser(r)
	if user == nil {
		writeJSONError(w, http.StatusUnauthorized, "Not signed in.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "File is too large (max 10 MB).")
			return
		}
		writeJSONError(w, http.StatusBadRequest, "Invalid upload.")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "No file provided.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Could not read the file.")
		return
	}
	if len(data) > maxUploadSize {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "File is too large (max 10 MB).")
		return
	}
	mimeType, ext, ok := imaging.Detect(data)
	if !ok {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Only JPEG, PNG, GIF and WebP images are accepted.")
		return
	}

	ctx := r.Context()
	key := storage.ObjectKey(time.Now(), ext)
	if err := a.storage.Upload(ctx, key, mimeType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("media upload failed", "key", key, "error", err)
		writeJSONError(w, http.StatusBadGateway, "Upload to storage failed.")
		return
	}

	var thumbKey *string
	if thumb, err := imaging.MakeThumbnail(data, imaging.ThumbnailWidth); err != nil {
		slog.Warn("thumbnail not generated", "key", key, "error", err)
	} else {
		tk := storage.ThumbnailKey(key)
		if err := a.storage.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumb.Data), int64(len(thumb.Data))); err != nil {
			slog.Warn("thumbnail upload failed", "key", tk, "error", err)
		} else {
			thumbKey = &tk
		}
	}

	m, err := a.media.Create(ctx, &models.Media{
		Filename:     path.Base(key),
		OriginalName: header.Filename,
		ContentType:  mimeType,
		SizeBytes:    int64(len(data)),
		S3Key:        key,
		ThumbS3Key:   thumbKey,
		UploaderID:   user.ID,
	})
	if err != nil {
		slog.Error("media record not saved", "key", key, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Could not record the upload.")
		return
	}
	slog.Info("media uploaded", "media_id", m.ID, "key", key, "size", m.SizeBytes, "user_id", user.ID)

	if r.FormValue("redirect") == "1" {
		http.Redirect(w, r, "/admin/media?flash=uploaded", http.StatusSeeOther)
		return
	}

	resp := uploadResponse{ID: m.ID.String(), URL: a.storage.FileURL(key)}
	if thumbKey != nil {
		resp.ThumbnailURL = a.storage.FileURL(*thumbKey)
	}
	writeJSON(w, http.StatusCreated, resp)
}

// MediaDelete removes a media record and its objects.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	m, err := a.media.Delete(ctx, id)
	if err != nil {
		slog.Error("delete media failed", "media_id", id, "error", err)
		http.Redirect(w, r, "/admin/media?flash=failed", http.StatusSeeOther)
		return
	}
	if m == nil {
		http.NotFound(w, r)
		return
	}

	if a.storage != nil {
		keys := []string{m.S3Key}
		if m.ThumbS3Key != nil {
			keys = append(keys, *m.ThumbS3Key)
		}
		for _, k := range keys {
			if err := a.storage.Delete(ctx, k); err != nil {
				slog.Warn("storage object not deleted", "key", k, "error", err)
			}
		}
	}

	http.Redirect(w, r, "/admin/media?flash=deleted", http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write json failed", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
