// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reviewpress/internal/storage"
)

func TestMediaUploadWithoutStorage(t *testing.T) {
	a := &Admin{}
	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", strings.NewReader(""))
	rec := httptest.NewRecorder()

	a.MediaUpload(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestMediaUploadRequiresUser(t *testing.T) {
	a := &Admin{storage: &storage.Client{}}
	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", strings.NewReader(""))
	rec := httptest.NewRecorder()

	a.MediaUpload(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
