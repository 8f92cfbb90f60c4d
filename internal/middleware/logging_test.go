package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    int
		body    string
	}{
		{
			name:    "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			want:    http.StatusNotFound,
		},
		{
			name:    "implicit 200 on write",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("hello")) },
			want:    http.StatusOK,
			body:    "hello",
		},
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			want:    http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Logger(tt.handler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/read/x", nil))
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
			if rr.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rr.Body.String(), tt.body)
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Run("first WriteHeader wins", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
		rec.WriteHeader(http.StatusCreated)
		rec.WriteHeader(http.StatusInternalServerError)
		if rec.status != http.StatusCreated {
			t.Errorf("status = %d, want 201", rec.status)
		}
	})

	t.Run("write after header keeps status", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
		rec.WriteHeader(http.StatusAccepted)
		if _, err := rec.Write([]byte("x")); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if rec.status != http.StatusAccepted || !rec.written {
			t.Errorf("status = %d written = %v", rec.status, rec.written)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: inner}
		if rec.Unwrap() != inner {
			t.Error("Unwrap should return the wrapped writer")
		}
	})
}
