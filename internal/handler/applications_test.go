package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDownloadCVReissuesRedirect(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /api/applications/cv", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("applicationId") != "31" {
			t.Errorf("applicationId = %q", r.URL.Query().Get("applicationId"))
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Location", "https://bucket.example.com/cv.pdf?signature=abc")
		w.WriteHeader(http.StatusFound)
	})
	r := newTestRouter(t, upstream, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withToken(httptest.NewRequest(http.MethodGet, "/api/applications/cv?applicationId=31", nil)))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "https://bucket.example.com/cv.pdf?signature=abc" {
		t.Errorf("Location = %q, the presigned URL should be re-issued", loc)
	}
}

func TestDownloadCVWithoutToken(t *testing.T) {
	r := newTestRouter(t, http.NewServeMux(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/applications/cv?applicationId=31", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestDownloadCVMissingApplicationID(t *testing.T) {
	r := newTestRouter(t, http.NewServeMux(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withToken(httptest.NewRequest(http.MethodGet, "/api/applications/cv", nil)))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDownloadCVForbidden(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("GET /api/applications/cv", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	r := newTestRouter(t, upstream, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withToken(httptest.NewRequest(http.MethodGet, "/api/applications/cv?applicationId=31", nil)))

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestJobApplicationsPage(t *testing.T) {
	r := newTestRouter(t, http.NewServeMux(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/job-applications", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "My Applications") {
		t.Error("the applications page should render")
	}
}
