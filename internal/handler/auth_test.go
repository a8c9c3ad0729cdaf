package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoginSuccessSetsCookieAndRedirects(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"token":"tok-abc"}`)
	})
	r := newTestRouter(t, upstream, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/login", "email=a%40b.com&password=pw"))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/job-roles" {
		t.Errorf("Location = %q, want /job-roles", loc)
	}

	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "token=tok-abc") {
		t.Errorf("Set-Cookie = %q, should carry the token", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") || !strings.Contains(cookie, "SameSite=Strict") {
		t.Errorf("Set-Cookie = %q, should be HttpOnly and SameSite=Strict", cookie)
	}
}

func TestLoginMissingPassword(t *testing.T) {
	r := newTestRouter(t, http.NewServeMux(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/login", "email=a%40b.com"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please provide a valid email and password.") {
		t.Error("body should carry the validation message")
	}
	if w.Header().Get("Location") != "" {
		t.Error("validation failure must not redirect")
	}
	if w.Header().Get("Set-Cookie") != "" {
		t.Error("validation failure must not set a cookie")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r := newTestRouter(t, upstream, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/login", "email=a%40b.com&password=bad"))

	if !strings.Contains(w.Body.String(), "Invalid email or password.") {
		t.Error("upstream 401 should surface as invalid credentials")
	}
}

func TestLoginUpstreamFailure(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	r := newTestRouter(t, upstream, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/login", "email=a%40b.com&password=pw"))

	if !strings.Contains(w.Body.String(), "Login failed. Please try again.") {
		t.Error("non-401 failures should use the generic retry message")
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(t, http.NewServeMux(), nil)

	w := httptest.NewRecorder()
	req := withToken(httptest.NewRequest(http.MethodPost, "/logout", nil))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Errorf("logout should redirect to /, got %d %q", w.Code, w.Header().Get("Location"))
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "token=") || !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("Set-Cookie = %q, should expire the token", cookie)
	}
}

func TestRegisterSuccessRendersLogin(t *testing.T) {
	var gotEmail string
	upstream := http.NewServeMux()
	upstream.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		var creds struct{ Email string }
		json.NewDecoder(r.Body).Decode(&creds)
		gotEmail = creds.Email
		w.WriteHeader(http.StatusCreated)
	})
	r := newTestRouter(t, upstream, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/register", "email=new%40b.com&password=pw"))

	if gotEmail != "new@b.com" {
		t.Errorf("upstream saw email %q", gotEmail)
	}
	if !strings.Contains(w.Body.String(), "Registration successful. Please log in.") {
		t.Error("successful registration should land on the login view")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	r := newTestRouter(t, http.NewServeMux(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/register", "email=a%40b.com"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please provide a valid email and password.") {
		t.Error("body should carry the validation message")
	}
}

func TestRegisterConflict(t *testing.T) {
	upstream := http.NewServeMux()
	upstream.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"message":"Email already registered"}`)
	})
	r := newTestRouter(t, upstream, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/register", "email=a%40b.com&password=pw"))

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email already registered") {
		t.Error("conflict message from the API should be surfaced")
	}
}

func TestValidateLogin(t *testing.T) {
	if ok, _ := validateLogin("a@b.com", "pw"); !ok {
		t.Error("both fields present should validate")
	}
	if ok, errs := validateLogin("", ""); ok || len(errs) != 2 {
		t.Errorf("both fields missing should produce two errors, got %v", errs)
	}
	if ok, errs := validateLogin("a@b.com", ""); ok || len(errs) != 1 {
		t.Errorf("missing password should produce one error, got %v", errs)
	}
}
