package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mpetrashin/tokengate/internal/common"
)

func newStubServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSignUp_Success(t *testing.T) {
	srv := newStubServer(t, http.StatusCreated, map[string]string{"id": "id-1", "email": "a@b.com"})
	c := NewHTTPClient(srv.URL)

	u, err := c.SignUp(context.Background(), "a@b.com", "longenough")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "id-1" || u.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestSignUp_Conflict(t *testing.T) {
	srv := newStubServer(t, http.StatusConflict, map[string]string{"error": "User with this email already exists"})
	c := NewHTTPClient(srv.URL)

	_, err := c.SignUp(context.Background(), "a@b.com", "longenough")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}
}

func TestSignUp_ValidationCarriesServerMessage(t *testing.T) {
	srv := newStubServer(t, http.StatusBadRequest, map[string]string{"error": "Invalid email format"})
	c := NewHTTPClient(srv.URL)

	_, err := c.SignUp(context.Background(), "bad", "longenough")

	var verr *common.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Invalid email format" {
		t.Fatalf("message mismatch: %q", verr.Message)
	}
}

func TestSignUp_ServerErrorIsOpaque(t *testing.T) {
	srv := newStubServer(t, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	c := NewHTTPClient(srv.URL)

	_, err := c.SignUp(context.Background(), "a@b.com", "longenough")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, map[string]string{"token": "tok-1"})
	c := NewHTTPClient(srv.URL)

	token, err := c.Login(context.Background(), "a@b.com", "longenough")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("token mismatch: %q", token)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := newStubServer(t, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	c := NewHTTPClient(srv.URL)

	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_ServerUnreachable(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, nil)
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url)
	_, err := c.Login(context.Background(), "a@b.com", "pw")
	if err == nil {
		t.Fatalf("expected transport error")
	}
}
