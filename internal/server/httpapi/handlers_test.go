package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrashin/tokengate/internal/common"
	"github.com/mpetrashin/tokengate/internal/logging"
	"github.com/mpetrashin/tokengate/internal/server/auth"
	"github.com/mpetrashin/tokengate/internal/server/config"
	"github.com/mpetrashin/tokengate/internal/server/models"
	"github.com/mpetrashin/tokengate/internal/server/services"
)

// memoryUsersRepo enforces email uniqueness like the real store does, so the
// handler tests can exercise the signup/conflict path end to end.
type memoryUsersRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemoryUsersRepo() *memoryUsersRepo {
	return &memoryUsersRepo{users: make(map[string]*models.User)}
}

func (r *memoryUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.CreatedAt = time.Now()
	r.users[u.Email] = u
	return u, nil
}

func (r *memoryUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
		BcryptCost:            4,
		CORSAllowOrigins:      []string{"http://localhost:5173"},
	}
	svc := services.NewUserService(newMemoryUsersRepo(), cfg)
	logger := logging.NewJSONLogger(io.Discard)
	return NewRouter(cfg, svc, logger)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAuthFlow_Scenario(t *testing.T) {
	router := newTestRouter(t)

	// Short password is rejected with the exact message.
	w := doJSON(t, router, http.MethodPost, "/signup", creds("a@b.com", "short"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password must be at least 8 characters long", decodeBody(t, w)["error"])

	// Valid signup succeeds and echoes id+email only.
	w = doJSON(t, router, http.MethodPost, "/signup", creds("a@b.com", "longenough"))
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "a@b.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")

	// Second signup with the same email conflicts.
	w = doJSON(t, router, http.MethodPost, "/signup", creds("a@b.com", "longenough"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User with this email already exists", decodeBody(t, w)["error"])

	// Wrong password is rejected.
	w = doJSON(t, router, http.MethodPost, "/login", creds("a@b.com", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])

	// Correct password yields a decodable token.
	w = doJSON(t, router, http.MethodPost, "/login", creds("a@b.com", "longenough"))
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)

	userID, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.NotEmpty(t, userID)
}

func TestLogin_UnknownEmailBodyMatchesWrongPasswordBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/signup", creds("a@b.com", "longenough"))
	require.Equal(t, http.StatusCreated, w.Code)

	unknown := doJSON(t, router, http.MethodPost, "/login", creds("nobody@b.com", "longenough"))
	wrongPw := doJSON(t, router, http.MethodPost, "/login", creds("a@b.com", "not-the-password"))

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestSignUp_ValidationMessages(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		payload any
		wantMsg string
	}{
		{name: "missing fields", payload: map[string]string{}, wantMsg: "Email and password are required"},
		{name: "bad email", payload: creds("not-an-email", "longenough"), wantMsg: "Invalid email format"},
		{name: "short password", payload: creds("a@b.com", "short"), wantMsg: "Password must be at least 8 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/signup", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, w)["error"])
		})
	}
}

func TestSignUp_MalformedJSONBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password are required", decodeBody(t, w)["error"])
}

func TestLogin_DoesNotRevalidatePasswordLength(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/signup", creds("a@b.com", "longenough"))
	require.Equal(t, http.StatusCreated, w.Code)

	// A short candidate reaches credential verification and fails with 401,
	// not with the signup length message.
	w = doJSON(t, router, http.MethodPost, "/login", creds("a@b.com", "short"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

// creds builds a credentials payload.
func creds(email, password string) map[string]string {
	return map[string]string{"email": email, "password": password}
}
