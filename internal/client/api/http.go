package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mpetrashin/tokengate/internal/common"
)

const requestTimeout = 10 * time.Second

// HTTPClient talks JSON to the auth server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) SignUp(ctx context.Context, email, password string) (*User, error) {
	resp, body, err := c.postJSON(ctx, "/signup", credentialsPayload{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		user := &User{}
		if err := json.Unmarshal(body, user); err != nil {
			return nil, fmt.Errorf("error decoding signup response: %w", err)
		}
		return user, nil
	case http.StatusBadRequest:
		return nil, common.NewValidationError(decodeErrorMessage(body))
	case http.StatusConflict:
		return nil, common.ErrorAlreadyExists
	default:
		return nil, common.ErrorInternal
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, body, err := c.postJSON(ctx, "/login", credentialsPayload{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var out struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			return "", fmt.Errorf("error decoding login response: %w", err)
		}
		return out.Token, nil
	case http.StatusBadRequest:
		return "", common.NewValidationError(decodeErrorMessage(body))
	case http.StatusUnauthorized:
		return "", common.ErrorUnauthorized
	default:
		return "", common.ErrorInternal
	}
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any) (*http.Response, []byte, error) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, nil, fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	body := &bytes.Buffer{}
	if _, err := body.ReadFrom(resp.Body); err != nil {
		return nil, nil, err
	}
	return resp, body.Bytes(), nil
}

func decodeErrorMessage(body []byte) string {
	var out errorResponse
	if err := json.Unmarshal(body, &out); err != nil || out.Error == "" {
		return "request rejected"
	}
	return out.Error
}
