package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/asilingas/fambudg/pkg/access"
)

// IdentityAPI is the slice of the server the session store talks to:
// resolving a persisted token to an identity, and exchanging credentials for
// a token.
type IdentityAPI interface {
	ResolveIdentity(ctx context.Context, token string) (access.Principal, error)
	Login(ctx context.Context, email, password string) (token string, p access.Principal, err error)
}

// defaultTimeout bounds the identity-resolution and login calls. A timed-out
// resolution is treated like any other resolution failure, so a dead server
// degrades the session to anonymous instead of hanging startup forever.
const defaultTimeout = 10 * time.Second

// Client is the HTTP IdentityAPI implementation.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an identity client for the given server base URL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// SetHTTPClient overrides the underlying HTTP client (timeout policy, test
// transports).
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// ResolveIdentity asks the server who the bearer of token is. Any non-2xx
// response or transport error is a resolution failure; callers treat all
// failures uniformly as "not authenticated".
func (c *Client) ResolveIdentity(ctx context.Context, token string) (access.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return access.Principal{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return access.Principal{}, fmt.Errorf("resolve identity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return access.Principal{}, fmt.Errorf("resolve identity: status %d", resp.StatusCode)
	}

	var p access.Principal
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return access.Principal{}, fmt.Errorf("decode identity: %w", err)
	}
	return p, nil
}

// loginResponse mirrors the login endpoint's success payload.
type loginResponse struct {
	Token string           `json:"token"`
	User  access.Principal `json:"user"`
}

// Login exchanges credentials for a token and identity. On rejection the
// server's error message, when present, is returned verbatim so the caller
// can display it.
func (c *Client) Login(ctx context.Context, email, password string) (string, access.Principal, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", access.Principal{}, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", access.Principal{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", access.Principal{}, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", access.Principal{}, errors.New(loginErrorMessage(resp.Body))
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", access.Principal{}, fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return "", access.Principal{}, errors.New("login failed")
	}
	return lr.Token, lr.User, nil
}

// loginErrorMessage extracts the server's error message from a rejected login,
// falling back to a generic indicator when the payload carries none.
func loginErrorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "login failed"
}
