// Package api implements the HTTP client for the remote weather/auth
// service. It is stateless: every failure — network error, non-2xx status,
// malformed body — comes back as an ordinary error with a human-readable
// message, never as a panic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/MrRedFox1223/wdash/internal/model"
)

// TokenSource supplies the bearer token for write operations. An empty
// token means the request is sent unauthenticated; the server is
// responsible for rejecting unauthorized writes.
type TokenSource interface {
	Token() string
}

// Client talks to the remote weather/auth service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a client for the service at baseURL. tokens may be nil
// for a read-only client. No request timeout is configured; callers control
// lifetime through the context.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
	}
}

// authClient returns an HTTP client that attaches the current bearer token,
// or the plain client when no token is held.
func (c *Client) authClient(ctx context.Context) *http.Client {
	if c.tokens == nil {
		return c.httpClient
	}
	tok := c.tokens.Token()
	if tok == "" {
		return c.httpClient
	}
	// Route oauth2's transport through our base client.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"})
	return oauth2.NewClient(ctx, ts)
}

// errorBody is the error payload shape returned by the service.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// StatusError reports a non-2xx response, carrying the server's message
// when one could be extracted from the body.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// do executes one request and decodes a 2xx JSON body into out (skipped when
// out is nil or the body is empty). Non-2xx responses become *StatusError.
func (c *Client) do(ctx context.Context, client *http.Client, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// serverMessage extracts detail/message from an error body, falling back to
// the raw body for non-JSON errors.
func serverMessage(data []byte) string {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil {
		if eb.Detail != "" {
			return eb.Detail
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	return strings.TrimSpace(string(data))
}

// List fetches the full weather record list. No authentication is sent.
func (c *Client) List(ctx context.Context) ([]model.WeatherRecord, error) {
	var records []model.WeatherRecord
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/weather", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Update replaces a full record keyed by its ID and returns the server's
// version of it.
func (c *Client) Update(ctx context.Context, rec model.WeatherRecord) (model.WeatherRecord, error) {
	var updated model.WeatherRecord
	if err := c.do(ctx, c.authClient(ctx), http.MethodPut, "/weather", rec, &updated); err != nil {
		return model.WeatherRecord{}, err
	}
	return updated, nil
}

// Create submits a record draft; the server assigns the ID.
func (c *Client) Create(ctx context.Context, draft model.RecordDraft) (model.WeatherRecord, error) {
	var created model.WeatherRecord
	if err := c.do(ctx, c.authClient(ctx), http.MethodPost, "/weather", draft, &created); err != nil {
		return model.WeatherRecord{}, err
	}
	return created, nil
}

// Delete removes the record with the given ID.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, c.authClient(ctx), http.MethodDelete, fmt.Sprintf("/weather/%d", id), nil, nil)
}

// loginRequest is the body for the login endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session. Authorization of the returned
// role is the caller's concern.
func (c *Client) Login(ctx context.Context, username, password string) (model.Session, error) {
	var sess model.Session
	body := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, c.httpClient, http.MethodPost, "/login", body, &sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

// changePasswordRequest is the body for the change-password endpoint.
type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword replaces the current user's password. Requires a bearer
// token; error-code mapping to user-facing messages happens in the session
// store.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := changePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	return c.do(ctx, c.authClient(ctx), http.MethodPost, "/change_password", body, nil)
}
