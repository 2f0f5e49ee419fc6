// Package api is a small HTTP client for the notes backend, used by the
// terminal client. It wraps the JSON envelope the server speaks.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/forgeapi/notes/internal/common"
	"github.com/forgeapi/notes/internal/server/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, name, password string) error {
	status, raw, err := c.doJSON(ctx, http.MethodPost, "/register", "", credentials{Name: name, Password: password})
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		return common.ErrorConflict
	case http.StatusBadRequest:
		return common.ErrorInvalidInput
	default:
		return fmt.Errorf("register failed: %s", statusMessage(status, raw))
	}
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, name, password string) (string, error) {
	status, raw, err := c.doJSON(ctx, http.MethodPost, "/login", "", credentials{Name: name, Password: password})
	if err != nil {
		return "", err
	}
	if status == http.StatusUnauthorized {
		return "", common.ErrorUnauthorized
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("login failed: %s", statusMessage(status, raw))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", err
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

// ListNotes fetches all notes.
func (c *Client) ListNotes(ctx context.Context) ([]models.Note, error) {
	status, raw, err := c.doJSON(ctx, http.MethodGet, "/notes", "", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("listing notes failed: %s", statusMessage(status, raw))
	}

	var result []models.Note
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateNote adds a note.
func (c *Client) CreateNote(ctx context.Context, text string) (*models.Note, error) {
	status, raw, err := c.doJSON(ctx, http.MethodPost, "/notes", "", map[string]string{"text": text})
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("creating note failed: %s", statusMessage(status, raw))
	}

	note := &models.Note{}
	if err := json.Unmarshal(raw, note); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote replaces a note's text. Requires a token.
func (c *Client) UpdateNote(ctx context.Context, token, id, text string) (*models.Note, error) {
	status, raw, err := c.doJSON(ctx, http.MethodPut, "/notes/"+id, token, map[string]string{"text": text})
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, common.ErrorUnauthorized
	case http.StatusNotFound:
		return nil, common.ErrorNotFound
	default:
		return nil, fmt.Errorf("updating note failed: %s", statusMessage(status, raw))
	}

	note := &models.Note{}
	if err := json.Unmarshal(raw, note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note. Requires a token.
func (c *Client) DeleteNote(ctx context.Context, token, id string) error {
	status, raw, err := c.doJSON(ctx, http.MethodDelete, "/notes/"+id, token, nil)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("deleting note failed: %s", statusMessage(status, raw))
	}
}

// statusMessage extracts the server's failure message when the body carries
// the standard envelope, falling back to the HTTP status text.
func statusMessage(status int, raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return http.StatusText(status)
}
