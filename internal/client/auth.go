package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. A 401 surfaces as
// ErrUnauthorized so the controller can show "invalid credentials".
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/api/login"), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling login endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errorFromResponse(resp)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(readBody(resp.Body), &out); err != nil {
		return "", fmt.Errorf("parsing login response: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}

	log.Info().Str("email", email).Msg("Login accepted by API")
	return out.Token, nil
}

// Register creates an account. Conflicts (duplicate email) come back as
// an UpstreamError carrying the API's message.
func (c *Client) Register(ctx context.Context, email, password string) error {
	payload, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("encoding register request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/api/register"), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating register request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling register endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errorFromResponse(resp)
	}

	return nil
}
