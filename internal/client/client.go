package client

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// Client wraps the job-roles/applications API consumed by the web tier.
// All reads and writes pass through to the API; the web tier holds no
// authoritative copy of any entity.
type Client struct {
	baseURL string
	http    *http.Client

	// noRedirect is used for the CV download endpoint, where the 302 to
	// the presigned URL must be captured rather than followed.
	noRedirect *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		noRedirect: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// setAuth attaches the bearer token when one is present. The token is
// opaque to the web tier; the API enforces access.
func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// readBody drains a response body with a cap so a misbehaving upstream
// can't balloon memory.
func readBody(r io.Reader) []byte {
	body, _ := io.ReadAll(io.LimitReader(r, 1<<20))
	return body
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}
