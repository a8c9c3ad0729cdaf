package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yourusername/careers-web/internal/model"
)

// RoleApplications lists applications for a role. The endpoint is
// admin-only upstream; 401/403 surface as ErrUnauthorized/ErrForbidden
// so the caller can hide the panel instead of failing the page.
func (c *Client) RoleApplications(ctx context.Context, roleID, token string) ([]model.JobRoleApplication, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.url("/api/job-roles/"+url.PathEscape(roleID)+"/applications"), nil)
	if err != nil {
		return nil, fmt.Errorf("creating applications request: %w", err)
	}
	setAuth(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling applications endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var apps []model.JobRoleApplication
	if err := json.Unmarshal(readBody(resp.Body), &apps); err != nil {
		return nil, fmt.Errorf("parsing applications response: %w", err)
	}

	return apps, nil
}

// HireApplication marks an application as hired.
func (c *Client) HireApplication(ctx context.Context, applicationID, token string) error {
	return c.assess(ctx, applicationID, "hire", token)
}

// RejectApplication marks an application as rejected.
func (c *Client) RejectApplication(ctx context.Context, applicationID, token string) error {
	return c.assess(ctx, applicationID, "reject", token)
}

func (c *Client) assess(ctx context.Context, applicationID, action, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.url("/api/applications/"+url.PathEscape(applicationID)+"/"+action), nil)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", action, err)
	}
	setAuth(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s endpoint: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errorFromResponse(resp)
	}

	return nil
}

// CVDownloadURL asks the API for a CV download and captures the 302 to
// the presigned URL instead of following it, so the redirect can be
// re-issued to the browser.
func (c *Client) CVDownloadURL(ctx context.Context, applicationID, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/applications/cv"), nil)
	if err != nil {
		return "", fmt.Errorf("creating cv request: %w", err)
	}
	req.URL.RawQuery = url.Values{"applicationId": {applicationID}}.Encode()
	setAuth(req, token)

	resp, err := c.noRedirect.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling cv endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return "", errorFromResponse(resp)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("cv endpoint returned no download URL")
	}

	return location, nil
}
