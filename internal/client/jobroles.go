package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/yourusername/careers-web/internal/model"
)

// roleParams renders filters as the query string the roles API expects.
// Multi-value filters are repeated; unset fields are omitted entirely.
func roleParams(f model.JobRoleFilters) url.Values {
	params := url.Values{}
	if f.RoleName != "" {
		params.Set("roleName", f.RoleName)
	}
	if f.Location != "" {
		params.Set("location", f.Location)
	}
	if f.ClosingDate != "" {
		params.Set("closingDate", f.ClosingDate)
	}
	for _, capability := range f.Capability {
		params.Add("capability", capability)
	}
	for _, band := range f.Band {
		params.Add("band", band)
	}
	if f.OrderBy != "" {
		params.Set("orderBy", f.OrderBy)
	}
	if f.OrderDir != "" {
		params.Set("orderDir", f.OrderDir)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}
	return params
}

// OpenJobRoles lists open roles matching the filters. The second return
// is the X-Total-Count header when the API supplies one, else -1.
func (c *Client) OpenJobRoles(ctx context.Context, f model.JobRoleFilters, token string) ([]model.JobRole, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/job-roles/open"), nil)
	if err != nil {
		return nil, -1, fmt.Errorf("creating roles request: %w", err)
	}
	req.URL.RawQuery = roleParams(f).Encode()
	setAuth(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, -1, fmt.Errorf("calling roles endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, -1, errorFromResponse(resp)
	}

	total := -1
	if v := resp.Header.Get("X-Total-Count"); v != "" {
		if n, parseErr := strconv.Atoi(v); parseErr == nil {
			total = n
		}
	}

	var roles []model.JobRole
	if err := json.Unmarshal(readBody(resp.Body), &roles); err != nil {
		return nil, -1, fmt.Errorf("parsing roles response: %w", err)
	}

	log.Info().
		Int("results", len(roles)).
		Int("total", total).
		Msg("Fetched open job roles")

	return roles, total, nil
}

// JobRoleByID fetches one role. A missing role is ErrNotFound; callers
// treat that as "no role", not as a failure.
func (c *Client) JobRoleByID(ctx context.Context, roleID, token string) (*model.JobRole, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/job-roles/"+url.PathEscape(roleID)), nil)
	if err != nil {
		return nil, fmt.Errorf("creating role request: %w", err)
	}
	setAuth(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling role endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var role model.JobRole
	if err := json.Unmarshal(readBody(resp.Body), &role); err != nil {
		return nil, fmt.Errorf("parsing role response: %w", err)
	}

	return &role, nil
}

// CVFile is an uploaded CV held in memory on its way to the API.
type CVFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Apply forwards a CV to the apply endpoint as a multipart form,
// preserving the original filename and declared content type.
func (c *Client) Apply(ctx context.Context, roleID string, cv CVFile, token string) (*model.ApplyForRoleResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="cv"; filename="%s"`, quoteEscaper.Replace(cv.Filename)))
	header.Set("Content-Type", cv.ContentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("creating multipart body: %w", err)
	}
	if _, err := part.Write(cv.Data); err != nil {
		return nil, fmt.Errorf("writing multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.url("/api/job-roles/"+url.PathEscape(roleID)+"/apply"), &buf)
	if err != nil {
		return nil, fmt.Errorf("creating apply request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setAuth(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling apply endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errorFromResponse(resp)
	}

	var out model.ApplyForRoleResponse
	if err := json.Unmarshal(readBody(resp.Body), &out); err != nil {
		return nil, fmt.Errorf("parsing apply response: %w", err)
	}

	log.Info().
		Str("roleId", roleID).
		Str("filename", cv.Filename).
		Int("bytes", len(cv.Data)).
		Str("status", out.ApplicationStatus).
		Msg("CV forwarded to apply endpoint")

	return &out, nil
}
