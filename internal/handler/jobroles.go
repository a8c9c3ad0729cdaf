package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/careers-web/internal/client"
	"github.com/yourusername/careers-web/internal/config"
	"github.com/yourusername/careers-web/internal/middleware"
	"github.com/yourusername/careers-web/internal/model"
)

// JobRoleHandler serves the role listing, role detail, and the admin
// hire/reject actions.
type JobRoleHandler struct {
	api *client.Client
	cfg *config.Config
}

func NewJobRoleHandler(api *client.Client, cfg *config.Config) *JobRoleHandler {
	return &JobRoleHandler{api: api, cfg: cfg}
}

// List handles GET /job-roles
func (h *JobRoleHandler) List(c *gin.Context) {
	q := c.Request.URL.Query()
	filters := parseRoleFilters(q)
	page := parsePage(q)

	token := middleware.Token(c)
	if token == "" {
		// Browsers get the login page; API-style callers get a 401.
		if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": "Please log in to view job roles",
			"Email": "",
		})
		return
	}

	pageSize := h.cfg.PageSize

	// Fetch one row beyond the page so a next page can be detected
	// without a separate count query.
	filters.Limit = pageSize + 1
	filters.Offset = (page - 1) * pageSize

	roles, totalCount, err := h.api.OpenJobRoles(c.Request.Context(), filters, token)
	if err != nil {
		// A broken listing page helps nobody; render it empty.
		log.Error().Err(err).Msg("Failed to load job roles")
		c.HTML(http.StatusOK, "job-role-list.html", gin.H{
			"Roles":               []model.JobRole{},
			"Filters":             model.JobRoleFilters{},
			"CapabilityOptions":   []string{},
			"BandOptions":         []string{},
			"Pagination":          paginate(1, pageSize, 0, -1),
			"BaseQuery":           template.URL(""),
			"OrderBy":             "",
			"OrderDir":            "",
			"ShowRoleFilteringUI": h.cfg.FeatureRoleFiltering,
			"ShowOrderingUI":      h.cfg.FeatureOrderingUI,
		})
		return
	}

	pagination := paginate(page, pageSize, len(roles), totalCount)
	if len(roles) > pageSize {
		roles = roles[:pageSize]
	}

	capabilityOptions, bandOptions := filterOptions(roles)

	c.HTML(http.StatusOK, "job-role-list.html", gin.H{
		"Roles":               roles,
		"Filters":             filters,
		"CapabilityOptions":   capabilityOptions,
		"BandOptions":         bandOptions,
		"Pagination":          pagination,
		"BaseQuery":           template.URL(baseQueryString(filters)),
		"OrderBy":             filters.OrderBy,
		"OrderDir":            filters.OrderDir,
		"ShowRoleFilteringUI": h.cfg.FeatureRoleFiltering,
		"ShowOrderingUI":      h.cfg.FeatureOrderingUI,
	})
}

// filterOptions derives the capability and band dropdown choices from
// the roles on the page (unique, sorted).
func filterOptions(roles []model.JobRole) (capabilities, bands []string) {
	capSet := make(map[string]bool)
	bandSet := make(map[string]bool)
	for _, role := range roles {
		if name := role.Capability.CapabilityName; name != "" {
			capSet[name] = true
		}
		if name := role.Band.BandName; name != "" {
			bandSet[name] = true
		}
	}
	for name := range capSet {
		capabilities = append(capabilities, name)
	}
	for name := range bandSet {
		bands = append(bands, name)
	}
	sort.Strings(capabilities)
	sort.Strings(bands)
	return capabilities, bands
}

// Detail handles GET /job-roles/:id
func (h *JobRoleHandler) Detail(c *gin.Context) {
	roleID := c.Param("id")
	token := middleware.Token(c)

	role, err := h.api.JobRoleByID(c.Request.Context(), roleID, token)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		log.Error().Err(err).Str("roleId", roleID).Msg("Failed to load job role")
		c.HTML(http.StatusOK, "job-role-information.html", gin.H{
			"CanApply": false,
		})
		return
	}

	view := gin.H{
		"Role":     role,
		"CanApply": role != nil && role.NumberOfOpenPositions > 0,
		"Success":  c.Query("success"),
		"Error":    c.Query("error"),
	}

	// The applications sub-resource is admin-only upstream. A 401/403
	// is the backend saying "not an admin": hide the panel, don't error.
	if token != "" && role != nil {
		apps, appsErr := h.api.RoleApplications(c.Request.Context(), roleID, token)
		switch {
		case appsErr == nil:
			view["ShowApplications"] = true
			view["Applications"] = panelItems(apps)
		case errors.Is(appsErr, client.ErrUnauthorized), errors.Is(appsErr, client.ErrForbidden):
			// panel stays hidden
		default:
			log.Error().Err(appsErr).Str("roleId", roleID).Msg("Failed to load role applications")
			view["ShowApplications"] = true
			view["ApplicationsError"] = "Unable to load applications for this role."
		}
	}

	c.HTML(http.StatusOK, "job-role-information.html", view)
}

// panelItems shapes applicant rows for the admin panel. The display
// name falls back through every identity field the API has carried over
// its revisions.
func panelItems(apps []model.JobRoleApplication) []model.ApplicationPanelItem {
	items := make([]model.ApplicationPanelItem, 0, len(apps))
	for _, app := range apps {
		name := app.Email
		if name == "" {
			name = app.Username
		}
		if name == "" && app.User != nil {
			name = app.User.Email
			if name == "" {
				name = app.User.Username
			}
		}
		if name == "" {
			name = "Unknown applicant"
		}

		status := app.ApplicationStatus
		if status == "" {
			status = "Unknown"
		}

		items = append(items, model.ApplicationPanelItem{
			ApplicationID: app.ApplicationID,
			ApplicantName: name,
			Status:        status,
			CVURL:         app.CVURL,
			CanAssess:     isAssessable(status),
		})
	}
	return items
}

// isAssessable reports whether an application is still awaiting a
// hire/reject decision. The API has spelled the status both ways.
func isAssessable(status string) bool {
	switch strings.ToLower(status) {
	case "inprogress", "in progress":
		return true
	}
	return false
}

// Hire handles POST /job-roles/:id/applications/:applicationId/hire
func (h *JobRoleHandler) Hire(c *gin.Context) {
	h.assess(c, "hire")
}

// Reject handles POST /job-roles/:id/applications/:applicationId/reject
func (h *JobRoleHandler) Reject(c *gin.Context) {
	h.assess(c, "reject")
}

// assess runs a hire/reject mutation and bounces back to the detail
// page with the outcome in the query string. With no server-side
// session store, flash messages travel via redirect.
func (h *JobRoleHandler) assess(c *gin.Context, action string) {
	roleID := c.Param("id")
	applicationID := c.Param("applicationId")

	token := middleware.Token(c)
	if token == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var err error
	if action == "hire" {
		err = h.api.HireApplication(c.Request.Context(), applicationID, token)
	} else {
		err = h.api.RejectApplication(c.Request.Context(), applicationID, token)
	}

	params := url.Values{}
	if err != nil {
		log.Error().Err(err).
			Str("applicationId", applicationID).
			Str("action", action).
			Msg("Failed to update application")
		params.Set("error", "Failed to update application. Please try again.")
	} else if action == "hire" {
		params.Set("success", "Applicant hired.")
	} else {
		params.Set("success", "Application rejected.")
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/job-roles/%s?%s", url.PathEscape(roleID), params.Encode()))
}
