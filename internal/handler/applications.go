package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/careers-web/internal/client"
	"github.com/yourusername/careers-web/internal/middleware"
)

// ApplicationHandler serves the applicant-facing application views and
// the CV download pass-through.
type ApplicationHandler struct {
	api *client.Client
}

func NewApplicationHandler(api *client.Client) *ApplicationHandler {
	return &ApplicationHandler{api: api}
}

// DownloadCV handles GET /api/applications/cv?applicationId=
// The API answers with a 302 to a presigned URL; that redirect is
// captured and re-issued so the browser downloads straight from
// storage without the CV bytes transiting this server.
func (h *ApplicationHandler) DownloadCV(c *gin.Context) {
	token := middleware.Token(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	applicationID := c.Query("applicationId")
	if applicationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "applicationId is required"})
		return
	}

	location, err := h.api.CVDownloadURL(c.Request.Context(), applicationID, token)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized), errors.Is(err, client.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
		case errors.Is(err, client.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "CV not found"})
		default:
			log.Error().Err(err).Str("applicationId", applicationID).Msg("Failed to fetch CV download URL")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch CV"})
		}
		return
	}

	c.Redirect(http.StatusFound, location)
}

// applicationRow is a placeholder row for the applications page until
// the API grows a "my applications" endpoint.
type applicationRow struct {
	ApplicationID int
	RoleName      string
	RoleID        int
	Status        string
}

var placeholderApplications = []applicationRow{
	{ApplicationID: 1, RoleName: "Data Analyst", RoleID: 1, Status: "in progress"},
	{ApplicationID: 2, RoleName: "Product Manager", RoleID: 2, Status: "hired"},
	{ApplicationID: 3, RoleName: "Software Engineer", RoleID: 3, Status: "rejected"},
}

// ListMine handles GET /job-applications (behind FEATURE_JOB_APPLICATIONS).
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	c.HTML(http.StatusOK, "job-applications.html", gin.H{
		"Applications": placeholderApplications,
	})
}
