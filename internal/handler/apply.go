package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/careers-web/internal/client"
	"github.com/yourusername/careers-web/internal/middleware"
	"github.com/yourusername/careers-web/internal/model"
	"github.com/yourusername/careers-web/internal/upload"
)

// ShowApplyForm handles GET /job-roles/:id/apply
func (h *JobRoleHandler) ShowApplyForm(c *gin.Context) {
	role := h.roleForContext(c)
	c.HTML(http.StatusOK, "job-role-apply.html", gin.H{
		"Role":      role,
		"Submitted": false,
	})
}

// SubmitApplication handles POST /job-roles/:id/apply. The CV passes
// the type gate, then is forwarded to the apply endpoint as-is.
func (h *JobRoleHandler) SubmitApplication(c *gin.Context) {
	roleID := c.Param("id")
	token := middleware.Token(c)
	role := h.roleForContext(c)

	file, header, err := c.Request.FormFile("cv")
	if err != nil {
		h.renderApplyError(c, role, "No file uploaded.")
		return
	}
	defer file.Close()

	if header.Size > upload.MaxCVBytes {
		h.renderApplyError(c, role, upload.ErrTooLarge.Error())
		return
	}

	contentType := header.Header.Get("Content-Type")
	if err := upload.ValidateCV(header.Filename, contentType); err != nil {
		h.renderApplyError(c, role, err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded CV")
		h.renderApplyError(c, role, "Failed to submit application.")
		return
	}

	cv := client.CVFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}

	result, err := h.api.Apply(c.Request.Context(), roleID, cv, token)
	if err != nil {
		log.Error().Err(err).Str("roleId", roleID).Msg("Failed to submit application")

		// A 400 carries a message meant for the applicant (duplicate
		// application, closed role). Everything else stays generic.
		message := "Failed to submit application."
		var upstream *client.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusBadRequest && upstream.Message != "" {
			message = upstream.Message
		}
		h.renderApplyError(c, role, message)
		return
	}

	c.HTML(http.StatusOK, "job-role-apply.html", gin.H{
		"Role":      role,
		"Submitted": true,
		"Status":    result.ApplicationStatus,
	})
}

// roleForContext fetches the role for display on the apply page. The
// form still works without it, so failures only lose context.
func (h *JobRoleHandler) roleForContext(c *gin.Context) *model.JobRole {
	role, err := h.api.JobRoleByID(c.Request.Context(), c.Param("id"), middleware.Token(c))
	if err != nil {
		if !errors.Is(err, client.ErrNotFound) {
			log.Warn().Err(err).Str("roleId", c.Param("id")).Msg("Failed to load role for apply form")
		}
		return nil
	}
	return role
}

func (h *JobRoleHandler) renderApplyError(c *gin.Context, role *model.JobRole, message string) {
	c.HTML(http.StatusOK, "job-role-apply.html", gin.H{
		"Role":      role,
		"Submitted": false,
		"Error":     message,
	})
}
