package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/careers-web/internal/client"
	"github.com/yourusername/careers-web/internal/config"
	"github.com/yourusername/careers-web/web"
)

// newTestRouter mounts the full route table against a fake upstream API.
func newTestRouter(t *testing.T, upstream http.Handler, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	if cfg == nil {
		cfg = &config.Config{PageSize: 10, FeatureJobApplications: true}
	}
	api := client.New(srv.URL, 5*time.Second)

	authHandler := NewAuthHandler(api)
	roleHandler := NewJobRoleHandler(api, cfg)
	appHandler := NewApplicationHandler(api)

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)

	r.GET("/job-roles", roleHandler.List)
	r.GET("/job-roles/:id", roleHandler.Detail)
	r.GET("/job-roles/:id/apply", roleHandler.ShowApplyForm)
	r.POST("/job-roles/:id/apply", roleHandler.SubmitApplication)
	r.POST("/job-roles/:id/applications/:applicationId/hire", roleHandler.Hire)
	r.POST("/job-roles/:id/applications/:applicationId/reject", roleHandler.Reject)

	r.GET("/api/applications/cv", appHandler.DownloadCV)
	r.GET("/job-applications", appHandler.ListMine)

	return r
}

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withToken(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: "token", Value: "test-token"})
	return req
}
