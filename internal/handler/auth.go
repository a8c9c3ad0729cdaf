package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/careers-web/internal/client"
	"github.com/yourusername/careers-web/internal/middleware"
)

// AuthHandler serves the login and registration pages and bridges the
// auth API's bearer token into the session cookie.
type AuthHandler struct {
	api *client.Client
}

func NewAuthHandler(api *client.Client) *AuthHandler {
	return &AuthHandler{api: api}
}

// validateLogin checks that both credential fields were submitted.
// Anything further (format, strength) is the auth API's concern.
func validateLogin(email, password string) (bool, []string) {
	var errs []string
	if email == "" {
		errs = append(errs, "Email is required")
	}
	if password == "" {
		errs = append(errs, "Password is required")
	}
	return len(errs) == 0, errs
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Email": ""})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if ok, _ := validateLogin(email, password); !ok {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": "Please provide a valid email and password.",
			"Email": email,
		})
		return
	}

	token, err := h.api.Login(c.Request.Context(), email, password)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Login failed")
		message := "Login failed. Please try again."
		if errors.Is(err, client.ErrUnauthorized) {
			message = "Invalid email or password."
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": message,
			"Email": email,
		})
		return
	}

	middleware.SetToken(c, token)
	c.Redirect(http.StatusFound, "/job-roles")
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearToken(c)
	c.Redirect(http.StatusFound, "/")
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Email": ""})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if ok, _ := validateLogin(email, password); !ok {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "Please provide a valid email and password.",
			"Email": email,
		})
		return
	}

	if err := h.api.Register(c.Request.Context(), email, password); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Registration failed")

		message := "An error occurred during registration"
		status := http.StatusInternalServerError

		var upstream *client.UpstreamError
		if errors.As(err, &upstream) {
			switch {
			case upstream.StatusCode == http.StatusConflict:
				status = http.StatusConflict
				message = "An account with this email already exists."
				if upstream.Message != "" {
					message = upstream.Message
				}
			case upstream.StatusCode == http.StatusBadRequest && upstream.Message != "":
				status = http.StatusBadRequest
				message = upstream.Message
			}
		}

		c.HTML(status, "register.html", gin.H{
			"Error": message,
			"Email": email,
		})
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Success": "Registration successful. Please log in.",
		"Email":   email,
	})
}
