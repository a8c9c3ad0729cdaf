package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenCookie holds the bearer token issued by the auth API. It lives
// entirely in the browser's cookie store; the server keeps no session
// state.
const TokenCookie = "token"

// tokenMaxAge matches the token's 8 hour lifetime.
const tokenMaxAge = 8 * 60 * 60

// Token reads the bearer token from the request cookie. Empty when the
// caller is not logged in.
func Token(c *gin.Context) string {
	token, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// SetToken stores the bearer token in an HTTP-only cookie.
func SetToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookie, token, tokenMaxAge, "/", "", false, true)
}

// ClearToken expires the token cookie. Clearing an absent cookie is a
// no-op for the browser.
func ClearToken(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
}
