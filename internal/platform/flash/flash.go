// Package flash implements one-shot notices carried across a redirect
// in a short-lived cookie: set before redirecting, popped (read and
// cleared) by the next rendered page.
package flash

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const (
	cookieName = "flash"
	// maxAge keeps a stray notice from outliving the redirect it was
	// set for by more than a minute.
	maxAge = 60
)

// Set stores a notice to be shown on the next rendered page.
func Set(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, url.QueryEscape(message), maxAge, "/", "", false, true)
}

// Pop returns the pending notice, if any, and clears it.
func Pop(c *gin.Context) string {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
