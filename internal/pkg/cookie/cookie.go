package cookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName     = "access_token"
	CheckoutSessionCookieName = "checkout_session"
)

// SetCheckoutSession remembers the active wizard so a reload can resume it.
func SetCheckoutSession(c *gin.Context, sessionID string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		CheckoutSessionCookieName,
		sessionID,
		int(ttl.Seconds()),
		"/",
		"",
		secure,
		true, // HttpOnly
	)
}

func ClearCheckoutSession(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CheckoutSessionCookieName, "", -1, "/", "", secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
