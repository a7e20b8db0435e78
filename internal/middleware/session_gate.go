package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
	"github.com/k-abishek/online-shopping/internal/session"
)

// RequireRole gates a view on the persisted session. A missing login or a
// role mismatch redirects to the login view and aborts before any handler
// runs, so no data fetch is issued for an unauthorized visit.
func RequireRole(sessions *session.Manager, required domain.Role, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := sessions.Current()
		if !current.LoggedIn {
			log.Warnf("Middleware: Unauthenticated access to %s, redirecting to login", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if current.Role != required {
			log.Warnf("Middleware: Role '%s' denied for %s (requires '%s'), redirecting to login",
				current.Role, c.Request.URL.Path, required)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
