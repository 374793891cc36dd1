package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly guards the dashboard. Anyone without the admin role is flashed
// an error and sent back to the public site.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if !sess.User().IsAdmin() {
			sess.Flash("error", "You do not have permission to access the admin area.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRedirect keeps admins out of the customer-facing pages: a logged-in
// admin browsing the public site is sent to the dashboard instead. Login and
// logout stay reachable so the admin can switch accounts.
func AdminRedirect() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess.User().IsAdmin() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireLogin sends anonymous visitors to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess.User() == nil {
			sess.Flash("error", "Please log in to view this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
