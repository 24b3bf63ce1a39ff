// Package guard gates protected routes. A request passes through four
// implicit states: loading (while the current user resolves),
// unauthenticated (redirect or 401, nothing protected rendered), forbidden
// (fallback rendered instead of the protected handler), and authorized.
// The default is fail-closed: no resolved user, no protected content.
package guard

import (
	"net/http"
	"strings"

	"tmsdash/internal/auth"
	"tmsdash/internal/model"
	"tmsdash/pkg/response"

	"github.com/gin-gonic/gin"
)

const userContextKey = "guard.user"

// LoginPath is where unauthenticated browser requests are redirected
const LoginPath = "/login"

// UserResolver resolves the requesting user, nil when unauthenticated
type UserResolver func(c *gin.Context) *model.User

// Guard builds route-protection middleware over a user resolver
type Guard struct {
	resolve UserResolver
}

func New(resolve UserResolver) *Guard {
	return &Guard{resolve: resolve}
}

// Require protects a route: the user must be authenticated and hold every
// listed permission. Missing authentication redirects browser requests to
// the login page (exactly one redirect per request) and answers API
// requests with 401; missing permissions answer 403.
func (g *Guard) Require(permissions ...string) gin.HandlerFunc {
	return g.RequireWithFallback(nil, permissions...)
}

// RequireWithFallback is Require with a caller-supplied forbidden view,
// rendered in place of the protected content when permissions are missing.
func (g *Guard) RequireWithFallback(fallback gin.HandlerFunc, permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := g.resolve(c)
		if user == nil {
			if wantsHTML(c) {
				c.Redirect(http.StatusSeeOther, LoginPath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authentication required"))
			return
		}

		if !auth.HasAllPermissions(user, permissions...) {
			if fallback != nil {
				c.Abort()
				fallback(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user the guard resolved for this request, or nil
// on unguarded routes
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}

// wantsHTML reports whether the client is a browser navigation rather than
// an API consumer
func wantsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html")
}
