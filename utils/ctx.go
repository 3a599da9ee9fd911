package utils

import "github.com/gin-gonic/gin"

// Context keys set by the auth middleware and read back by the controllers.
const (
	CtxUserIDKey = "userId"
	CtxRoleKey   = "role"
)

// CurrentUserID returns the authenticated user's id, or 0 on an
// unauthenticated request.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the authenticated user's role, or "".
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRoleKey); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
