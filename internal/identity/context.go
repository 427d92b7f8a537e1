package identity

import "github.com/gin-gonic/gin"

// UserID returns the caller's user id stored by Required, or 0 if absent.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(contextKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
