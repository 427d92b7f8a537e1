package identity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Header carries the caller's user id on every request.
// This is an intentional simplification of the deployment environment,
// not a security boundary: the gateway is trusted to set it.
const Header = "X-Sharer-User-Id"

const contextKey = "sharerUserID"

// Required is a Gin middleware that extracts the caller's user id from the
// X-Sharer-User-Id header. Requests without a positive integer id are
// rejected with 400 before reaching any handler.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(Header)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "missing " + Header + " header",
			})
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "invalid " + Header + " header",
			})
			return
		}

		c.Set(contextKey, userID)
		c.Next()
	}
}
