package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKey guards content-management routes. The hidden #admin entry point on
// the client is navigation only; this header check is the real boundary.
func AdminKey(key string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		got := c.GetHeader(AdminKeyHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid admin key"},
			)
			return
		}

		c.Next()
	}
}
