package middlewares

import (
	"net/http"

	"github.com/ankit-0705/Macrology/utils"

	"github.com/gin-gonic/gin"
)

// The client presents its token in a custom header rather than the
// standard Authorization scheme.
const TokenHeader = "auth-token"

// AdminKeyHeader carries the operator key for administrative endpoints.
const AdminKeyHeader = "admin-key"

// AuthRequired verifies the auth-token header and injects the embedded
// user id into the request context. Absent, malformed, expired and
// badly-signed tokens all get the same 401.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate using valid token."})
			return
		}
		userID, err := utils.ParseJWT(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate using valid token."})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// AdminRequired gates destructive operator endpoints. With no key
// configured the endpoint is unreachable.
func AdminRequired(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" || c.GetHeader(AdminKeyHeader) != apiKey {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required."})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the caller's id set by AuthRequired.
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}
