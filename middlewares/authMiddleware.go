package middlewares

import (
	"net/http"
	"strings"

	"civicconnect-be/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by OptionalAuth for the verified identity.
const (
	CtxUserUID   = "user_uid"
	CtxUserEmail = "user_email"
	CtxUserName  = "user_name"
)

// OptionalAuth gates requests behind bearer-token verification. With a nil
// verifier the gate is disabled and every request passes through untouched.
func OptionalAuth(verifier utils.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}

		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		identity, err := verifier.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set(CtxUserUID, identity.UID)
		c.Set(CtxUserEmail, identity.Email)
		c.Set(CtxUserName, identity.Name)

		c.Next()
	}
}
