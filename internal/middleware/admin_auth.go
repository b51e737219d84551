package middleware

import (
	"net/http"
	"strings"

	"github.com/archit-sahay/Aibo-Meikan/internal/auth"
	"github.com/archit-sahay/Aibo-Meikan/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates the partner directory endpoints. The admin password
// itself is the bearer credential; there are no sessions and no tokens.
// Missing header, missing configuration and a mismatch are deliberately
// indistinguishable to the caller.
func AdminAuth(adminPassword string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		credential, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			credential = ""
		}

		if !auth.VerifyCredential(credential, adminPassword) {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
