package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminPasswordHeader is accepted in place of a bearer token for clients
// that predate token login.
const AdminPasswordHeader = "X-Admin-Password"

// AdminRequired accepts Authorization: Bearer <token> carrying the admin
// role, or the admin password in X-Admin-Password.
func AdminRequired(jwtManager *JWTManager, admin *AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header format"})
				return
			}

			claims, err := jwtManager.ParseAndValidate(strings.TrimSpace(token))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			if claims.Role != RoleAdmin {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
				return
			}

			setPrincipal(c, claims.Subject, claims.Role)
			c.Next()
			return
		}

		if pw := c.GetHeader(AdminPasswordHeader); pw != "" && admin != nil {
			if !admin.Verify(pw) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			setPrincipal(c, RoleAdmin, RoleAdmin)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
	}
}
