package auth

import "github.com/gin-gonic/gin"

const (
	subjectKey = "authSubject"
	roleKey    = "authRole"
)

func setPrincipal(c *gin.Context, subject, role string) {
	c.Set(subjectKey, subject)
	c.Set(roleKey, role)
}

// GetSubject returns the authenticated principal or empty string.
func GetSubject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

// IsAdmin reports whether the request was authenticated as the admin.
func IsAdmin(c *gin.Context) bool {
	return c.GetString(roleKey) == RoleAdmin
}
