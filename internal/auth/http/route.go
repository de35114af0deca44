package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the admin login route behind limit.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, limit gin.HandlerFunc) {
	g.POST("/admin/login", limit, h.Login)
}
