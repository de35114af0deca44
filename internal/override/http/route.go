package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers day override routes. All of them require an admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/admin/overrides")
	group.Use(adminMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:date", h.Get)
		group.PUT("/:date", h.Put)
		group.DELETE("/:date", h.Delete)
	}
}
