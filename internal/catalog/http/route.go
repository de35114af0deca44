package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers service catalog routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	public := g.Group("/services")
	{
		public.GET("", h.List)
		public.GET("/:name", h.Get)
	}

	// === Admin Routes ===
	admin := g.Group("/admin/services")
	admin.Use(adminMiddleware)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:name", h.Update)
		admin.DELETE("/:name", h.Delete)
	}
}
