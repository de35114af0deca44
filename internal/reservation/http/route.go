package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation routes. Customers create reservations
// anonymously; everything else is for the admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware, limit gin.HandlerFunc) {
	// === Public Routes ===
	g.POST("/reservations", limit, h.Create)

	// === Admin Routes ===
	admin := g.Group("/admin/reservations")
	admin.Use(adminMiddleware)
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.PATCH("/:id/status", h.UpdateStatus)
	}
}
