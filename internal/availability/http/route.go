package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public availability route. limit throttles
// anonymous callers.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, limit gin.HandlerFunc) {
	g.GET("/availability", limit, h.Get)
}
