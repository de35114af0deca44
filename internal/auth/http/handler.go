package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/auth"
	"github.com/abuelosolos/Fara/internal/logger"
	"github.com/abuelosolos/Fara/internal/pkg/response"
)

type Handler struct {
	admin *auth.AdminAuthenticator
}

func NewHandler(admin *auth.AdminAuthenticator) *Handler {
	return &Handler{admin: admin}
}

func (h *Handler) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	token, exp, err := h.admin.Login(body.Password)
	if err != nil {
		logger.FromContext(c.Request.Context()).Warn("admin login failed", zap.String("client_ip", c.ClientIP()))
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: exp})
}
