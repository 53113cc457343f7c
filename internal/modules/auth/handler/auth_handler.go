package handler

import (
	"net/http"

	moduledto "gallery-server/internal/modules/auth/dto"
	"gallery-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误", "code": "validation"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误", "code": "validation"})
		return
	}

	profile, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}
	c.JSON(http.StatusCreated, profile)
}
