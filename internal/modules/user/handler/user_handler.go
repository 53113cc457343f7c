package handler

import (
	"net/http"

	"gallery-server/internal/modules/common/httpx"
	moduledto "gallery-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// GetSelfInfo 获取当前用户资料
func (h *Handler) GetSelfInfo(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateSelfInfo 修改当前用户资料，只更新请求中出现的字段。
func (h *Handler) UpdateSelfInfo(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	var req moduledto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误", "code": "validation"})
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), uid, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新用户信息失败")
		return
	}
	c.JSON(http.StatusOK, profile)
}
