package handler

import (
	"net/http"
	"time"

	"gallery-server/internal/modules/common/httpx"
	moduledto "gallery-server/internal/modules/gallery/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateGallery(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	var req moduledto.CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: 标题必填且不超过100个字符", "code": "validation"})
		return
	}

	gallery, err := h.galleryService.Create(c.Request.Context(), uid, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建相册失败")
		return
	}
	c.JSON(http.StatusCreated, gallery)
}

// ListUserGalleries 支持 search/sortBy/order/from/to/minImages/maxImages/page/limit。
func (h *Handler) ListUserGalleries(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	var query moduledto.GalleryListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "查询参数错误", "code": "validation"})
		return
	}
	from, err := parseDate(query.From, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from 日期格式错误", "code": "validation"})
		return
	}
	to, err := parseDate(query.To, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to 日期格式错误", "code": "validation"})
		return
	}

	result, err := h.galleryService.ListUserGalleries(c.Request.Context(), moduledto.GalleryListRequest{
		UserID:    uid,
		Search:    query.Search,
		SortBy:    query.SortBy,
		Order:     query.Order,
		From:      from,
		To:        to,
		MinImages: query.MinImages,
		MaxImages: query.MaxImages,
		Page:      query.Page,
		Limit:     query.Limit,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取相册列表失败")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetGallery(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	galleryID, ok := httpx.ParseID(c, c.Param("id"), "id")
	if !ok {
		return
	}

	gallery, err := h.galleryService.Get(c.Request.Context(), galleryID, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取相册失败")
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (h *Handler) UpdateGallery(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	galleryID, ok := httpx.ParseID(c, c.Param("id"), "id")
	if !ok {
		return
	}
	var req moduledto.UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误", "code": "validation"})
		return
	}

	gallery, err := h.galleryService.Update(c.Request.Context(), galleryID, uid, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新相册失败")
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (h *Handler) DeleteGallery(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	galleryID, ok := httpx.ParseID(c, c.Param("id"), "id")
	if !ok {
		return
	}

	result, err := h.galleryService.Delete(c.Request.Context(), galleryID, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "删除相册失败")
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseDate 接受 RFC3339 或 2006-01-02。仅日期的结束边界取当天最后一刻。
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
