package handler

import (
	"log"
	"net/http"

	"gallery-server/internal/modules/common/httpx"
	moduledto "gallery-server/internal/modules/image/dto"
	imageservice "gallery-server/internal/modules/image/service"
	platformservice "gallery-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// UploadImages 接收 multipart 表单：files 为文件列表，galleryId 为目标相册。
func (h *Handler) UploadImages(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误，请使用 multipart/form-data", "code": "validation"})
		return
	}
	galleryID, ok := httpx.ParseID(c, c.PostForm("galleryId"), "galleryId")
	if !ok {
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件", "code": "validation"})
		return
	}
	if limit := imageservice.MaxFilesPerUpload(); len(files) > limit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "上传文件数量超出限制", "code": "validation", "max": limit})
		return
	}

	result, err := h.imageService.Upload(c.Request.Context(), files, galleryID, uid)
	if err != nil {
		if _, ok := platformservice.AsServiceError(err); !ok {
			log.Printf("Upload failed: %v", err)
		}
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) DeleteImage(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseID(c, c.Param("id"), "id")
	if !ok {
		return
	}

	result, err := h.imageService.Delete(c.Request.Context(), imageID, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "删除失败")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) MoveImage(c *gin.Context) {
	uid, imageID, req, ok := bindTransfer(c)
	if !ok {
		return
	}

	result, err := h.imageService.Move(c.Request.Context(), imageID, req.GalleryID, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "移动失败")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CopyImage(c *gin.Context) {
	uid, imageID, req, ok := bindTransfer(c)
	if !ok {
		return
	}

	result, err := h.imageService.Copy(c.Request.Context(), imageID, req.GalleryID, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "复制失败")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListGalleryImages 分页查询相册图片，默认 page=1、limit=10。
func (h *Handler) ListGalleryImages(c *gin.Context) {
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return
	}
	galleryID, ok := httpx.ParseID(c, c.Param("galleryId"), "galleryId")
	if !ok {
		return
	}

	result, err := h.imageService.ListGalleryImages(
		c.Request.Context(),
		galleryID,
		uid,
		httpx.QueryInt(c, "page", 1),
		httpx.QueryInt(c, "limit", 10),
	)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}
	c.JSON(http.StatusOK, result)
}

func bindTransfer(c *gin.Context) (uint, uint, moduledto.TransferImageRequest, bool) {
	var req moduledto.TransferImageRequest
	uid, ok := httpx.RequireUserID(c)
	if !ok {
		return 0, 0, req, false
	}
	imageID, ok := httpx.ParseID(c, c.Param("id"), "id")
	if !ok {
		return 0, 0, req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "galleryId 参数错误", "code": "validation"})
		return 0, 0, req, false
	}
	return uid, imageID, req, true
}
