package router

import (
	"gallery-server/internal/middleware"
	imagehandler "gallery-server/internal/modules/image/handler"

	"github.com/gin-gonic/gin"
)

func registerImageRoutes(
	api *gin.RouterGroup,
	bodyLimit gin.HandlerFunc,
	uploadBodyLimit gin.HandlerFunc,
	uploadLimiter gin.HandlerFunc,
	h *imagehandler.Handler,
) {
	imageGroup := api.Group("/images")
	imageGroup.Use(middleware.JWTAuth())

	imageGroup.POST("/upload", uploadBodyLimit, uploadLimiter, h.UploadImages)
	imageGroup.DELETE("/deleteImage/:id", bodyLimit, h.DeleteImage)
	imageGroup.POST("/moveImage/:id", bodyLimit, h.MoveImage)
	imageGroup.POST("/copyImage/:id", bodyLimit, h.CopyImage)
	imageGroup.GET("/gallery/:galleryId", h.ListGalleryImages)
}
