package router

import (
	"gallery-server/internal/middleware"
	galleryhandler "gallery-server/internal/modules/gallery/handler"

	"github.com/gin-gonic/gin"
)

func registerGalleryRoutes(api *gin.RouterGroup, bodyLimit gin.HandlerFunc, h *galleryhandler.Handler) {
	galleryGroup := api.Group("/galleries", bodyLimit)
	galleryGroup.Use(middleware.JWTAuth())

	galleryGroup.POST("", h.CreateGallery)
	galleryGroup.GET("/userGallery", h.ListUserGalleries)
	galleryGroup.GET("/:id", h.GetGallery)
	galleryGroup.PATCH("/:id", h.UpdateGallery)
	galleryGroup.DELETE("/:id", h.DeleteGallery)
}
