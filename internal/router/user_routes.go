package router

import (
	"gallery-server/internal/middleware"
	userhandler "gallery-server/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, bodyLimit gin.HandlerFunc, h *userhandler.Handler) {
	userGroup := api.Group("/users", bodyLimit)
	userGroup.Use(middleware.JWTAuth())

	userGroup.GET("/me", h.GetSelfInfo)
	userGroup.PATCH("/me", h.UpdateSelfInfo)
}
