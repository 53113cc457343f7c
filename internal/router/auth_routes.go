package router

import (
	authhandler "gallery-server/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, bodyLimit gin.HandlerFunc, h *authhandler.Handler) {
	authGroup := api.Group("/auth", bodyLimit)
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
}
