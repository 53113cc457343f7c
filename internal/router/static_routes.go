package router

import (
	"gallery-server/internal/config"
	"gallery-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerStaticRoutes 以 URL 前缀直接暴露上传目录，目录列表关闭。
func registerStaticRoutes(r *gin.Engine, cfg config.UploadConfig) {
	r.Group(cfg.URLPrefix, middleware.StaticCacheMiddleware("")).
		StaticFS("", gin.Dir(cfg.Path, false))
}
