package router

import (
	"net/http"
	"strings"

	"gallery-server/internal/config"
	"gallery-server/internal/middleware"
	"gallery-server/internal/modules"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Router struct {
	modules     *modules.AppModules
	redisClient *redis.Client
}

// NewRouter redisClient 可以为 nil，此时限流退化为进程内实现。
func NewRouter(appModules *modules.AppModules, redisClient *redis.Client) *Router {
	return &Router{
		modules:     appModules,
		redisClient: redisClient,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := config.Get()

	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// JSON 接口的请求体大小限制；上传路由单独放宽
	jsonBodyLimit := middleware.BodyLimitMiddleware(0)

	// 上传限流：同一实例在所有上传路由间共享
	uploadLimiter := middleware.RateLimitMiddleware(cfg.RateLimit, rt.redisClient, cfg.Redis.Prefix, "upload")
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware(uploadBodyBytes(cfg.Upload))

	registerAuthRoutes(api, jsonBodyLimit, rt.modules.Auth.Handler)
	registerUserRoutes(api, jsonBodyLimit, rt.modules.User.Handler)
	registerGalleryRoutes(api, jsonBodyLimit, rt.modules.Gallery.Handler)
	registerImageRoutes(api, jsonBodyLimit, uploadBodyLimit, uploadLimiter, rt.modules.Image.Handler)

	registerStaticRoutes(r, cfg.Upload)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, cfg.Upload.URLPrefix) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// uploadBodyBytes 单次上传请求体上限：单文件上限 * 文件数，外加 1MB 给表单字段与边界。
func uploadBodyBytes(cfg config.UploadConfig) int64 {
	files := cfg.MaxFiles
	if files <= 0 {
		files = 20
	}
	return cfg.MaxFileBytes()*int64(files) + 1<<20
}
