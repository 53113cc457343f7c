package middleware

import "github.com/gin-gonic/gin"

// StaticCacheMiddleware 为图片文件添加 Cache-Control 头。
// 文件名唯一且内容不变，可以长期缓存。
func StaticCacheMiddleware(cacheControl string) gin.HandlerFunc {
	if cacheControl == "" {
		cacheControl = "public, max-age=31536000, immutable"
	}
	return func(c *gin.Context) {
		c.Header("Cache-Control", cacheControl)
		c.Next()
	}
}
