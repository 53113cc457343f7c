package middleware

import (
	"net/http"
	"strings"

	"gallery-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth 校验 Bearer 登录令牌，并把用户 ID 写入上下文键 "id"。
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问", "code": "unauthorized"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误", "code": "unauthorized"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(strings.TrimSpace(parts[1]))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期", "code": "unauthorized"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
