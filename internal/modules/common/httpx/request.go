package httpx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RequireUserID 读取当前用户 ID，缺失时直接写入 401。
func RequireUserID(c *gin.Context) (uint, bool) {
	uid, ok := UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息", "code": "unauthorized"})
		return 0, false
	}
	return uid, true
}

// ParseID 解析正整数 ID，非法时直接写入 400。
func ParseID(c *gin.Context, raw string, field string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " 参数错误", "code": "validation"})
		return 0, false
	}
	return uint(id), true
}

// QueryInt 读取整数查询参数，缺省或非法时返回 def。
func QueryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
