package httpx

import (
	"net/http"

	"gallery-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		body := gin.H{"error": serviceErr.Message, "code": serviceErr.Code}
		for k, v := range serviceErr.Details {
			body[k] = v
		}
		c.JSON(serviceErrorStatus(serviceErr.Code), body)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage, "code": service.ErrorCodeInternal})
}

// UserID 读取 JWT 中间件写入的用户 ID。
func UserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("id")
	if !exists {
		return 0, false
	}
	uid, ok := value.(uint)
	return uid, ok
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation, service.ErrorCodeInvalidOperation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict, service.ErrorCodeConstraintViolation:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
