package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证安全响应头与静态资源缓存头。
func TestSecurityAndCacheHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/uploads/a.png", StaticCacheMiddleware(""), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/a.png", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "public, max-age=31536000, immutable",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Fatalf("%s: 期望 %q，实际为 %q", k, v, got)
		}
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Fatalf("期望设置 CSP")
	}
}
