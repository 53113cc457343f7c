package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证 ID 解析拒绝零值与非数字。
func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		if _, ok := ParseID(c, raw, "id"); ok || w.Code != http.StatusBadRequest {
			t.Fatalf("%q: 期望 400，实际为 ok=%v code=%d", raw, ok, w.Code)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if id, ok := ParseID(c, "42", "id"); !ok || id != 42 {
		t.Fatalf("期望解析出 42，实际为 %d ok=%v", id, ok)
	}
}

// 测试内容：验证缺少用户 ID 时返回 401。
func TestRequireUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if _, ok := RequireUserID(c); ok || w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 ok=%v code=%d", ok, w.Code)
	}

	c.Set("id", uint(7))
	if uid, ok := RequireUserID(c); !ok || uid != 7 {
		t.Fatalf("期望用户 7，实际为 %d ok=%v", uid, ok)
	}
}

// 测试内容：验证整数查询参数的缺省值处理。
func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&limit=x", nil)
	if QueryInt(c, "page", 1) != 3 || QueryInt(c, "limit", 9) != 9 || QueryInt(c, "missing", 5) != 5 {
		t.Fatalf("QueryInt 返回值不符合预期")
	}
}
