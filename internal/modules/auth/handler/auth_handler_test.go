package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	authservice "gallery-server/internal/modules/auth/service"
	userrepo "gallery-server/internal/modules/user/repo"
	userservice "gallery-server/internal/modules/user/service"
	"gallery-server/internal/testutils"
	"gallery-server/internal/utils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	cleanup := testutils.InitTestConfig()
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	h := New(authservice.New(userservice.New(userrepo.NewUserRepository(gdb))))

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// 测试内容：验证注册后可登录，并签发包含用户信息的令牌。
func TestRegisterAndLogin(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/api/auth/register", `{"firstname":"Ann","email":"ann@example.com","password":"secret123"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret123") || strings.Contains(w.Body.String(), "password") {
		t.Fatalf("响应不应包含密码: %s", w.Body.String())
	}

	if w := postJSON(r, "/api/auth/register", `{"email":"ann@example.com","password":"secret123"}`); w.Code != http.StatusConflict {
		t.Fatalf("期望重复注册返回 409，实际为 %d", w.Code)
	}

	w = postJSON(r, "/api/auth/login", `{"email":"ann@example.com","password":"secret123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("期望登录成功，实际为 %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	claims, err := utils.ParseLoginToken(resp.AccessToken)
	if err != nil || claims.Email != "ann@example.com" || claims.ID == 0 {
		t.Fatalf("期望令牌有效，实际为 %+v err=%v", claims, err)
	}

	if w := postJSON(r, "/api/auth/login", `{"email":"ann@example.com","password":"wrong1234"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望密码错误返回 401，实际为 %d", w.Code)
	}
}

// 测试内容：验证注册参数缺失或不合法时返回 400。
func TestRegister_Validation(t *testing.T) {
	r := setupTestRouter(t)

	cases := []string{
		`{"password":"secret123"}`,
		`{"email":"not-an-email","password":"secret123"}`,
		`{"email":"ann@example.com","password":"short"}`,
	}
	for _, body := range cases {
		if w := postJSON(r, "/api/auth/register", body); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: 期望 400，实际为 %d", body, w.Code)
		}
	}
}
