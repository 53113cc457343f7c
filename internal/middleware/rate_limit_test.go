package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery-server/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func hit(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = ip + ":1111"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func rateRouter(cfg config.RateLimitConfig, client *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(RateLimitMiddleware(cfg, client, "test", "upload"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

// 测试内容：验证限流关闭时请求不会被拦截。
func TestRateLimitMiddleware_DisabledAllowsRequests(t *testing.T) {
	r := rateRouter(config.RateLimitConfig{Enabled: false, UploadRPS: 0, UploadBurst: 1}, nil)
	for i := 0; i < 3; i++ {
		if code := hit(r, "1.2.3.4"); code != http.StatusOK {
			t.Fatalf("期望 200，实际为 %d", code)
		}
	}
}

// 测试内容：验证限流开启且无补充时会阻止突发请求，且按 IP 隔离。
func TestRateLimitMiddleware_EnabledBlocksBurst(t *testing.T) {
	r := rateRouter(config.RateLimitConfig{Enabled: true, UploadRPS: 0, UploadBurst: 1}, nil)

	if code := hit(r, "1.2.3.4"); code != http.StatusOK {
		t.Fatalf("期望首个请求 200，实际为 %d", code)
	}
	if code := hit(r, "1.2.3.4"); code != http.StatusTooManyRequests {
		t.Fatalf("期望第二个请求 429，实际为 %d", code)
	}
	if code := hit(r, "5.6.7.8"); code != http.StatusOK {
		t.Fatalf("期望其他 IP 不受影响，实际为 %d", code)
	}
}

// 测试内容：验证 Redis 不可用时回退到内存限流。
func TestRateLimitMiddleware_RedisUnavailableFallsBack(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer func() { _ = client.Close() }()

	r := rateRouter(config.RateLimitConfig{Enabled: true, UploadRPS: 0, UploadBurst: 1}, client)
	if code := hit(r, "1.2.3.4"); code != http.StatusOK {
		t.Fatalf("期望首个请求 200，实际为 %d", code)
	}
	if code := hit(r, "1.2.3.4"); code != http.StatusTooManyRequests {
		t.Fatalf("期望回退后第二个请求 429，实际为 %d", code)
	}
}

// 测试内容：验证禁用参数下 Redis 限流直接放行，不可用时返回错误。
func TestAllowByRedisRateLimit(t *testing.T) {
	ok, err := allowByRedisRateLimit(context.Background(), nil, "k", 0, 1)
	if err != nil || !ok {
		t.Fatalf("期望 rps=0 时放行，实际为 ok=%v err=%v", ok, err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer func() { _ = client.Close() }()

	ok, err = allowByRedisRateLimit(context.Background(), client, "k", 1, 1)
	if err == nil || ok {
		t.Fatalf("期望 redis 错误，实际为 ok=%v err=%v", ok, err)
	}
}
