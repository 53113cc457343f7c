package middleware

import (
	"context"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"gallery-server/internal/config"
	"gallery-server/internal/platform/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// RateLimitMiddleware 按客户端 IP 限流。
// redisClient 非空时使用 Redis 固定窗口计数，多实例共享配额；Redis 出错时回退到本地令牌桶。
func RateLimitMiddleware(cfg config.RateLimitConfig, redisClient *redis.Client, keyPrefix string, scope string) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := NewIPRateLimiter(rate.Limit(cfg.UploadRPS), cfg.UploadBurst)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if redisClient != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 500*time.Millisecond)
			allowed, err := allowByRedisRateLimit(ctx, redisClient, cache.Key(keyPrefix, "rate", scope, ip), cfg.UploadRPS, cfg.UploadBurst)
			cancel()
			if err == nil {
				if !allowed {
					rejectTooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			log.Printf("⚠️ Redis 限流失败，回退内存限流: %v", err)
		}

		if !limiter.getLimiter(ip).Allow() {
			rejectTooManyRequests(c)
			return
		}
		c.Next()
	}
}

// allowByRedisRateLimit 用固定窗口近似令牌桶：窗口长度为 burst/rps 秒，窗口内最多 burst 次。
// rps 或 burst 不大于 0 时视为不限流。
func allowByRedisRateLimit(ctx context.Context, client *redis.Client, key string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}
	window := time.Duration(math.Ceil(float64(burst) / rps * float64(time.Second)))

	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(burst), nil
}

func rejectTooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试", "code": "rate_limited"})
	c.Abort()
}
