package cache

import (
	"context"
	"log"
	"strings"
	"time"

	"gallery-server/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 按配置连接 Redis；未启用或不可用时返回 nil，调用方降级为内存实现。
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Printf("⚠️ Redis 不可用，降级为内存模式: %v", err)
		return nil
	}

	log.Printf("✅ Redis 已连接: %s (db=%d)", cfg.Addr, cfg.DB)
	return client
}

// ProvideRedisClient 按当前配置构造 Redis 客户端，供依赖注入使用。
func ProvideRedisClient() *redis.Client {
	return NewRedisClient(config.Get().Redis)
}

// Key 以前缀拼接 Redis 键名，例如 gallery:rate:upload:1.2.3.4。
func Key(prefix string, parts ...string) string {
	if prefix == "" {
		prefix = "gallery"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}
