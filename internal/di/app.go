package di

import (
	"gallery-server/internal/modules"
	"gallery-server/internal/router"

	"github.com/redis/go-redis/v9"
)

type Application struct {
	Router  *router.Router
	Modules *modules.AppModules
	Redis   *redis.Client
}

func NewApplication(r *router.Router, m *modules.AppModules, redisClient *redis.Client) *Application {
	return &Application{
		Router:  r,
		Modules: m,
		Redis:   redisClient,
	}
}

// Close 释放应用持有的外部连接。
func (a *Application) Close() error {
	if a.Redis != nil {
		return a.Redis.Close()
	}
	return nil
}
