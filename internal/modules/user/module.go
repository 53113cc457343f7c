package user

import (
	"gallery-server/internal/modules/user/handler"
	"gallery-server/internal/modules/user/repo"
	"gallery-server/internal/modules/user/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(userStore repo.UserStore) *Module {
	moduleService := service.New(userStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
