package auth

import (
	"gallery-server/internal/modules/auth/handler"
	"gallery-server/internal/modules/auth/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(userService service.UserService) *Module {
	moduleService := service.New(userService)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
