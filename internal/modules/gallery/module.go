package gallery

import (
	"gallery-server/internal/modules/gallery/handler"
	"gallery-server/internal/modules/gallery/repo"
	"gallery-server/internal/modules/gallery/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(galleryStore repo.GalleryStore, cascader service.ImageCascader) *Module {
	moduleService := service.New(galleryStore, cascader)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
