package image

import (
	"gallery-server/internal/db"
	galleryrepo "gallery-server/internal/modules/gallery/repo"
	"gallery-server/internal/modules/image/handler"
	"gallery-server/internal/modules/image/repo"
	"gallery-server/internal/modules/image/service"
	"gallery-server/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(transactor *db.Transactor, galleryStore galleryrepo.GalleryStore, imageStore repo.ImageStore, blobStore storage.BlobStore) *Module {
	moduleService := service.New(transactor, galleryStore, imageStore, blobStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
