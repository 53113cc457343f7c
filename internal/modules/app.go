package modules

import (
	"gallery-server/internal/db"
	"gallery-server/internal/modules/auth"
	"gallery-server/internal/modules/gallery"
	galleryrepo "gallery-server/internal/modules/gallery/repo"
	"gallery-server/internal/modules/image"
	imagerepo "gallery-server/internal/modules/image/repo"
	"gallery-server/internal/modules/user"
	userrepo "gallery-server/internal/modules/user/repo"
	"gallery-server/internal/storage"
)

type AppModules struct {
	Auth    *auth.Module
	User    *user.Module
	Gallery *gallery.Module
	Image   *image.Module
}

func New(
	transactor *db.Transactor,
	userStore userrepo.UserStore,
	galleryStore galleryrepo.GalleryStore,
	imageStore imagerepo.ImageStore,
	blobStore storage.BlobStore,
) *AppModules {
	userModule := user.New(userStore)
	authModule := auth.New(userModule.Service)
	imageModule := image.New(transactor, galleryStore, imageStore, blobStore)
	// 相册删除需要级联清理图片，由图片引擎负责
	galleryModule := gallery.New(galleryStore, imageModule.Service)

	return &AppModules{
		Auth:    authModule,
		User:    userModule,
		Gallery: galleryModule,
		Image:   imageModule,
	}
}
