//go:build wireinject
// +build wireinject

package di

import (
	"gallery-server/internal/db"
	"gallery-server/internal/modules"
	galleryrepo "gallery-server/internal/modules/gallery/repo"
	imagerepo "gallery-server/internal/modules/image/repo"
	userrepo "gallery-server/internal/modules/user/repo"
	"gallery-server/internal/platform/cache"
	"gallery-server/internal/router"
	"gallery-server/internal/storage"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		db.NewTransactor,
		userrepo.NewUserRepository,
		galleryrepo.NewGalleryRepository,
		imagerepo.NewImageRepository,
		storage.ProvideBlobStore,
		cache.ProvideRedisClient,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
