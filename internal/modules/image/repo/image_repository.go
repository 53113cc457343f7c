package repo

import (
	"context"

	"gallery-server/internal/model"

	"gorm.io/gorm"
)

type ImageStore interface {
	WithTx(tx *gorm.DB) ImageStore
	Create(ctx context.Context, image *model.Image) error
	FindOwned(ctx context.Context, imageID uint, ownerID uint) (*model.Image, error)
	ListByGallery(ctx context.Context, galleryID uint, offset int, limit int) ([]model.Image, int64, error)
	ListAllByGalleryForOwner(ctx context.Context, galleryID uint, ownerID uint) ([]model.Image, error)
	UpdateParent(ctx context.Context, imageID uint, galleryID uint) error
	Delete(ctx context.Context, imageID uint) error
	DeleteAllByGallery(ctx context.Context, galleryID uint) (int64, error)
	ListAllPaths(ctx context.Context) ([]string, error)
}
