package repo

import (
	"context"
	"time"

	"gallery-server/internal/model"

	"gorm.io/gorm"
)

const (
	SortByCreatedAt   = "createdAt"
	SortByTitle       = "title"
	SortByImagesCount = "imagesCount"
)

type ListGalleriesParams struct {
	Search    string
	From      *time.Time
	To        *time.Time
	MinImages *int
	MaxImages *int
	SortBy    string
	Order     string // asc, desc
	Offset    int
	Limit     int
}

type GalleryStore interface {
	WithTx(tx *gorm.DB) GalleryStore
	Create(ctx context.Context, gallery *model.Gallery) error
	FindOwned(ctx context.Context, galleryID uint, ownerID uint) (*model.Gallery, error)
	List(ctx context.Context, ownerID uint, params ListGalleriesParams) ([]model.Gallery, int64, error)
	IncrementCount(ctx context.Context, galleryID uint, delta int) error
	Update(ctx context.Context, galleryID uint, fields map[string]interface{}) error
	Delete(ctx context.Context, galleryID uint) error
	RecountAll(ctx context.Context) (int64, error)
}
