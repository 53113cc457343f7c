package repo

import "gorm.io/gorm"

func NewGalleryRepository(db *gorm.DB) GalleryStore {
	return &GalleryRepository{db: db}
}
