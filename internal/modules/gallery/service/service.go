package service

import (
	"context"

	"gallery-server/internal/modules/gallery/repo"
)

// ImageCascader 删除相册前负责清理相册内全部图片（记录与文件）。
type ImageCascader interface {
	CascadeDeleteGallery(ctx context.Context, galleryID uint, userID uint) (int, error)
}

type Service struct {
	galleryStore repo.GalleryStore
	cascader     ImageCascader
}

func New(galleryStore repo.GalleryStore, cascader ImageCascader) *Service {
	return &Service{
		galleryStore: galleryStore,
		cascader:     cascader,
	}
}
