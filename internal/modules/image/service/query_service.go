package service

import (
	"context"

	moduledto "gallery-server/internal/modules/image/dto"
	platformservice "gallery-server/internal/platform/service"
)

const (
	defaultImagePageSize = 10
	maxImagePageSize     = 100
	// maxPage 限制页码，避免 (page-1)*limit 溢出为负偏移
	maxPage              = 100000
)

// normalizePagination 归一化分页参数，确保页码与页大小有最小值。
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultImagePageSize
	}
	if limit > maxImagePageSize {
		limit = maxImagePageSize
	}
	return page, limit
}

// ListGalleryImages 分页列出相册中的图片，按创建时间倒序。
func (s *Service) ListGalleryImages(ctx context.Context, galleryID uint, userID uint, page int, limit int) (*moduledto.GalleryImagesResponse, error) {
	if _, err := s.galleryStore.FindOwned(ctx, galleryID, userID); err != nil {
		return nil, platformservice.FromRepositoryError(err, "相册不存在")
	}

	page, limit = normalizePagination(page, limit)
	images, total, err := s.imageStore.ListByGallery(ctx, galleryID, (page-1)*limit, limit)
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "相册不存在")
	}

	return &moduledto.GalleryImagesResponse{
		GalleryID:  galleryID,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		Images:     images,
	}, nil
}
