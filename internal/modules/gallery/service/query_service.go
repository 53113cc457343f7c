package service

import (
	"context"

	moduledto "gallery-server/internal/modules/gallery/dto"
	"gallery-server/internal/modules/gallery/repo"
	platformservice "gallery-server/internal/platform/service"
)

const (
	defaultGalleryPageSize = 9
	maxGalleryPageSize     = 100
	// maxPage 限制页码，避免 (page-1)*limit 溢出为负偏移
	maxPage                = 100000
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
		limit = defaultGalleryPageSize
	}
	if limit > maxGalleryPageSize {
		limit = maxGalleryPageSize
	}
	return page, limit
}

// ListUserGalleries 按过滤、排序、分页条件列出用户自己的相册。
func (s *Service) ListUserGalleries(ctx context.Context, req moduledto.GalleryListRequest) (*moduledto.GalleryListResponse, error) {
	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		return nil, platformservice.NewValidationError("起始日期不能晚于结束日期")
	}
	if req.MinImages != nil && req.MaxImages != nil && *req.MinImages > *req.MaxImages {
		return nil, platformservice.NewValidationError("最小图片数不能大于最大图片数")
	}

	page, limit := normalizePagination(req.Page, req.Limit)
	items, total, err := s.galleryStore.List(ctx, req.UserID, repo.ListGalleriesParams{
		Search:    req.Search,
		From:      req.From,
		To:        req.To,
		MinImages: req.MinImages,
		MaxImages: req.MaxImages,
		SortBy:    req.SortBy,
		Order:     req.Order,
		Offset:    (page - 1) * limit,
		Limit:     limit,
	})
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "相册不存在")
	}

	return &moduledto.GalleryListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
