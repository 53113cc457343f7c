package dto

import "gallery-server/internal/model"

type TransferImageRequest struct {
	GalleryID uint `json:"galleryId" binding:"required"`
}

type UploadResult struct {
	Message string        `json:"message"`
	Count   int           `json:"count"`
	Images  []model.Image `json:"images"`
}

type DeleteResult struct {
	Message string `json:"message"`
}

type TransferResult struct {
	Message string      `json:"message"`
	Image   model.Image `json:"image"`
}

type GalleryImagesResponse struct {
	GalleryID  uint          `json:"galleryId"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
	Images     []model.Image `json:"images"`
}

// ReconcileReport 汇总一次对账的结果。
type ReconcileReport struct {
	GalleriesRecounted int64    `json:"galleriesRecounted"`
	OrphanBlobs        []string `json:"orphanBlobs"`
	// PendingBlobs 为宽限期内未被引用的新文件，不会被清理
	PendingBlobs       []string `json:"pendingBlobs"`
	MissingBlobs       []string `json:"missingBlobs"`
	Purged             int      `json:"purged"`
}
