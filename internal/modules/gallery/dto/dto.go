package dto

import (
	"time"

	"gallery-server/internal/model"
)

type CreateGalleryRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type UpdateGalleryRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// GalleryListQuery 为 /galleries/userGallery 的查询参数。
type GalleryListQuery struct {
	Search    string `form:"search"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=createdAt title imagesCount"`
	Order     string `form:"order" binding:"omitempty,oneof=asc desc"`
	From      string `form:"from"`
	To        string `form:"to"`
	MinImages *int   `form:"minImages" binding:"omitempty,min=0"`
	MaxImages *int   `form:"maxImages" binding:"omitempty,min=0"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type GalleryListRequest struct {
	UserID    uint
	Search    string
	SortBy    string
	Order     string
	From      *time.Time
	To        *time.Time
	MinImages *int
	MaxImages *int
	Page      int
	Limit     int
}

type GalleryListResponse struct {
	Items []model.Gallery `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type DeleteGalleryResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
