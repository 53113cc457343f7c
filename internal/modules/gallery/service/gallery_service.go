package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gallery-server/internal/model"
	moduledto "gallery-server/internal/modules/gallery/dto"
	platformservice "gallery-server/internal/platform/service"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

func (s *Service) Create(ctx context.Context, userID uint, req moduledto.CreateGalleryRequest) (*model.Gallery, error) {
	title, err := normalizeTitle(req.Title)
	if err != nil {
		return nil, err
	}
	description, err := normalizeDescription(req.Description)
	if err != nil {
		return nil, err
	}

	gallery := &model.Gallery{
		Title:       title,
		Description: description,
		UserID:      userID,
	}
	if err := s.galleryStore.Create(ctx, gallery); err != nil {
		return nil, platformservice.FromRepositoryError(err, "用户不存在")
	}
	return gallery, nil
}

// Get 返回当前用户拥有的相册，他人的相册与不存在的相册同样返回 not_found。
func (s *Service) Get(ctx context.Context, galleryID uint, userID uint) (*model.Gallery, error) {
	gallery, err := s.galleryStore.FindOwned(ctx, galleryID, userID)
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "相册不存在")
	}
	return gallery, nil
}

func (s *Service) Update(ctx context.Context, galleryID uint, userID uint, req moduledto.UpdateGalleryRequest) (*model.Gallery, error) {
	if _, err := s.Get(ctx, galleryID, userID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		title, err := normalizeTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		fields["title"] = title
	}
	if req.Description != nil {
		description, err := normalizeDescription(*req.Description)
		if err != nil {
			return nil, err
		}
		fields["description"] = description
	}
	if len(fields) == 0 {
		return nil, platformservice.NewValidationError("没有需要更新的字段")
	}

	if err := s.galleryStore.Update(ctx, galleryID, fields); err != nil {
		return nil, platformservice.FromRepositoryError(err, "相册不存在")
	}
	return s.Get(ctx, galleryID, userID)
}

// Delete 先由 cascader 删除相册内全部图片，再删除相册本身。
func (s *Service) Delete(ctx context.Context, galleryID uint, userID uint) (*moduledto.DeleteGalleryResult, error) {
	count, err := s.cascader.CascadeDeleteGallery(ctx, galleryID, userID)
	if err != nil {
		return nil, err
	}
	return &moduledto.DeleteGalleryResult{
		Message: fmt.Sprintf("相册及其 %d 张图片已删除", count),
		Count:   count,
	}, nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", platformservice.NewValidationError("标题不能为空")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", platformservice.NewValidationError(fmt.Sprintf("标题不能超过 %d 个字符", maxTitleLength))
	}
	return title, nil
}

func normalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return "", platformservice.NewValidationError(fmt.Sprintf("描述不能超过 %d 个字符", maxDescriptionLength))
	}
	return description, nil
}
