package service

import (
	"context"
	"fmt"

	"gallery-server/internal/model"
	moduledto "gallery-server/internal/modules/image/dto"
	platformservice "gallery-server/internal/platform/service"

	"gorm.io/gorm"
)

// Delete 删除单张图片。
// 计数减一与删除记录在同一事务内；事务提交后再尽力删除磁盘文件，
// 删除失败只会留下可被对账发现的孤儿文件，不会留下指向已删文件的记录。
func (s *Service) Delete(ctx context.Context, imageID uint, userID uint) (*moduledto.DeleteResult, error) {
	image, err := s.imageStore.FindOwned(ctx, imageID, userID)
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "图片不存在")
	}

	err = s.transactor.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := s.galleryStore.WithTx(tx).IncrementCount(ctx, image.GalleryID, -1); err != nil {
			return err
		}
		return s.imageStore.WithTx(tx).Delete(ctx, image.ID)
	})
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "图片不存在")
	}

	s.blobStore.Delete(ctx, image.Path)
	return &moduledto.DeleteResult{Message: "已删除 " + image.OriginalFilename}, nil
}

// Move 将图片改挂到同一用户的另一个相册。
// 归属校验、改挂和两个计数的调整全部在一个事务内完成，外部观察不到中间状态。
func (s *Service) Move(ctx context.Context, imageID uint, targetGalleryID uint, userID uint) (*moduledto.TransferResult, error) {
	var (
		moved  *model.Image
		target *model.Gallery
	)
	err := s.transactor.WithinTx(ctx, func(tx *gorm.DB) error {
		galleryStore := s.galleryStore.WithTx(tx)
		imageStore := s.imageStore.WithTx(tx)

		var err error
		if target, err = galleryStore.FindOwned(ctx, targetGalleryID, userID); err != nil {
			return platformservice.FromRepositoryError(err, "目标相册不存在")
		}
		image, err := imageStore.FindOwned(ctx, imageID, userID)
		if err != nil {
			return platformservice.FromRepositoryError(err, "图片不存在")
		}
		if image.GalleryID == targetGalleryID {
			return platformservice.NewInvalidOperationError("图片已在该相册中")
		}

		sourceGalleryID := image.GalleryID
		if err := imageStore.UpdateParent(ctx, image.ID, targetGalleryID); err != nil {
			return err
		}
		if err := galleryStore.IncrementCount(ctx, sourceGalleryID, -1); err != nil {
			return err
		}
		if err := galleryStore.IncrementCount(ctx, targetGalleryID, 1); err != nil {
			return err
		}
		image.GalleryID = targetGalleryID
		moved = image
		return nil
	})
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "图片不存在")
	}

	return &moduledto.TransferResult{
		Message: fmt.Sprintf("图片已移动到 %s", target.Title),
		Image:   *moved,
	}, nil
}

// Copy 复制图片到另一个相册：先复制磁盘文件，再在事务内创建记录并增加目标计数。
// 文件复制失败时不会创建任何记录；事务失败时删除新复制出的文件。
func (s *Service) Copy(ctx context.Context, imageID uint, targetGalleryID uint, userID uint) (*moduledto.TransferResult, error) {
	target, err := s.galleryStore.FindOwned(ctx, targetGalleryID, userID)
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "目标相册不存在")
	}
	image, err := s.imageStore.FindOwned(ctx, imageID, userID)
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "图片不存在")
	}
	if image.GalleryID == targetGalleryID {
		return nil, platformservice.NewInvalidOperationError("不能复制到图片所在的相册")
	}

	newPath, err := s.blobStore.Copy(ctx, image.Path, image.OriginalFilename)
	if err != nil {
		return nil, err
	}

	duplicate := model.Image{
		Path:             newPath,
		OriginalFilename: image.OriginalFilename,
		GalleryID:        targetGalleryID,
	}
	err = s.transactor.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := s.imageStore.WithTx(tx).Create(ctx, &duplicate); err != nil {
			return err
		}
		return s.galleryStore.WithTx(tx).IncrementCount(ctx, targetGalleryID, 1)
	})
	if err != nil {
		s.blobStore.Delete(ctx, newPath)
		return nil, platformservice.FromRepositoryError(err, "目标相册不存在")
	}

	return &moduledto.TransferResult{
		Message: fmt.Sprintf("图片已复制到 %s", target.Title),
		Image:   duplicate,
	}, nil
}
