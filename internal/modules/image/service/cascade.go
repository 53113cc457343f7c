package service

import (
	"context"

	"gallery-server/internal/model"
	platformservice "gallery-server/internal/platform/service"

	"gorm.io/gorm"
)

// CascadeDeleteGallery 删除相册及其全部图片，返回删除的图片数量。
// 图片列表在删除事务内读取，与并发上传互斥；磁盘文件在提交后逐个尽力删除。
func (s *Service) CascadeDeleteGallery(ctx context.Context, galleryID uint, userID uint) (int, error) {
	var images []model.Image
	err := s.transactor.WithinTx(ctx, func(tx *gorm.DB) error {
		galleryStore := s.galleryStore.WithTx(tx)
		imageStore := s.imageStore.WithTx(tx)

		if _, err := galleryStore.FindOwned(ctx, galleryID, userID); err != nil {
			return platformservice.FromRepositoryError(err, "相册不存在")
		}
		var err error
		if images, err = imageStore.ListAllByGalleryForOwner(ctx, galleryID, userID); err != nil {
			return err
		}
		if _, err := imageStore.DeleteAllByGallery(ctx, galleryID); err != nil {
			return err
		}
		return galleryStore.Delete(ctx, galleryID)
	})
	if err != nil {
		return 0, platformservice.FromRepositoryError(err, "相册不存在")
	}

	for _, image := range images {
		s.blobStore.Delete(ctx, image.Path)
	}
	s.logger.InfoContext(ctx, "gallery deleted", "gallery_id", galleryID, "images", len(images))
	return len(images), nil
}
