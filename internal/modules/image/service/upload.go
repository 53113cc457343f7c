package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"gallery-server/internal/model"
	moduledto "gallery-server/internal/modules/image/dto"
	platformservice "gallery-server/internal/platform/service"

	"gorm.io/gorm"
)

// Upload 将一批文件写入相册。
//
// 顺序：校验相册归属 -> 逐个写入磁盘 -> 单个事务内创建全部记录并按数量增加计数。
// 整批是原子的：任一步失败都会删除本次写入的所有文件，不会留下任何记录，
// 返回的 UploadFailure 中 failed 等于 total。
func (s *Service) Upload(ctx context.Context, files []*multipart.FileHeader, galleryID uint, userID uint) (*moduledto.UploadResult, error) {
	if len(files) == 0 {
		return nil, platformservice.NewValidationError("请选择文件")
	}
	if limit := MaxFilesPerUpload(); len(files) > limit {
		return nil, platformservice.NewValidationError(fmt.Sprintf("单次最多上传 %d 个文件", limit))
	}
	for _, file := range files {
		if _, err := ValidateUploadFile(file); err != nil {
			return nil, err
		}
	}

	if _, err := s.galleryStore.FindOwned(ctx, galleryID, userID); err != nil {
		return nil, platformservice.FromRepositoryError(err, "相册不存在")
	}

	written := make([]string, 0, len(files))
	images := make([]model.Image, 0, len(files))
	fail := func(file string, cause error) error {
		for _, p := range written {
			s.blobStore.Delete(ctx, p)
		}
		s.logger.ErrorContext(ctx, "upload aborted, written blobs removed",
			"gallery_id", galleryID, "file", file, "removed", len(written), "error", cause)
		return platformservice.NewUploadFailureError(len(files), len(files), file, cause)
	}

	for _, file := range files {
		relPath, err := s.saveUpload(ctx, file)
		if err != nil {
			return nil, fail(file.Filename, err)
		}
		written = append(written, relPath)
		images = append(images, model.Image{
			Path:             relPath,
			OriginalFilename: file.Filename,
			GalleryID:        galleryID,
		})
	}

	failedFile := files[0].Filename
	err := s.transactor.WithinTx(ctx, func(tx *gorm.DB) error {
		imageStore := s.imageStore.WithTx(tx)
		for i := range images {
			if err := imageStore.Create(ctx, &images[i]); err != nil {
				failedFile = images[i].OriginalFilename
				return err
			}
		}
		return s.galleryStore.WithTx(tx).IncrementCount(ctx, galleryID, len(images))
	})
	if err != nil {
		return nil, fail(failedFile, err)
	}

	return &moduledto.UploadResult{
		Message: fmt.Sprintf("成功上传 %d 张图片", len(images)),
		Count:   len(images),
		Images:  images,
	}, nil
}

func (s *Service) saveUpload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", platformservice.NewIOFailureError("无法读取上传文件", err)
	}
	defer func() { _ = src.Close() }()

	_, relPath, err := s.blobStore.Save(ctx, src, file.Filename)
	return relPath, err
}
