package repo

import (
	"context"

	"gallery-server/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) WithTx(tx *gorm.DB) ImageStore {
	return &ImageRepository{db: tx}
}

func (r *ImageRepository) Create(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// FindOwned 通过所属相册的 user_id 判断归属，图片本身没有所有者字段。
// 所有按 ID 读取图片的业务路径都必须经过这里。
func (r *ImageRepository) FindOwned(ctx context.Context, imageID uint, ownerID uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).
		Joins("JOIN galleries ON galleries.id = images.gallery_id").
		Where("images.id = ? AND galleries.user_id = ?", imageID, ownerID).
		First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) ListByGallery(ctx context.Context, galleryID uint, offset int, limit int) ([]model.Image, int64, error) {
	var images []model.Image
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Image{}).Where("gallery_id = ?", galleryID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at desc").Order("id desc").
		Offset(offset).Limit(limit).Find(&images).Error; err != nil {
		return nil, 0, err
	}
	return images, total, nil
}

func (r *ImageRepository) ListAllByGalleryForOwner(ctx context.Context, galleryID uint, ownerID uint) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.WithContext(ctx).
		Joins("JOIN galleries ON galleries.id = images.gallery_id").
		Where("images.gallery_id = ? AND galleries.user_id = ?", galleryID, ownerID).
		Order("images.id asc").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) UpdateParent(ctx context.Context, imageID uint, galleryID uint) error {
	res := r.db.WithContext(ctx).Model(&model.Image{}).Where("id = ?", imageID).
		UpdateColumn("gallery_id", galleryID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ImageRepository) Delete(ctx context.Context, imageID uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Image{}, imageID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ImageRepository) DeleteAllByGallery(ctx context.Context, galleryID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("gallery_id = ?", galleryID).Delete(&model.Image{})
	return res.RowsAffected, res.Error
}

func (r *ImageRepository) ListAllPaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := r.db.WithContext(ctx).Model(&model.Image{}).Pluck("path", &paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}
