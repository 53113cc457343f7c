package repo

import (
	"context"
	"strings"

	"gallery-server/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

var sortColumns = map[string]string{
	SortByCreatedAt:   "created_at",
	SortByTitle:       "title",
	SortByImagesCount: "images_count",
}

func (r *GalleryRepository) WithTx(tx *gorm.DB) GalleryStore {
	return &GalleryRepository{db: tx}
}

func (r *GalleryRepository) Create(ctx context.Context, gallery *model.Gallery) error {
	return r.db.WithContext(ctx).Create(gallery).Error
}

// FindOwned 是相册的唯一归属校验入口：不属于 ownerID 的相册与不存在的相册同样返回 ErrRecordNotFound。
func (r *GalleryRepository) FindOwned(ctx context.Context, galleryID uint, ownerID uint) (*model.Gallery, error) {
	var gallery model.Gallery
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", galleryID, ownerID).
		First(&gallery).Error; err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (r *GalleryRepository) List(ctx context.Context, ownerID uint, params ListGalleriesParams) ([]model.Gallery, int64, error) {
	var galleries []model.Gallery
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Gallery{}).Where("user_id = ?", ownerID)

	// 搜索规则：整个查询串作为一个子串，大小写不敏感地匹配标题或描述。
	// search_text 以换行分隔标题与描述，查询串已去掉首尾空白，不会跨字段匹配。
	if search := strings.TrimSpace(params.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		like := "LIKE ? ESCAPE '\\'"
		if r.db.Dialector.Name() == "mysql" {
			// MySQL 默认转义符即为反斜杠，且字符串字面量中的 '\' 含义不同
			like = "LIKE ?"
		}
		query = query.Where("search_text "+like, pattern)
	}
	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("created_at <= ?", *params.To)
	}
	if params.MinImages != nil {
		query = query.Where("images_count >= ?", *params.MinImages)
	}
	if params.MaxImages != nil {
		query = query.Where("images_count <= ?", *params.MaxImages)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = sortColumns[SortByCreatedAt]
	}
	direction := "DESC"
	if strings.EqualFold(params.Order, "asc") {
		direction = "ASC"
	}

	if err := query.
		Order(column + " " + direction).
		Order("id " + direction).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&galleries).Error; err != nil {
		return nil, 0, err
	}

	return galleries, total, nil
}

// IncrementCount 以单条 UPDATE 原子地调整计数。会导致负数的递减不生效，也不报错。
func (r *GalleryRepository) IncrementCount(ctx context.Context, galleryID uint, delta int) error {
	if delta == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Gallery{}).Where("id = ?", galleryID).
		UpdateColumn("images_count", gorm.Expr(
			"CASE WHEN images_count + ? < 0 THEN images_count ELSE images_count + ? END", delta, delta,
		)).Error
}

// Update 更新指定列；标题或描述变化时同步重算 search_text。
func (r *GalleryRepository) Update(ctx context.Context, galleryID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	title, hasTitle := fields["title"].(string)
	description, hasDescription := fields["description"].(string)
	if hasTitle || hasDescription {
		var current model.Gallery
		if err := r.db.WithContext(ctx).Select("title", "description").
			Where("id = ?", galleryID).First(&current).Error; err != nil {
			return err
		}
		if !hasTitle {
			title = current.Title
		}
		if !hasDescription {
			description = current.Description
		}

		updates := make(map[string]interface{}, len(fields)+1)
		for k, v := range fields {
			updates[k] = v
		}
		updates["search_text"] = model.GallerySearchText(title, description)
		fields = updates
	}
	return r.db.WithContext(ctx).Model(&model.Gallery{}).Where("id = ?", galleryID).Updates(fields).Error
}

// Delete 只删除相册行；图片的级联清理由调用方负责。
func (r *GalleryRepository) Delete(ctx context.Context, galleryID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Gallery{}, galleryID).Error
}

// RecountAll 按 images 表重新计算所有相册的计数，返回被修正的相册数量。
func (r *GalleryRepository) RecountAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"UPDATE galleries SET images_count = (SELECT COUNT(*) FROM images WHERE images.gallery_id = galleries.id) " +
			"WHERE images_count <> (SELECT COUNT(*) FROM images WHERE images.gallery_id = galleries.id)",
	)
	return res.RowsAffected, res.Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
