package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Gallery 图片集合。ImagesCount 为冗余计数，必须与引用该相册的 Image 行数一致。
type Gallery struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"size:500"`
	// SearchText 为标题与描述按 Unicode 规则转小写后的拼接，供大小写不敏感搜索使用
	SearchText  string    `json:"-" gorm:"not null;default:'';size:610"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	User        User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	ImagesCount int       `json:"imagesCount" gorm:"not null;default:0;check:images_count_non_negative,images_count >= 0"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	Images      []Image   `json:"-"`
}

// GallerySearchText 生成搜索列的值。数据库的 LOWER 在 SQLite 上只处理 ASCII，因此在 Go 中转换。
func GallerySearchText(title, description string) string {
	return strings.ToLower(title) + "\n" + strings.ToLower(description)
}

func (g *Gallery) BeforeCreate(_ *gorm.DB) error {
	g.SearchText = GallerySearchText(g.Title, g.Description)
	return nil
}
