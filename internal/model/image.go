package model

import "time"

// Image 指向一个磁盘文件。没有独立的所有者字段，归属关系通过 Gallery.UserID 推导。
type Image struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Path             string    `json:"path" gorm:"not null;unique;size:255"`
	OriginalFilename string    `json:"originalFilename" gorm:"not null;size:255"`
	GalleryID        uint      `json:"galleryId" gorm:"not null;index"`
	Gallery          Gallery   `json:"-" gorm:"foreignKey:GalleryID;references:ID;constraint:OnDelete:RESTRICT;"`
	CreatedAt        time.Time `json:"createdAt" gorm:"index"`
}
