package testutils

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sync/atomic"
	"testing"

	"gallery-server/internal/db"
	"gallery-server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB 为每个测试创建独立的内存 SQLite 数据库，开启外键并同步表结构，测试结束时关闭连接。
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:gs_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("打开 sqlite 失败: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("获取 sql.DB 失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("同步表结构失败: %v", err)
	}
	return gdb
}

// CreateUser 以指定邮箱插入用户。
func CreateUser(t *testing.T, gdb *gorm.DB, email string) model.User {
	t.Helper()
	u := model.User{Email: email, Password: "x"}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

// CreateGallery 插入属于 userID 的相册。
func CreateGallery(t *testing.T, gdb *gorm.DB, userID uint, title string) model.Gallery {
	t.Helper()
	g := model.Gallery{Title: title, UserID: userID}
	if err := gdb.Create(&g).Error; err != nil {
		t.Fatalf("创建相册失败: %v", err)
	}
	return g
}

// ReloadGallery 从数据库重新读取相册。
func ReloadGallery(t *testing.T, gdb *gorm.DB, id uint) model.Gallery {
	t.Helper()
	var g model.Gallery
	if err := gdb.First(&g, id).Error; err != nil {
		t.Fatalf("重新读取相册 %d 失败: %v", id, err)
	}
	return g
}

// CountImages 返回引用 galleryID 的图片行数。
func CountImages(t *testing.T, gdb *gorm.DB, galleryID uint) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(&model.Image{}).Where("gallery_id = ?", galleryID).Count(&n).Error; err != nil {
		t.Fatalf("统计图片失败: %v", err)
	}
	return n
}

// MinimalPNG 返回一张合法的 1x1 PNG。
func MinimalPNG() []byte {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// JPEGOfSize 返回一张合法的 JPEG，末尾补零直到不少于 n 字节。
func JPEGOfSize(n int) []byte {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	_ = jpeg.Encode(&buf, img, nil)
	for buf.Len() < n {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}
