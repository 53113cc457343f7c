package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gallery-server/internal/model"
	"gallery-server/internal/testutils"

	"gorm.io/gorm"
)

func createImage(t *testing.T, gdb *gorm.DB, galleryID uint, name string) model.Image {
	t.Helper()
	img := model.Image{Path: "/uploads/" + name, OriginalFilename: name, GalleryID: galleryID}
	if err := gdb.Create(&img).Error; err != nil {
		t.Fatalf("创建图片失败: %v", err)
	}
	return img
}

// 测试内容：验证图片归属通过相册所有者判断，其他用户查询返回 not found。
func TestFindOwned_JoinsThroughGallery(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewImageRepository(gdb)
	ctx := context.Background()

	alice := testutils.CreateUser(t, gdb, "alice@example.com")
	bob := testutils.CreateUser(t, gdb, "bob@example.com")
	g := testutils.CreateGallery(t, gdb, alice.ID, "A")
	img := createImage(t, gdb, g.ID, "a.png")

	got, err := store.FindOwned(ctx, img.ID, alice.ID)
	if err != nil || got.ID != img.ID {
		t.Fatalf("期望所有者可查到图片，实际为 %v err=%v", got, err)
	}
	if _, err := store.FindOwned(ctx, img.ID, bob.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望非所有者返回 ErrRecordNotFound，实际为 %v", err)
	}
}

// 测试内容：验证分页列表按创建时间倒序并返回总数。
func TestListByGallery_OrderAndPaging(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewImageRepository(gdb)

	u := testutils.CreateUser(t, gdb, "a@example.com")
	g := testutils.CreateGallery(t, gdb, u.ID, "A")
	var ids []uint
	for i := 0; i < 5; i++ {
		ids = append(ids, createImage(t, gdb, g.ID, fmt.Sprintf("%d.png", i)).ID)
	}

	items, total, err := store.ListByGallery(context.Background(), g.ID, 0, 2)
	if err != nil {
		t.Fatalf("ListByGallery 错误: %v", err)
	}
	if total != 5 || len(items) != 2 {
		t.Fatalf("期望 total=5 len=2，实际为 total=%d len=%d", total, len(items))
	}
	if items[0].ID != ids[4] || items[1].ID != ids[3] {
		t.Fatalf("期望最新的图片排在前面，实际为 %d,%d", items[0].ID, items[1].ID)
	}
}

// 测试内容：验证改挂相册、删除与批量删除。
func TestMutations(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewImageRepository(gdb)
	ctx := context.Background()

	u := testutils.CreateUser(t, gdb, "a@example.com")
	g1 := testutils.CreateGallery(t, gdb, u.ID, "G1")
	g2 := testutils.CreateGallery(t, gdb, u.ID, "G2")
	a := createImage(t, gdb, g1.ID, "a.png")
	createImage(t, gdb, g1.ID, "b.png")
	createImage(t, gdb, g1.ID, "c.png")

	if err := store.UpdateParent(ctx, a.ID, g2.ID); err != nil {
		t.Fatalf("UpdateParent 错误: %v", err)
	}
	if testutils.CountImages(t, gdb, g2.ID) != 1 {
		t.Fatalf("期望 G2 有 1 张图片")
	}
	if err := store.UpdateParent(ctx, 9999, g2.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望不存在的图片返回 ErrRecordNotFound，实际为 %v", err)
	}

	if err := store.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete 错误: %v", err)
	}
	if err := store.Delete(ctx, a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望重复删除返回 ErrRecordNotFound，实际为 %v", err)
	}

	n, err := store.DeleteAllByGallery(ctx, g1.ID)
	if err != nil || n != 2 {
		t.Fatalf("期望批量删除 2 张，实际为 %d err=%v", n, err)
	}

	all, err := store.ListAllByGalleryForOwner(ctx, g1.ID, u.ID)
	if err != nil || len(all) != 0 {
		t.Fatalf("期望 G1 已无图片，实际为 %v err=%v", all, err)
	}
}

// 测试内容：验证外键约束阻止删除仍有图片的相册行。
func TestGalleryDeleteRestrictedWhileImagesExist(t *testing.T) {
	gdb := testutils.SetupDB(t)

	u := testutils.CreateUser(t, gdb, "a@example.com")
	g := testutils.CreateGallery(t, gdb, u.ID, "G")
	createImage(t, gdb, g.ID, "a.png")

	if err := gdb.Delete(&model.Gallery{}, g.ID).Error; err == nil {
		t.Fatalf("期望存在图片时删除相册行失败")
	}
}
