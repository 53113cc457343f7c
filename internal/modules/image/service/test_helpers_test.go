package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gallery-server/internal/db"
	"gallery-server/internal/model"
	galleryrepo "gallery-server/internal/modules/gallery/repo"
	"gallery-server/internal/modules/image/repo"
	"gallery-server/internal/storage"
	"gallery-server/internal/testutils"

	"gorm.io/gorm"
)

type engineFixture struct {
	gdb       *gorm.DB
	root      string
	service   *Service
	blobs     *storage.LocalBlobStore
	images    repo.ImageStore
	galleries galleryrepo.GalleryStore
}

func setupEngine(t *testing.T) *engineFixture {
	t.Helper()
	gdb := testutils.SetupDB(t)
	root := t.TempDir()
	f := &engineFixture{
		gdb:       gdb,
		root:      root,
		blobs:     storage.NewLocalBlobStore(root, "/uploads/"),
		images:    repo.NewImageRepository(gdb),
		galleries: galleryrepo.NewGalleryRepository(gdb),
	}
	f.service = New(db.NewTransactor(gdb), f.galleries, f.images, f.blobs)
	return f
}

// withImageStore 用替换后的 ImageStore 重建引擎。
func (f *engineFixture) withImageStore(store repo.ImageStore) *Service {
	return New(db.NewTransactor(f.gdb), f.galleries, store, f.blobs)
}

// withBlobStore 用替换后的 BlobStore 重建引擎。
func (f *engineFixture) withBlobStore(store storage.BlobStore) *Service {
	return New(db.NewTransactor(f.gdb), f.galleries, f.images, store)
}

// ageBlob 把文件修改时间调到宽限期之前。
func (f *engineFixture) ageBlob(t *testing.T, relPath string) {
	t.Helper()
	old := time.Now().Add(-2 * orphanGracePeriod)
	if err := os.Chtimes(filepath.Join(f.root, strings.TrimPrefix(relPath, "/uploads/")), old, old); err != nil {
		t.Fatalf("修改文件时间失败: %v", err)
	}
}

func (f *engineFixture) blobCount(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(f.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0
		}
		t.Fatalf("读取存储目录失败: %v", err)
	}
	return len(entries)
}

// upload 上传 n 张 PNG 到相册并断言成功。
func (f *engineFixture) upload(t *testing.T, galleryID, userID uint, names ...string) []model.Image {
	t.Helper()
	parts := make([]testutils.UploadPart, 0, len(names))
	for _, name := range names {
		parts = append(parts, testutils.UploadPart{Filename: name, Content: testutils.MinimalPNG()})
	}
	res, err := f.service.Upload(context.Background(), testutils.MustFileHeaders(t, parts...), galleryID, userID)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	return res.Images
}

// assertCounter 断言相册计数与实际图片行数一致且等于 want。
func assertCounter(t *testing.T, gdb *gorm.DB, galleryID uint, want int) {
	t.Helper()
	g := testutils.ReloadGallery(t, gdb, galleryID)
	rows := testutils.CountImages(t, gdb, galleryID)
	if g.ImagesCount != want || rows != int64(want) {
		t.Fatalf("期望相册 %d 计数与行数均为 %d，实际为 count=%d rows=%d", galleryID, want, g.ImagesCount, rows)
	}
}

// failingImageStore 在第 failOn 次 Create 时返回错误，事务内外共享计数。
type failingImageStore struct {
	repo.ImageStore
	failOn  int
	creates *int
}

func newFailingImageStore(inner repo.ImageStore, failOn int) *failingImageStore {
	return &failingImageStore{ImageStore: inner, failOn: failOn, creates: new(int)}
}

func (s *failingImageStore) WithTx(tx *gorm.DB) repo.ImageStore {
	return &failingImageStore{ImageStore: s.ImageStore.WithTx(tx), failOn: s.failOn, creates: s.creates}
}

func (s *failingImageStore) Create(ctx context.Context, image *model.Image) error {
	*s.creates++
	if *s.creates == s.failOn {
		return errors.New("injected create failure")
	}
	return s.ImageStore.Create(ctx, image)
}

// listHookBlobStore 在 List 之前执行 beforeList，用于模拟并发写入。
type listHookBlobStore struct {
	storage.BlobStore
	beforeList func()
}

func (s *listHookBlobStore) List(ctx context.Context) ([]storage.BlobInfo, error) {
	if s.beforeList != nil {
		s.beforeList()
	}
	return s.BlobStore.List(ctx)
}
