package service

import (
	"log/slog"
	"time"

	"gallery-server/internal/db"
	galleryrepo "gallery-server/internal/modules/gallery/repo"
	"gallery-server/internal/modules/image/repo"
	"gallery-server/internal/storage"
)

// Service 协调数据库记录、相册计数与磁盘文件三者的一致性。
// 所有跨表写操作都在 transactor 提供的单个事务内完成，磁盘文件的删除一律放在提交之后。
type Service struct {
	transactor   *db.Transactor
	galleryStore galleryrepo.GalleryStore
	imageStore   repo.ImageStore
	blobStore    storage.BlobStore
	logger       *slog.Logger
	now          func() time.Time
	orphanGrace  time.Duration
}

func New(transactor *db.Transactor, galleryStore galleryrepo.GalleryStore, imageStore repo.ImageStore, blobStore storage.BlobStore) *Service {
	return &Service{
		transactor:   transactor,
		galleryStore: galleryStore,
		imageStore:   imageStore,
		blobStore:    blobStore,
		logger:       slog.Default().With("component", "image_engine"),
		now:          time.Now,
		orphanGrace:  orphanGracePeriod,
	}
}
