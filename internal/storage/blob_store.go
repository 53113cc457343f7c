package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gallery-server/internal/config"
	platformservice "gallery-server/internal/platform/service"

	"github.com/google/uuid"
)

// BlobStore 管理磁盘上的图片文件，不访问数据库。
// relPath 形如 "/uploads/<name>"，前缀由配置决定。
type BlobStore interface {
	Save(ctx context.Context, src io.Reader, originalName string) (storedName string, relPath string, err error)
	Delete(ctx context.Context, relPath string)
	Copy(ctx context.Context, relPath string, originalName string) (string, error)
	Exists(relPath string) bool
	List(ctx context.Context) ([]BlobInfo, error)
}

// BlobInfo 描述存储目录中的一个文件。
type BlobInfo struct {
	Path    string
	ModTime time.Time
}

type LocalBlobStore struct {
	root      string
	urlPrefix string
	logger    *slog.Logger
	now       func() time.Time
	random    func() string
}

func NewLocalBlobStore(root, urlPrefix string) *LocalBlobStore {
	if root == "" {
		root = "uploads"
	}
	if urlPrefix == "" {
		urlPrefix = "/uploads/"
	}
	return &LocalBlobStore{
		root:      root,
		urlPrefix: urlPrefix,
		logger:    slog.Default().With("component", "blob_store"),
		now:       time.Now,
		random:    randomToken,
	}
}

// ProvideBlobStore 按当前配置构造本地 blob 存储。
func ProvideBlobStore() BlobStore {
	cfg := config.Get().Upload
	return NewLocalBlobStore(cfg.Path, cfg.URLPrefix)
}

func (s *LocalBlobStore) Root() string {
	return s.root
}

// Save 以 "毫秒时间戳-随机串+原扩展名" 写入新文件。
// 文件以 O_EXCL 打开，已存在的名称不会被覆盖。
func (s *LocalBlobStore) Save(ctx context.Context, src io.Reader, originalName string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", platformservice.NewIOFailureError("文件保存已取消", err)
	}
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return "", "", platformservice.NewIOFailureError("系统错误: 无法创建存储目录", err)
	}

	name := s.newName(originalName)
	dst, err := resolveName(s.root, name)
	if err != nil {
		return "", "", platformservice.NewIOFailureError("系统错误: 非法文件路径", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", "", platformservice.NewIOFailureError("系统错误: 无法创建文件", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", "", platformservice.NewIOFailureError("文件保存失败", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", "", platformservice.NewIOFailureError("文件保存失败", err)
	}

	return name, s.urlPrefix + name, nil
}

// Delete 尽力删除文件。文件不存在视为成功；其他错误只记录日志，不向上返回。
func (s *LocalBlobStore) Delete(ctx context.Context, relPath string) {
	full, err := s.fullPath(relPath)
	if err != nil {
		s.logger.WarnContext(ctx, "blob delete skipped: invalid path", "path", relPath, "error", err)
		return
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.WarnContext(ctx, "blob delete failed, file may be orphaned", "path", relPath, "error", err)
	}
}

// Copy 以新名称复制文件，扩展名取自 originalName。源文件不可读时返回 IOFailure。
func (s *LocalBlobStore) Copy(ctx context.Context, relPath string, originalName string) (string, error) {
	full, err := s.fullPath(relPath)
	if err != nil {
		return "", platformservice.NewIOFailureError("源文件路径非法", err)
	}
	src, err := os.Open(full)
	if err != nil {
		return "", platformservice.NewIOFailureError("源文件不可读", err)
	}
	defer func() { _ = src.Close() }()

	_, newPath, err := s.Save(ctx, src, originalName)
	if err != nil {
		return "", err
	}
	return newPath, nil
}

func (s *LocalBlobStore) Exists(relPath string) bool {
	full, err := s.fullPath(relPath)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}

// List 返回存储目录中所有文件的 relPath 与修改时间。目录不存在时返回空列表。
func (s *LocalBlobStore) List(ctx context.Context) ([]BlobInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, platformservice.NewIOFailureError("读取存储目录失败", err)
	}
	blobs := make([]BlobInfo, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// 列出后被删除的文件直接跳过
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, platformservice.NewIOFailureError("读取文件信息失败", err)
		}
		blobs = append(blobs, BlobInfo{Path: s.urlPrefix + entry.Name(), ModTime: info.ModTime()})
	}
	return blobs, nil
}

func (s *LocalBlobStore) fullPath(relPath string) (string, error) {
	if !strings.HasPrefix(relPath, s.urlPrefix) {
		return "", fmt.Errorf("路径缺少前缀 %q: %q", s.urlPrefix, relPath)
	}
	return resolveName(s.root, strings.TrimPrefix(relPath, s.urlPrefix))
}

func (s *LocalBlobStore) newName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), s.random(), ext)
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
