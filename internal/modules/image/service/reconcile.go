package service

import (
	"context"
	"time"

	moduledto "gallery-server/internal/modules/image/dto"
	platformservice "gallery-server/internal/platform/service"
)

// orphanGracePeriod 内新写入的文件可能仍处于 Save 与事务提交之间，不视为孤儿。
const orphanGracePeriod = 10 * time.Minute

// Reconcile 重新计算所有相册计数，并比对磁盘文件与图片记录。
// purge 为 true 时删除没有任何记录引用的孤儿文件。
//
// 先列出磁盘文件再读取记录：列出之后提交的上传，其路径一定出现在随后读取的记录中。
func (s *Service) Reconcile(ctx context.Context, purge bool) (*moduledto.ReconcileReport, error) {
	recounted, err := s.galleryStore.RecountAll(ctx)
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "")
	}

	blobs, err := s.blobStore.List(ctx)
	if err != nil {
		return nil, err
	}
	paths, err := s.imageStore.ListAllPaths(ctx)
	if err != nil {
		return nil, platformservice.FromRepositoryError(err, "")
	}

	referenced := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		referenced[p] = struct{}{}
	}
	onDisk := make(map[string]struct{}, len(blobs))

	report := &moduledto.ReconcileReport{GalleriesRecounted: recounted}
	cutoff := s.now().Add(-s.orphanGrace)
	for _, b := range blobs {
		onDisk[b.Path] = struct{}{}
		if _, ok := referenced[b.Path]; ok {
			continue
		}
		if b.ModTime.After(cutoff) {
			report.PendingBlobs = append(report.PendingBlobs, b.Path)
			continue
		}
		report.OrphanBlobs = append(report.OrphanBlobs, b.Path)
	}
	for _, p := range paths {
		if _, ok := onDisk[p]; ok {
			continue
		}
		// 列出磁盘之后才写入的文件不算缺失
		if !s.blobStore.Exists(p) {
			report.MissingBlobs = append(report.MissingBlobs, p)
		}
	}

	// 新文件名每次都重新生成，超过宽限期仍无引用的文件不会再被任何记录引用
	if purge {
		for _, b := range report.OrphanBlobs {
			s.blobStore.Delete(ctx, b)
			report.Purged++
		}
	}
	if len(report.MissingBlobs) > 0 {
		s.logger.WarnContext(ctx, "image rows reference missing blobs", "count", len(report.MissingBlobs))
	}
	return report, nil
}
