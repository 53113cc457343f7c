package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	platformservice "gallery-server/internal/platform/service"
)

func newTestStore(t *testing.T) *LocalBlobStore {
	t.Helper()
	return NewLocalBlobStore(filepath.Join(t.TempDir(), "uploads"), "/uploads/")
}

// 测试内容：验证保存文件会创建根目录并生成带原扩展名的唯一名称。
func TestSave_CreatesRootAndUniqueNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	name1, rel1, err := s.Save(ctx, strings.NewReader("one"), "cat.JPG")
	if err != nil {
		t.Fatalf("Save 错误: %v", err)
	}
	name2, rel2, err := s.Save(ctx, strings.NewReader("two"), "cat.JPG")
	if err != nil {
		t.Fatalf("Save 错误: %v", err)
	}

	if name1 == name2 || rel1 == rel2 {
		t.Fatalf("期望两次保存得到不同名称，实际为 %q 与 %q", name1, name2)
	}
	if !strings.HasSuffix(name1, ".jpg") {
		t.Fatalf("期望扩展名小写保留为 .jpg，实际为 %q", name1)
	}
	if rel1 != "/uploads/"+name1 {
		t.Fatalf("期望 relPath 带前缀，实际为 %q", rel1)
	}

	data, err := os.ReadFile(filepath.Join(s.Root(), name1))
	if err != nil {
		t.Fatalf("读取已保存文件失败: %v", err)
	}
	if string(data) != "one" {
		t.Fatalf("期望内容 one，实际为 %q", data)
	}
}

// 测试内容：验证名称冲突时不会覆盖已有文件，而是返回 IOFailure。
func TestSave_NeverOverwrites(t *testing.T) {
	s := newTestStore(t)
	fixed := time.UnixMilli(1700000000000)
	s.now = func() time.Time { return fixed }
	s.random = func() string { return "deadbeef0000" }
	ctx := context.Background()

	name, _, err := s.Save(ctx, strings.NewReader("first"), "a.png")
	if err != nil {
		t.Fatalf("Save 错误: %v", err)
	}
	if name != "1700000000000-deadbeef0000.png" {
		t.Fatalf("非预期文件名: %q", name)
	}

	_, _, err = s.Save(ctx, strings.NewReader("second"), "a.png")
	se, ok := platformservice.AsServiceError(err)
	if !ok || se.Code != platformservice.ErrorCodeIOFailure {
		t.Fatalf("期望名称冲突返回 io_failure，实际为 %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(s.Root(), name))
	if string(data) != "first" {
		t.Fatalf("期望原内容保持不变，实际为 %q", data)
	}
}

// 测试内容：验证删除不存在的文件不会报错，删除已存在文件会移除它。
func TestDelete_BestEffort(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Delete(ctx, "/uploads/missing.png")
	s.Delete(ctx, "/uploads/../../etc/passwd")
	s.Delete(ctx, "no-prefix.png")

	_, rel, err := s.Save(ctx, strings.NewReader("x"), "a.png")
	if err != nil {
		t.Fatalf("Save 错误: %v", err)
	}
	if !s.Exists(rel) {
		t.Fatalf("期望文件存在: %s", rel)
	}
	s.Delete(ctx, rel)
	if s.Exists(rel) {
		t.Fatalf("期望文件已删除: %s", rel)
	}
}

// 测试内容：验证复制会生成新名称、内容一致，且扩展名取自原始文件名。
func TestCopy_DuplicatesBytes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}

	_, rel, err := s.Save(ctx, bytes.NewReader(payload), "a.png")
	if err != nil {
		t.Fatalf("Save 错误: %v", err)
	}
	copied, err := s.Copy(ctx, rel, "original.jpeg")
	if err != nil {
		t.Fatalf("Copy 错误: %v", err)
	}
	if copied == rel {
		t.Fatalf("期望复制后路径不同")
	}
	if !strings.HasSuffix(copied, ".jpeg") {
		t.Fatalf("期望扩展名来自原始文件名，实际为 %q", copied)
	}

	got, err := os.ReadFile(filepath.Join(s.Root(), strings.TrimPrefix(copied, "/uploads/")))
	if err != nil {
		t.Fatalf("读取副本失败: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("期望副本内容一致")
	}
}

// 测试内容：验证源文件不存在时复制返回 IOFailure。
func TestCopy_MissingSourceFails(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Copy(context.Background(), "/uploads/nope.png", "nope.png")
	se, ok := platformservice.AsServiceError(err)
	if !ok || se.Code != platformservice.ErrorCodeIOFailure {
		t.Fatalf("期望 io_failure，实际为 %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("期望保留原始 not-exist 错误，实际为 %v", err)
	}
}

// 测试内容：验证 List 返回所有文件及其修改时间，目录不存在时返回空。
func TestList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	blobs, err := s.List(ctx)
	if err != nil || len(blobs) != 0 {
		t.Fatalf("期望空列表，实际为 %v err=%v", blobs, err)
	}

	saved := make(map[string]bool)
	for i := 0; i < 3; i++ {
		_, relPath, err := s.Save(ctx, strings.NewReader("x"), "a.png")
		if err != nil {
			t.Fatalf("Save 错误: %v", err)
		}
		saved[relPath] = true
	}
	old := time.Now().Add(-time.Hour)
	for relPath := range saved {
		if err := os.Chtimes(filepath.Join(s.Root(), strings.TrimPrefix(relPath, "/uploads/")), old, old); err != nil {
			t.Fatalf("修改文件时间失败: %v", err)
		}
	}

	blobs, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List 错误: %v", err)
	}
	if len(blobs) != 3 {
		t.Fatalf("期望 3 个文件，实际为 %d", len(blobs))
	}
	for _, b := range blobs {
		if !saved[b.Path] {
			t.Fatalf("非预期的文件: %s", b.Path)
		}
		if b.ModTime.Sub(old).Abs() > time.Second {
			t.Fatalf("期望修改时间为 %v，实际为 %v", old, b.ModTime)
		}
	}
}

// 测试内容：验证名称解析拒绝路径穿越与符号链接。
func TestResolveName_RejectsTraversalAndSymlink(t *testing.T) {
	root := t.TempDir()

	for _, bad := range []string{"", ".", "..", "../x", "a/b.png", `a\b.png`} {
		if _, err := resolveName(root, bad); err == nil {
			t.Fatalf("期望 %q 被拒绝", bad)
		}
	}

	outside := filepath.Join(t.TempDir(), "secret.png")
	if err := os.WriteFile(outside, []byte("x"), 0644); err != nil {
		t.Fatalf("写入文件失败: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(root, "link.png")); err != nil {
		t.Skipf("当前环境不支持符号链接: %v", err)
	}
	if _, err := resolveName(root, "link.png"); err == nil {
		t.Fatalf("期望符号链接被拒绝")
	}
}
