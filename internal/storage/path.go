package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolveName 将 blob 名称解析为 root 下的绝对路径。
// 名称必须是单层文件名，拒绝分隔符与 ".."，避免越出存储根目录。
func resolveName(root, name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("非法文件名: %q", name)
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("非法文件名: %q", name)
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}
	if err := ensureNotSymlink(rootAbs); err != nil {
		return "", err
	}

	target := filepath.Join(rootAbs, name)
	rel, err := filepath.Rel(rootAbs, target)
	if err != nil || rel != name {
		return "", fmt.Errorf("非法路径: 目标超出存储目录")
	}
	if err := ensureNotSymlink(target); err != nil {
		return "", err
	}
	return target, nil
}

// ensureNotSymlink 检查路径节点本身不是符号链接；路径不存在时视为安全。
func ensureNotSymlink(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("检查路径失败: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("检测到符号链接穿透风险: %s", path)
	}
	return nil
}
