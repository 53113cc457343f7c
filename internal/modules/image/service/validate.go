package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"gallery-server/internal/config"
	platformservice "gallery-server/internal/platform/service"
	"gallery-server/internal/utils"
)

var defaultAllowExtensions = []string{".jpg", ".jpeg", ".png"}

// MaxFilesPerUpload 返回单次上传允许的文件数。
func MaxFilesPerUpload() int {
	if n := config.Get().Upload.MaxFiles; n > 0 {
		return n
	}
	return 20
}

// ValidateUploadFile 校验文件名、大小、扩展名与真实内容，返回小写扩展名。
func ValidateUploadFile(file *multipart.FileHeader) (string, error) {
	cfg := config.Get().Upload

	if ok, msg := utils.ValidateFilename(file.Filename); !ok {
		return "", platformservice.NewValidationError(fmt.Sprintf("%s: %s", file.Filename, msg))
	}

	if maxBytes := cfg.MaxFileBytes(); file.Size > maxBytes {
		return "", platformservice.NewValidationError(fmt.Sprintf("%s: 文件大小不能超过 %dMB", file.Filename, maxBytes/1024/1024))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extensionAllowed(ext, cfg.AllowExtensions) {
		return "", platformservice.NewValidationError(fmt.Sprintf("%s: 不支持的文件类型 %s", file.Filename, ext))
	}

	// 检查文件内容 (Magic Bytes)
	src, err := file.Open()
	if err != nil {
		return "", platformservice.NewValidationError(fmt.Sprintf("%s: 无法打开上传的文件", file.Filename))
	}
	defer func() { _ = src.Close() }()

	if ok, msg := utils.ValidateImageContent(src, ext); !ok {
		return "", platformservice.NewValidationError(fmt.Sprintf("%s: %s", file.Filename, msg))
	}
	return ext, nil
}

func extensionAllowed(ext string, allowed []string) bool {
	if len(allowed) == 0 {
		allowed = defaultAllowExtensions
	}
	for _, a := range allowed {
		if strings.TrimSpace(strings.ToLower(a)) == ext {
			return true
		}
	}
	return false
}
