package utils

import (
	"io"
	"net/http"
	"net/mail"
	"regexp"
	"strings"
)

var (
	filenamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+\.[a-zA-Z0-9]+$`)
	passwordCharset = regexp.MustCompile(`^[a-zA-Z0-9[:punct:]]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasNumber       = regexp.MustCompile(`[0-9]`)
)

// ValidateFilename 只允许英文字母、数字、点、下划线和连字符，且必须带扩展名。
func ValidateFilename(name string) (bool, string) {
	if len(name) > 255 {
		return false, "文件名过长"
	}
	if !filenamePattern.MatchString(name) {
		return false, "文件名只能包含英文字母、数字、点、下划线和连字符，且必须带扩展名"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "密码最少8位"
	}
	if len(password) > 72 {
		// bcrypt 只使用前 72 字节
		return false, "密码最多72位"
	}

	if !passwordCharset.MatchString(password) {
		return false, "密码只能包含英文大小写、数字和符号"
	}

	if !hasLetter.MatchString(password) || !hasNumber.MatchString(password) {
		return false, "密码必须包含至少一个字母和一个数字"
	}

	return true, ""
}

// ValidateEmail 校验邮箱格式，要求域名部分包含点。
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "邮箱不能为空"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false, "邮箱格式不正确"
	}
	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return false, "邮箱格式不正确"
	}
	return true, ""
}

// ValidateImageContent checks if the file content matches the extension.
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "读取文件内容失败"
	}

	// 重置读取位置
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return false, "重置文件读取位置失败"
	}

	contentType := http.DetectContentType(buffer[:n])

	allowedTypes := map[string]map[string]bool{
		"image/jpeg": {".jpg": true, ".jpeg": true},
		"image/png":  {".png": true},
	}

	if exts, ok := allowedTypes[contentType]; ok {
		if exts[ext] {
			return true, ""
		}
	}

	return false, "文件真实类型(" + contentType + ")与扩展名(" + ext + ")不匹配或不支持"
}
