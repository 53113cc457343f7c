package testutils

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"
)

// UploadPart 描述 multipart 请求体中的一个文件。
type UploadPart struct {
	Filename string
	Content  []byte
}

// MultipartBody 构造 multipart 请求体：文件放在 "files" 字段下，fields 为附加的普通字段。
// 返回请求体与对应的 Content-Type。
func MultipartBody(t *testing.T, parts []UploadPart, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("写入表单字段失败: %v", err)
		}
	}
	for _, p := range parts {
		fw, err := w.CreateFormFile("files", p.Filename)
		if err != nil {
			t.Fatalf("创建表单文件失败: %v", err)
		}
		if _, err := fw.Write(p.Content); err != nil {
			t.Fatalf("写入表单文件失败: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 multipart writer 失败: %v", err)
	}
	return body, w.FormDataContentType()
}

// MustFileHeaders 把文件解析为 FileHeader，与 gin 交给 handler 的形式一致。
func MustFileHeaders(t *testing.T, parts ...UploadPart) []*multipart.FileHeader {
	t.Helper()
	body, contentType := MultipartBody(t, parts, nil)
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", contentType)
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("解析 multipart 失败: %v", err)
	}
	return req.MultipartForm.File["files"]
}
