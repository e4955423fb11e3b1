package upload

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/111dd/big3d/internal/consts"
	platformservice "github.com/111dd/big3d/internal/platform/service"
)

// ValidateImageFile 校验上传文件的声明类型与大小。
// 返回不带点的小写扩展名，供存储 key 使用。
func ValidateImageFile(file *multipart.FileHeader) (string, error) {
	mimeType := declaredMediaType(file)
	if !consts.AllowedImageTypes[mimeType] {
		return "", platformservice.NewValidationError("Invalid file type. Allowed: JPEG, PNG, GIF, WebP")
	}

	// 恰好等于上限的文件是合法的
	if file.Size > consts.MaxUploadSize {
		return "", platformservice.NewTooLargeError("File too large. Max size: 10 MB")
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if ext == "" {
		ext = "jpg"
	}
	return ext, nil
}

// declaredMediaType 取 multipart 分片声明的 Content-Type，忽略参数部分
func declaredMediaType(file *multipart.FileHeader) string {
	ct := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
