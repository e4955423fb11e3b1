package middleware

import (
	"net/http"

	"github.com/111dd/big3d/internal/config"
	"github.com/111dd/big3d/internal/consts"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制 JSON 接口的请求体大小
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Server.MaxRequestBodyMB
		if maxSizeMB <= 0 {
			// 如果未设置或为0，默认 2MB
			maxSizeMB = 2
		}

		// 限制大小 (MB -> Bytes)
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小。
// 上限为文件上限加 multipart 开销余量，保证恰好 10MiB 的文件不被误拒，
// 文件本身的精确大小校验在 service 层完成。
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxBytes := int64(consts.MaxUploadSize + consts.UploadBodyOverhead)

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large. Max size: 10 MB"})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
