package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/111dd/big3d/internal/config"

	"github.com/gin-gonic/gin"
)

// AdminKeyAuth 校验 X-Admin-Key 请求头。
// 失败时统一返回 401 "Unauthorized"，不区分缺失、长度不符或内容错误，
// 避免向探测者泄露密钥信息。
func AdminKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		secret := config.Get().Admin.APIKey

		if !isValidAdminKey(key, secret) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// isValidAdminKey 常数时间比较密钥，密钥或配置为空时直接拒绝
func isValidAdminKey(key, secret string) bool {
	if key == "" || secret == "" {
		return false
	}
	// ConstantTimeCompare 在长度一致时逐字节异或累积，
	// 不会因首个差异字节提前返回
	return subtle.ConstantTimeCompare([]byte(key), []byte(secret)) == 1
}
