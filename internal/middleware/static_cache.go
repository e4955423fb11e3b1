package middleware

import (
	"github.com/111dd/big3d/internal/config"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为对象存储资源添加 Cache-Control 头。
// 上传的对象一经写入不可变，默认使用长效公共缓存。
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := config.Get().Storage.CacheControl
		if cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
