package httpx

import (
	"strings"

	"github.com/111dd/big3d/internal/config"

	"github.com/gin-gonic/gin"
)

// RequestBaseURL 生成对象公网 URL 的前缀：
// 优先使用配置的 public_base_url，未配置时根据请求推导
func RequestBaseURL(c *gin.Context) string {
	if base := strings.TrimSpace(config.Get().Storage.PublicBaseURL); base != "" {
		return strings.TrimRight(base, "/")
	}

	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
