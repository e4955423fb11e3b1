package middleware

import (
	"net/http"

	"github.com/111dd/big3d/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS 按来源白名单设置跨域响应头，并短路 OPTIONS 预检请求。
//
// 白名单解析规则：
// 请求 Origin 在白名单内（或白名单包含 "*"）时原样回显该 Origin；
// 否则回退到白名单第一项；
// 白名单为空时回退到 "*"（面向公开只读内容 API 的宽松默认值）。
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := config.Get().CORS.Origins()

		c.Header("Access-Control-Allow-Origin", resolveAllowOrigin(origin, allowed))
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Admin-Key")
		c.Header("Access-Control-Max-Age", "86400")

		// 预检请求只携带 CORS 头，不进入路由
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func resolveAllowOrigin(origin string, allowed []string) string {
	if origin != "" && len(allowed) > 0 && originListed(origin, allowed) {
		return origin
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return "*"
}

func originListed(origin string, allowed []string) bool {
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
