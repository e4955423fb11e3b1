package router

import (
	"net/http"

	"github.com/111dd/big3d/internal/middleware"
	"github.com/111dd/big3d/internal/modules"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
}

func NewRouter(appModules *modules.AppModules) *Router {
	return &Router{
		modules: appModules,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头与 CORS 中间件
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// 限流器在带前缀与不带前缀的两套路由间复用，保持计数一致
	adminLimiter := middleware.AdminRateLimit()
	uploadLimiter := middleware.UploadRateLimit()

	// 同一套接口同时挂在根路径与 /api 前缀下
	for _, prefix := range []string{"", "/api"} {
		group := r.Group(prefix)
		registerPublicRoutes(group, rt.modules)
		registerAdminRoutes(group, rt.modules, adminLimiter, uploadLimiter)
	}
}
