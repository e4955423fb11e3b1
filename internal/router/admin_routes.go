package router

import (
	"net/http"

	"github.com/111dd/big3d/internal/middleware"
	"github.com/111dd/big3d/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(group *gin.RouterGroup, m *modules.AppModules, adminLimiter, uploadLimiter gin.HandlerFunc) {
	adminGroup := group.Group("")
	adminGroup.Use(adminLimiter)
	adminGroup.Use(middleware.AdminKeyAuth())

	// 管理密钥校验探针，供前端登录页使用
	adminGroup.GET("/admin/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// JSON 写接口带请求体大小限制
	adminGroup.POST("/projects", middleware.BodyLimitMiddleware(), m.Project.Handler.Create)
	adminGroup.PUT("/projects/:id", middleware.BodyLimitMiddleware(), m.Project.Handler.Update)
	adminGroup.DELETE("/projects/:id", m.Project.Handler.Delete)

	// 文件上传接口带独立限流与更大的请求体上限
	adminGroup.POST("/projects/:id/images", uploadLimiter, middleware.UploadBodyLimitMiddleware(), m.Project.Handler.UploadImage)
	adminGroup.POST("/site-logos", uploadLimiter, middleware.UploadBodyLimitMiddleware(), m.Logo.Handler.Upload)
}
