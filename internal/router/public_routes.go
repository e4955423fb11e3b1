package router

import (
	"net/http"

	"github.com/111dd/big3d/internal/middleware"
	"github.com/111dd/big3d/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(group *gin.RouterGroup, m *modules.AppModules) {
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// 根路径是项目列表的别名
	group.GET("/", m.Project.Handler.List)
	group.GET("/projects", m.Project.Handler.List)
	group.GET("/projects/:id", m.Project.Handler.Get)
	group.GET("/site-logos", m.Logo.Handler.GetActive)

	// 对象回读带长缓存标头
	group.GET("/storage/*key", middleware.StaticCacheMiddleware(), m.Asset.Handler.Serve)
}
