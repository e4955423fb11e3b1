package handler

import (
	"net/http"

	"github.com/111dd/big3d/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetActive 公共接口：返回当前激活的 Logo，未设置时返回 null
func (h *LogoHandler) GetActive(c *gin.Context) {
	logo, err := h.service.GetActive()
	if err != nil {
		httpx.WriteServiceError(c, err, "Internal error")
		return
	}
	if logo == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, logo)
}

// Upload 管理接口：上传新 Logo 并使其成为唯一激活项
func (h *LogoHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
		return
	}

	logo, err := h.service.Upload(file, httpx.RequestBaseURL(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, logo)
}
