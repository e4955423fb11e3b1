package handler

import (
	"net/http"

	"github.com/111dd/big3d/internal/modules/common/httpx"
	moduledto "github.com/111dd/big3d/internal/modules/project/dto"

	"github.com/gin-gonic/gin"
)

// List 公共接口：返回全部项目及其图片
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.List()
	if err != nil {
		httpx.WriteServiceError(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get 公共接口：按 ID 返回单个项目
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.service.Get(c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create 管理接口：创建项目
func (h *ProjectHandler) Create(c *gin.Context) {
	var req moduledto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := h.service.Create(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Update 管理接口：补丁式更新项目
func (h *ProjectHandler) Update(c *gin.Context) {
	var req moduledto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project, err := h.service.Update(c.Param("id"), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete 管理接口：删除项目（幂等）
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		httpx.WriteServiceError(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadImage 管理接口：上传图片文件并追加到项目
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
		return
	}

	image, err := h.service.UploadImage(c.Param("id"), file, httpx.RequestBaseURL(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, image)
}
