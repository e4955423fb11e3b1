package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/111dd/big3d/internal/storage"

	"github.com/gin-gonic/gin"
)

// Serve 公共接口：按对象 key 回读存储内容
func (h *AssetHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	reader, info, err := h.objectStore.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("对象读取失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	defer func() { _ = reader.Close() }()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, reader, nil)
}
