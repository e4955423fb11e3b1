package service

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/111dd/big3d/internal/consts"
	"github.com/111dd/big3d/internal/model"
	"github.com/111dd/big3d/internal/modules/common/upload"
	platformservice "github.com/111dd/big3d/internal/platform/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActive 返回当前激活的 Logo；尚未设置时返回 (nil, nil)
func (s *Service) GetActive() (*model.SiteLogo, error) {
	logo, err := s.logoStore.FindActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return logo, nil
}

// Upload 保存新 Logo 文件并使其成为唯一激活项，历史行保留
func (s *Service) Upload(file *multipart.FileHeader, baseURL string) (*model.SiteLogo, error) {
	ext, err := upload.ValidateImageFile(file)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s-%s.%s", consts.LogoObjectPrefix, consts.LogoTypeNavbar, uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, platformservice.NewValidationError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	if err := s.objectStore.Put(key, src); err != nil {
		log.Printf("对象写入失败: %v", err)
		return nil, platformservice.NewInternalError("Internal error")
	}

	logo := &model.SiteLogo{
		Type: consts.LogoTypeNavbar,
		URL:  strings.TrimRight(baseURL, "/") + consts.StorageURLPrefix + key,
	}
	if err := s.logoStore.CreateActive(logo); err != nil {
		return nil, err
	}
	return logo, nil
}
