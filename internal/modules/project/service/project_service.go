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
	moduledto "github.com/111dd/big3d/internal/modules/project/dto"
	platformservice "github.com/111dd/big3d/internal/platform/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// List 返回全部项目（创建时间倒序），每个项目内嵌有序图片列表
func (s *Service) List() ([]model.Project, error) {
	projects, err := s.projectStore.ListWithImages()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		ensureImages(&projects[i])
	}
	return projects, nil
}

func (s *Service) Get(id string) (*model.Project, error) {
	project, err := s.projectStore.FindWithImages(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("Project not found")
		}
		return nil, err
	}
	ensureImages(project)
	return project, nil
}

// Create 创建项目并写入初始图片列表，返回重新读取的聚合结果
func (s *Service) Create(req moduledto.CreateProjectRequest) (*model.Project, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Key) == "" {
		return nil, platformservice.NewValidationError("title and key required")
	}

	taken, err := s.projectStore.ExistsByKey(req.Key)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, platformservice.NewConflictError("project key already exists")
	}

	project := &model.Project{
		Key:         req.Key,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.projectStore.CreateWithImages(project, buildImageRows(req.Images)); err != nil {
		return nil, err
	}

	// 重新读取，保证响应反映已提交状态
	return s.Get(project.ID)
}

// Update 补丁式更新 title/description；images 非 nil 时全量替换
func (s *Service) Update(id string, req moduledto.UpdateProjectRequest) (*model.Project, error) {
	exists, err := s.projectStore.ExistsByID(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, platformservice.NewNotFoundError("Project not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if err := s.projectStore.UpdateFields(id, updates); err != nil {
		return nil, err
	}

	if req.Images != nil {
		if err := s.projectStore.ReplaceImages(id, buildImageRows(*req.Images)); err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

// Delete 幂等删除：项目不存在同样返回成功
func (s *Service) Delete(id string) error {
	return s.projectStore.DeleteWithImages(id)
}

// UploadImage 校验并保存上传文件，新图片追加到项目末尾，
// 仅当项目此前没有图片时标记为缩略图
func (s *Service) UploadImage(projectID string, file *multipart.FileHeader, baseURL string) (*model.Image, error) {
	ext, err := upload.ValidateImageFile(file)
	if err != nil {
		return nil, err
	}

	exists, err := s.projectStore.ExistsByID(projectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, platformservice.NewNotFoundError("Project not found")
	}

	// uuid 后缀避免同一时钟刻度内并发上传的 key 冲突
	key := fmt.Sprintf("%s%s/%s.%s", consts.ProjectObjectPrefix, projectID, uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, platformservice.NewValidationError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	if err := s.objectStore.Put(key, src); err != nil {
		log.Printf("对象写入失败: %v", err)
		return nil, platformservice.NewInternalError("Internal error")
	}

	count, err := s.projectStore.CountImages(projectID)
	if err != nil {
		return nil, err
	}

	image := &model.Image{
		ProjectID:   projectID,
		URL:         objectURL(baseURL, key),
		IsThumbnail: count == 0,
		OrderIndex:  int(count),
	}
	if err := s.projectStore.CreateImage(image); err != nil {
		return nil, err
	}
	return image, nil
}

// buildImageRows 过滤空 URL 后按位置编号，位置 0 为缩略图
func buildImageRows(inputs []moduledto.ImageInput) []model.Image {
	var images []model.Image
	for _, input := range inputs {
		url := strings.TrimSpace(input.URL)
		if url == "" {
			continue
		}
		images = append(images, model.Image{
			URL:         url,
			IsThumbnail: len(images) == 0,
			OrderIndex:  len(images),
		})
	}
	return images
}

// ensureImages 保证 JSON 输出中 images 为 [] 而非 null
func ensureImages(project *model.Project) {
	if project.Images == nil {
		project.Images = []model.Image{}
	}
}

func objectURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + consts.StorageURLPrefix + key
}
