package dto

import "encoding/json"

// ImageInput 接受字符串 URL 或 {"url": "..."} 两种形式
type ImageInput struct {
	URL string
}

func (i *ImageInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i.URL = s
		return nil
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	i.URL = obj.URL
	return nil
}

type CreateProjectRequest struct {
	Title       string       `json:"title"`
	Key         string       `json:"key"`
	Description string       `json:"description"`
	Images      []ImageInput `json:"images"`
}

// UpdateProjectRequest 各字段独立可选；Images 非 nil 时整体替换
type UpdateProjectRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Images      *[]ImageInput `json:"images"`
}
