package handler

import (
	"github.com/111dd/big3d/internal/modules/project/service"
)

type ProjectHandler struct {
	service *service.Service
}

func New(service *service.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}
