package handler

import (
	"github.com/111dd/big3d/internal/modules/logo/service"
)

type LogoHandler struct {
	service *service.Service
}

func New(service *service.Service) *LogoHandler {
	return &LogoHandler{service: service}
}
