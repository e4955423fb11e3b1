package logo

import (
	"github.com/111dd/big3d/internal/modules/logo/handler"
	"github.com/111dd/big3d/internal/modules/logo/repo"
	"github.com/111dd/big3d/internal/modules/logo/service"
	"github.com/111dd/big3d/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.LogoHandler
}

func New(logoStore repo.LogoStore, objectStore storage.Store) *Module {
	moduleService := service.New(logoStore, objectStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
