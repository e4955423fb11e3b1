package project

import (
	"github.com/111dd/big3d/internal/modules/project/handler"
	"github.com/111dd/big3d/internal/modules/project/repo"
	"github.com/111dd/big3d/internal/modules/project/service"
	"github.com/111dd/big3d/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.ProjectHandler
}

func New(projectStore repo.ProjectStore, objectStore storage.Store) *Module {
	moduleService := service.New(projectStore, objectStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
