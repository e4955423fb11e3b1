package service

import (
	"github.com/111dd/big3d/internal/modules/project/repo"
	"github.com/111dd/big3d/internal/storage"
)

type Service struct {
	projectStore repo.ProjectStore
	objectStore  storage.Store
}

func New(projectStore repo.ProjectStore, objectStore storage.Store) *Service {
	return &Service{
		projectStore: projectStore,
		objectStore:  objectStore,
	}
}
