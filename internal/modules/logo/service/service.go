package service

import (
	"github.com/111dd/big3d/internal/modules/logo/repo"
	"github.com/111dd/big3d/internal/storage"
)

type Service struct {
	logoStore   repo.LogoStore
	objectStore storage.Store
}

func New(logoStore repo.LogoStore, objectStore storage.Store) *Service {
	return &Service{
		logoStore:   logoStore,
		objectStore: objectStore,
	}
}
