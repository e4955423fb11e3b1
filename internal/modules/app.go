package modules

import (
	"github.com/111dd/big3d/internal/modules/asset"
	"github.com/111dd/big3d/internal/modules/logo"
	logorepo "github.com/111dd/big3d/internal/modules/logo/repo"
	"github.com/111dd/big3d/internal/modules/project"
	projectrepo "github.com/111dd/big3d/internal/modules/project/repo"
	"github.com/111dd/big3d/internal/storage"
)

type AppModules struct {
	Project *project.Module
	Logo    *logo.Module
	Asset   *asset.Module
}

func New(
	objectStore storage.Store,
	projectStore projectrepo.ProjectStore,
	logoStore logorepo.LogoStore,
) *AppModules {
	return &AppModules{
		Project: project.New(projectStore, objectStore),
		Logo:    logo.New(logoStore, objectStore),
		Asset:   asset.New(objectStore),
	}
}
