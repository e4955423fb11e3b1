package asset

import (
	"github.com/111dd/big3d/internal/modules/asset/handler"
	"github.com/111dd/big3d/internal/storage"
)

type Module struct {
	Handler *handler.AssetHandler
}

func New(objectStore storage.Store) *Module {
	return &Module{
		Handler: handler.New(objectStore),
	}
}
