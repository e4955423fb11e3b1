package handler

import (
	"github.com/111dd/big3d/internal/storage"
)

type AssetHandler struct {
	objectStore storage.Store
}

func New(objectStore storage.Store) *AssetHandler {
	return &AssetHandler{objectStore: objectStore}
}
