package store

import "github.com/MKhiriev/go-version-gen/internal/logger"

// Storages groups the storage backends used by the service layer.
type Storages struct {
	ArtifactStorage ArtifactStorage
}

// NewStorages builds the filesystem-backed storages.
func NewStorages(log *logger.Logger) *Storages {
	return &Storages{
		ArtifactStorage: NewFileArtifactStorage(log),
	}
}
