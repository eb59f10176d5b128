package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ArtifactStorage persists rendered version artifacts under an output
// directory.
type ArtifactStorage interface {
	// EnsureDir creates dir and any missing parents. It is idempotent.
	EnsureDir(ctx context.Context, dir string) error

	// WriteArtifact writes content to dir/name, replacing any existing file,
	// and returns the written path. Failures are reported as *[WriteError].
	WriteArtifact(ctx context.Context, dir, name string, content []byte) (string, error)

	// RemoveArtifacts deletes dir/name for every name and returns the paths
	// that were actually removed. Missing files are skipped silently.
	RemoveArtifacts(ctx context.Context, dir string, names []string) ([]string, error)
}
