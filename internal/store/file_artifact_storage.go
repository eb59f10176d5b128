// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MKhiriev/go-version-gen/internal/logger"
)

const (
	artifactDirMode  = 0o755
	artifactFileMode = 0o644
)

// fileArtifactStorage is the local filesystem implementation of
// [ArtifactStorage]. Artifacts are written through a temp file in the same
// directory and renamed into place, so readers never observe a half-written
// artifact.
type fileArtifactStorage struct {
	logger *logger.Logger
}

// NewFileArtifactStorage constructs the filesystem [ArtifactStorage].
func NewFileArtifactStorage(logger *logger.Logger) ArtifactStorage {
	return &fileArtifactStorage{logger: logger}
}

func (s *fileArtifactStorage) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, artifactDirMode); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

func (s *fileArtifactStorage) WriteArtifact(ctx context.Context, dir, name string, content []byte) (string, error) {
	path := filepath.Join(dir, name)
	if name == "" {
		return "", &WriteError{Path: path, Err: ErrEmptyArtifactName}
	}
	if err := ctx.Err(); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	if err := atomicWrite(path, content, artifactFileMode); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	if err := syncDir(dir); err != nil {
		s.logger.Debug().Err(err).Str("dir", dir).Msg("directory fsync failed")
	}
	return path, nil
}

func (s *fileArtifactStorage) RemoveArtifacts(ctx context.Context, dir string, names []string) ([]string, error) {
	var removed []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if name == "" {
			continue
		}
		path := filepath.Join(dir, name)
		err := os.Remove(path)
		switch {
		case err == nil:
			removed = append(removed, path)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return removed, nil
}

func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".version-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := true
	defer func() {
		if cleanup {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("set temp file permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	cleanup = false
	return nil
}

func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
