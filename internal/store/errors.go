package store

import (
	"errors"
	"fmt"
)

// ErrEmptyArtifactName is returned when an artifact is addressed without a
// file name.
var ErrEmptyArtifactName = errors.New("artifact name is empty")

// WriteError reports a failed artifact write. Path is the destination file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
