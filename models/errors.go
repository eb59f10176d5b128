// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is the sentinel wrapped by [UnsupportedFormatError].
var ErrUnsupportedFormat = errors.New("unsupported format")

// UnsupportedFormatError reports a format tag outside the fixed enumeration.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q", e.Format)
}

// Unwrap lets callers match the error with errors.Is(err, ErrUnsupportedFormat).
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}
