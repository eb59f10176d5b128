package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrNotARepository = errors.New("not a version-controlled directory")
	ErrQueryTimeout   = errors.New("query timed out")
)

// QueryError describes a failed external query. ExitCode is -1 when the
// process did not exit on its own (timeout, missing binary).
type QueryError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *QueryError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: exit code %d: %s", e.Command, e.ExitCode, e.Stderr)
	}
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s: exit code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
