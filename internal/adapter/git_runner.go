// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/MKhiriev/go-version-gen/internal/logger"
)

// DefaultCommandTimeout bounds every external query.
const DefaultCommandTimeout = 5 * time.Second

// Command is one external query: a program name and its arguments.
type Command struct {
	Name string
	Args []string
}

// Git builds a git query command.
func Git(args ...string) Command {
	return Command{Name: "git", Args: args}
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

type commandRunner struct {
	dir     string
	timeout time.Duration
	logger  *logger.Logger
}

// NewCommandRunner returns a [CommandRunner] that executes commands in dir
// (the process working directory when empty). A non-positive timeout selects
// [DefaultCommandTimeout].
func NewCommandRunner(dir string, timeout time.Duration, logger *logger.Logger) CommandRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &commandRunner{dir: dir, timeout: timeout, logger: logger}
}

func (r *commandRunner) Exec(ctx context.Context, cmd Command) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = r.dir
	c.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	if err == nil {
		return strings.TrimSpace(stdout.String()), nil
	}

	queryErr := &QueryError{
		Command:  cmd.String(),
		ExitCode: -1,
		Stderr:   strings.TrimSpace(stderr.String()),
		Err:      err,
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		queryErr.Err = ErrQueryTimeout
	case errors.As(err, &exitErr) && exitErr.ExitCode() >= 0:
		queryErr.ExitCode = exitErr.ExitCode()
	}

	return "", queryErr
}

func (r *commandRunner) Run(ctx context.Context, cmd Command, fallback string) string {
	out, err := r.Exec(ctx, cmd)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("command", cmd.String()).
			Str("fallback", fallback).
			Msg("query failed, using fallback")
		return fallback
	}
	return out
}
