package adapter

import (
	"context"
	"fmt"
)

type repositoryProbe struct {
	runner CommandRunner
}

// NewRepositoryProbe returns a [RepositoryProbe] that asks git for the
// repository directory.
func NewRepositoryProbe(runner CommandRunner) RepositoryProbe {
	return &repositoryProbe{runner: runner}
}

func (p *repositoryProbe) CheckRepository(ctx context.Context) error {
	if _, err := p.runner.Exec(ctx, Git("rev-parse", "--git-dir")); err != nil {
		return fmt.Errorf("%w: %w", ErrNotARepository, err)
	}
	return nil
}
