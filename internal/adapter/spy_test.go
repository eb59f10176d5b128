package adapter

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-version-gen/models"
)

// spyRunner answers commands from a table and records every call. Commands
// missing from the table fail.
type spyRunner struct {
	mu        sync.Mutex
	responses map[string]string
	calls     []string
}

func newSpyRunner(responses map[string]string) *spyRunner {
	return &spyRunner{responses: responses}
}

func (s *spyRunner) Exec(_ context.Context, cmd Command) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, cmd.String())
	out, ok := s.responses[cmd.String()]
	if !ok {
		return "", &QueryError{Command: cmd.String(), ExitCode: 128, Stderr: "fatal"}
	}
	return out, nil
}

func (s *spyRunner) Run(ctx context.Context, cmd Command, fallback string) string {
	out, err := s.Exec(ctx, cmd)
	if err != nil {
		return fallback
	}
	return out
}

func (s *spyRunner) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// spyCollector counts Collect invocations.
type spyCollector struct {
	mu    sync.Mutex
	info  models.RepositoryInfo
	calls int
}

func (s *spyCollector) Collect(_ context.Context, _ models.Request) models.RepositoryInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.info
}

func (s *spyCollector) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
