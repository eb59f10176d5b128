// Package testrepo creates throwaway git repositories for tests that need a
// real version-control collaborator.
package testrepo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// Repo is a temporary git repository with one initial commit on main.
type Repo struct {
	Root string
}

// RequireGit skips the test when the git binary is not on PATH.
func RequireGit(tb testing.TB) {
	tb.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git binary not available")
	}
}

// New creates the repository under tb.TempDir. The test is skipped when git
// is missing.
func New(tb testing.TB) *Repo {
	tb.Helper()
	RequireGit(tb)

	repo := &Repo{Root: tb.TempDir()}
	repo.Git(tb, "init", "--initial-branch=main")
	repo.Git(tb, "config", "user.name", "Version Gen Test")
	repo.Git(tb, "config", "user.email", "test@example.com")
	repo.Git(tb, "config", "commit.gpgsign", "false")
	repo.Git(tb, "config", "tag.gpgsign", "false")
	repo.Commit(tb, "README.md", "# temp repository\n", "Initial commit")
	return repo
}

// Git runs git in the repository and fails the test on error.
func (r *Repo) Git(tb testing.TB, args ...string) string {
	tb.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Root
	cmd.Env = append(os.Environ(), "GIT_CONFIG_NOSYSTEM=1", "HOME="+r.Root)
	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %s: %v: %s", strings.Join(args, " "), err, output)
	}
	return strings.TrimSpace(string(output))
}

// Commit writes content to name and commits it with message.
func (r *Repo) Commit(tb testing.TB, name, content, message string) {
	tb.Helper()
	path := filepath.Join(r.Root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write %s: %v", name, err)
	}
	r.Git(tb, "add", name)
	r.Git(tb, "commit", "-m", message)
}

// Checkout creates and switches to branch.
func (r *Repo) Checkout(tb testing.TB, branch string) {
	tb.Helper()
	r.Git(tb, "checkout", "-b", branch)
}

// Tag creates a lightweight tag at HEAD.
func (r *Repo) Tag(tb testing.TB, name string) {
	tb.Helper()
	r.Git(tb, "tag", name)
}

// Head returns the full hash of HEAD.
func (r *Repo) Head(tb testing.TB) string {
	tb.Helper()
	return r.Git(tb, "rev-parse", "HEAD")
}

func (r *Repo) String() string {
	return fmt.Sprintf("testrepo(%s)", r.Root)
}
