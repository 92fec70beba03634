// Package testhelpers provides fixtures for backend tests: throwaway real
// git repositories and a canned-output Execer substitute.
package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// GitRepo is a real git repository in a temporary directory, cleaned up with
// the test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a fresh repository with a configured test user.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	repo := &GitRepo{Dir: dir}

	// Avoid reading global git config so tests behave the same everywhere.
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	repo.Git(t, "config", "user.name", "Test User")
	repo.Git(t, "config", "user.email", "test@example.com")

	return repo
}

// Git runs a git command in the repository, failing the test on error,
// and returns the trimmed output.
func (r *GitRepo) Git(t *testing.T, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, output)
	}
	return strings.TrimSpace(string(output))
}

// WriteFile writes a file relative to the repository root.
func (r *GitRepo) WriteFile(t *testing.T, name, content string) {
	t.Helper()

	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// CommitFile writes, stages and commits a file.
func (r *GitRepo) CommitFile(t *testing.T, name, content, message string) {
	t.Helper()

	r.WriteFile(t, name, content)
	r.Git(t, "add", name)
	r.Git(t, "commit", "-m", message)
}

// AddRemote configures a remote.
func (r *GitRepo) AddRemote(t *testing.T, name, url string) {
	t.Helper()
	r.Git(t, "remote", "add", name, url)
}
