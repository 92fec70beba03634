package git

import (
	"context"

	gderrors "gitdeck.dev/gitdeck/internal/errors"
	"gitdeck.dev/gitdeck/internal/gitexec"
)

// Service executes git operations against arbitrary repository paths.
// It is safe for concurrent use; calls do not coordinate with each other,
// concurrent writes to the same index rely on git's own locking.
type Service struct {
	exec gitexec.Execer

	// openRefs opens the ref/config reader for a repository. Overridable
	// so workflow tests can substitute a fixture without a real repo.
	openRefs func(path string) (RefStore, error)
}

// NewService creates a Service running commands through the given Execer.
func NewService(execer gitexec.Execer) *Service {
	return &Service{
		exec:     execer,
		openRefs: OpenRepository,
	}
}

// run executes git in repoPath. A spawn failure is returned as an error;
// a non-zero exit comes back in the Result for the caller to interpret.
func (s *Service) run(ctx context.Context, repoPath string, args ...string) (gitexec.Result, error) {
	res := s.exec.Run(ctx, gitexec.Git(repoPath, args...))
	if res.Err != nil {
		return res, gderrors.NewGitCommandError("git", args, res.Stdout, res.Stderr, res.Err)
	}
	return res, nil
}
