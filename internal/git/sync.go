package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gderrors "gitdeck.dev/gitdeck/internal/errors"
)

// Fetch fetches from all remotes.
func (s *Service) Fetch(ctx context.Context, repoPath string) error {
	res, err := s.run(ctx, repoPath, "fetch", "--all")
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git fetch failed: %s", res.Stderr)
	}
	return nil
}

// Pull pulls the current branch from its upstream.
func (s *Service) Pull(ctx context.Context, repoPath string) error {
	res, err := s.run(ctx, repoPath, "pull")
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git pull failed: %s", res.Stderr)
	}
	return nil
}

// Push pushes the current branch. When the push is rejected for lack of an
// upstream and exactly one remote is configured, it retries with
// --set-upstream against that remote; zero or multiple remotes cannot be
// resolved automatically and surface as errors.
func (s *Service) Push(ctx context.Context, repoPath string) error {
	res, err := s.run(ctx, repoPath, "push")
	if err != nil {
		return err
	}
	if res.Ok() {
		return nil
	}

	if !strings.Contains(res.Stderr, "no upstream branch") {
		return fmt.Errorf("git push failed: %s", res.Stderr)
	}

	branchName, err := s.currentBranchName(repoPath)
	if err != nil {
		return err
	}
	if branchName == "" {
		return errors.New("could not determine current branch name")
	}

	remotes, err := s.Remotes(repoPath)
	if err != nil {
		return err
	}
	switch len(remotes) {
	case 0:
		return fmt.Errorf("%w to push to", gderrors.ErrNoRemotes)
	case 1:
		retry, err := s.run(ctx, repoPath, "push", "--set-upstream", remotes[0].Name, branchName)
		if err != nil {
			return err
		}
		if !retry.Ok() {
			return fmt.Errorf("git push --set-upstream failed: %s", retry.Stderr)
		}
		return nil
	default:
		return &gderrors.NoUpstreamError{BranchName: branchName}
	}
}
