package git

import (
	"context"
	"fmt"
)

// StageFile stages a single file.
func (s *Service) StageFile(ctx context.Context, repoPath, filePath string) error {
	res, err := s.run(ctx, repoPath, "add", filePath)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git add failed: %s", res.Stderr)
	}
	return nil
}

// StageAll stages all changes including untracked files.
func (s *Service) StageAll(ctx context.Context, repoPath string) error {
	res, err := s.run(ctx, repoPath, "add", "-A")
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git add -A failed: %s", res.Stderr)
	}
	return nil
}

// UnstageFile removes a single file from the index.
func (s *Service) UnstageFile(ctx context.Context, repoPath, filePath string) error {
	res, err := s.run(ctx, repoPath, "reset", "HEAD", "--", filePath)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git reset failed: %s", res.Stderr)
	}
	return nil
}

// UnstageAll resets the whole index to HEAD.
func (s *Service) UnstageAll(ctx context.Context, repoPath string) error {
	res, err := s.run(ctx, repoPath, "reset", "HEAD")
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git reset HEAD failed: %s", res.Stderr)
	}
	return nil
}

// DiscardChanges reverts the given files to their indexed state, then
// force-cleans the subset of them that is still untracked. Restricting the
// clean to the requested paths keeps unrelated untracked files alive.
func (s *Service) DiscardChanges(ctx context.Context, repoPath string, files []string) error {
	if len(files) == 0 {
		return nil
	}

	args := append([]string{"checkout", "--"}, files...)
	res, err := s.run(ctx, repoPath, args...)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git discard changes failed: %s", res.Stderr)
	}

	status, err := s.Status(ctx, repoPath)
	if err != nil {
		return err
	}
	untracked := []string{}
	for _, f := range files {
		for _, entry := range status {
			if entry.Path == f && entry.Status == "??" {
				untracked = append(untracked, f)
				break
			}
		}
	}
	if len(untracked) == 0 {
		return nil
	}

	cleanArgs := append([]string{"clean", "-f", "--"}, untracked...)
	res, err = s.run(ctx, repoPath, cleanArgs...)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git clean failed: %s", res.Stderr)
	}
	return nil
}
