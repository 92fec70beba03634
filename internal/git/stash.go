package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Stashes lists the stash stack, most recent first.
func (s *Service) Stashes(ctx context.Context, repoPath string) ([]Stash, error) {
	// %gd selector (stash@{N}), %s subject, %gD full reflog selector
	res, err := s.run(ctx, repoPath, "stash", "list", "--format=%gd|%s|%gD")
	if err != nil {
		return nil, err
	}
	if !res.Ok() {
		return nil, fmt.Errorf("git stash list failed: %s", res.Stderr)
	}

	stashes := []Stash{}
	for _, line := range strings.Split(res.Stdout, "\n") {
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		indexStr := strings.TrimSuffix(strings.TrimPrefix(parts[0], "stash@{"), "}")
		index, err := strconv.Atoi(indexStr)
		if err != nil {
			index = 0
		}
		stashes = append(stashes, Stash{
			Index:   index,
			Message: parts[1],
			Branch:  parts[2],
		})
	}
	return stashes, nil
}

// StashSave stashes only the given files: they are staged first, then the
// staged content is pushed to the stash. Other dirty files stay untouched.
func (s *Service) StashSave(ctx context.Context, repoPath string, files []string, message string) error {
	if len(files) == 0 {
		return nil
	}

	for _, file := range files {
		if err := s.StageFile(ctx, repoPath, file); err != nil {
			return err
		}
	}

	args := []string{"stash", "push", "--staged"}
	if strings.TrimSpace(message) != "" {
		args = append(args, "-m", message)
	}
	res, err := s.run(ctx, repoPath, args...)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git stash push --staged failed: %s", res.Stderr)
	}
	return nil
}

// StashDrop removes the stash entry at the given index.
func (s *Service) StashDrop(ctx context.Context, repoPath string, index int) error {
	res, err := s.run(ctx, repoPath, "stash", "drop", stashRef(index))
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git stash drop failed: %s", res.Stderr)
	}
	return nil
}

// StashPop applies and removes the stash entry at the given index.
func (s *Service) StashPop(ctx context.Context, repoPath string, index int) error {
	res, err := s.run(ctx, repoPath, "stash", "pop", stashRef(index))
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git stash pop failed: %s", res.Stderr)
	}
	return nil
}

func stashRef(index int) string {
	return fmt.Sprintf("stash@{%d}", index)
}
