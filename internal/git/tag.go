package git

import (
	"context"
	"fmt"
	"strings"
)

// CreateTag tags a commit, annotated when a non-blank message is given and
// lightweight otherwise, then pushes it: either every tag at once, or the
// new tag alone to "origin" when present, else the first configured remote.
func (s *Service) CreateTag(ctx context.Context, repoPath, tagName, commitHash, message string, pushAll bool) error {
	args := []string{"tag"}
	if strings.TrimSpace(message) != "" {
		args = append(args, "-a", tagName, "-m", message)
	} else {
		args = append(args, tagName)
	}
	args = append(args, commitHash)

	res, err := s.run(ctx, repoPath, args...)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git tag failed: %s", res.Stderr)
	}

	if pushAll {
		res, err := s.run(ctx, repoPath, "push", "--tags")
		if err != nil {
			return err
		}
		if !res.Ok() {
			return fmt.Errorf("git push --tags failed: %s", res.Stderr)
		}
		return nil
	}

	remotes, err := s.Remotes(repoPath)
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		// Nothing to push to; the tag still exists locally.
		return nil
	}

	remoteName := remotes[0].Name
	for _, r := range remotes {
		if r.Name == "origin" {
			remoteName = r.Name
			break
		}
	}
	res, err = s.run(ctx, repoPath, "push", remoteName, tagName)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git push tag failed: %s", res.Stderr)
	}
	return nil
}
