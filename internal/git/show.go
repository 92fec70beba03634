package git

import (
	"context"
	"fmt"
	"strings"
)

// CommitFiles lists the files touched by a commit with their name-status codes.
func (s *Service) CommitFiles(ctx context.Context, repoPath, hash string) ([]CommitFile, error) {
	res, err := s.run(ctx, repoPath, "show", "--name-status", "--format=", hash)
	if err != nil {
		return nil, err
	}
	if !res.Ok() {
		return nil, fmt.Errorf("git show failed: %s", res.Stderr)
	}

	files := []CommitFile{}
	for _, line := range strings.Split(res.Stdout, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		files = append(files, CommitFile{
			Status: parts[0],
			Path:   parts[1],
		})
	}
	return files, nil
}

// CommitFileDiff returns the diff of one file within a commit.
func (s *Service) CommitFileDiff(ctx context.Context, repoPath, hash, filePath string) (string, error) {
	res, err := s.run(ctx, repoPath, "show", "--format=", hash, "--", filePath)
	if err != nil {
		return "", err
	}
	if !res.Ok() {
		return "", fmt.Errorf("git show diff failed: %s", res.Stderr)
	}
	return res.Stdout, nil
}
