package git

import (
	"context"
	"fmt"
	"strings"
)

// Status returns the porcelain status of the repository, one entry per
// staged or unstaged change.
func (s *Service) Status(ctx context.Context, repoPath string) ([]StatusFile, error) {
	if _, err := s.openRefs(repoPath); err != nil {
		return nil, fmt.Errorf("could not open git repo: %w", err)
	}

	res, err := s.run(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	if !res.Ok() {
		return nil, fmt.Errorf("git status failed: %s", res.Stderr)
	}

	return parseStatus(res.Stdout), nil
}

// parseStatus splits porcelain lines into status entries. A line whose index
// and worktree characters are both set yields two entries for the same path,
// one staged and one unstaged.
func parseStatus(out string) []StatusFile {
	files := []StatusFile{}
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		x := line[0]
		y := line[1]
		path := line[3:]

		if x != ' ' && x != '?' {
			files = append(files, StatusFile{
				Path:     path,
				Status:   string(x) + " ",
				IsStaged: true,
			})
		}
		if y != ' ' || (x == '?' && y == '?') {
			status := " " + string(y)
			if x == '?' && y == '?' {
				status = "??"
			}
			files = append(files, StatusFile{
				Path:     path,
				Status:   status,
				IsStaged: false,
			})
		}
	}
	return files
}
