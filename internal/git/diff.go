package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Diff returns a unified diff for one file, trying HEAD first, then the
// working tree, then the index, and finally synthesizing an all-additions
// diff for untracked content. Untracked files and some index states produce
// no output from git diff, hence the chain.
func (s *Service) Diff(ctx context.Context, repoPath, filePath string) (string, error) {
	res, err := s.run(ctx, repoPath, "diff", "HEAD", "--", filePath)
	if err != nil {
		return "", err
	}
	if !res.Ok() {
		return s.diffWithoutHead(ctx, repoPath, filePath)
	}

	if res.Stdout == "" {
		cached, err := s.run(ctx, repoPath, "diff", "--cached", "--", filePath)
		if err != nil {
			return "", err
		}
		if cached.Stdout != "" {
			return cached.Stdout, nil
		}
		if synth, ok := synthesizeAddDiff(repoPath, filePath); ok {
			return synth, nil
		}
	}
	return res.Stdout, nil
}

// diffWithoutHead is the fallback for repositories where HEAD cannot serve as
// a diff base, e.g. before the first commit.
func (s *Service) diffWithoutHead(ctx context.Context, repoPath, filePath string) (string, error) {
	res, err := s.run(ctx, repoPath, "diff", "--", filePath)
	if err != nil {
		return "", err
	}
	if res.Ok() {
		return res.Stdout, nil
	}

	status, serr := s.run(ctx, repoPath, "status", "--porcelain", filePath)
	if serr == nil && strings.HasPrefix(status.Stdout, "??") {
		content, rerr := os.ReadFile(filepath.Join(repoPath, filePath))
		if rerr != nil {
			return "", rerr
		}
		return formatAddDiff(filePath, string(content)), nil
	}
	return "", fmt.Errorf("git diff failed: %s", res.Stderr)
}

// synthesizeAddDiff reads the file from disk and renders it as an
// all-additions diff. Returns false for missing or empty content.
func synthesizeAddDiff(repoPath, filePath string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(repoPath, filePath))
	if err != nil || len(content) == 0 {
		return "", false
	}
	return formatAddDiff(filePath, string(content)), true
}

// formatAddDiff renders content as a diff against /dev/null. The path headers
// keep the output structurally valid even though no diff algorithm ran.
func formatAddDiff(filePath, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- /dev/null\n+++ b/%s\n", filePath)
	if content != "" {
		for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
			b.WriteString("+")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
