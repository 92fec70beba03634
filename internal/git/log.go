package git

import (
	"context"
	"fmt"
	"strings"
)

// Custom log format markers, chosen to be unlikely to collide with commit
// content. The decoration prefixes are format contracts of git itself.
const (
	logFieldDelim  = "----------COMMIT-PART----------"
	logRecordDelim = "----------COMMIT-END----------"

	headPrefix = "HEAD -> "
	tagPrefix  = "tag: "
)

// logMaxCount bounds how much history a single query returns.
const logMaxCount = "100"

// Commits returns recent commits from all refs, newest first.
func (s *Service) Commits(ctx context.Context, repoPath string) ([]Commit, error) {
	// %H hash, %an author, %ae email, %at author date (unix), %s subject,
	// %b body, %P parents, %D ref decorations
	format := fmt.Sprintf("%%H%[1]s%%an%[1]s%%ae%[1]s%%at%[1]s%%s%[1]s%%b%[1]s%%P%[1]s%%D%[2]s", logFieldDelim, logRecordDelim)

	res, err := s.run(ctx, repoPath, "log", "--all", "-n", logMaxCount, "--pretty=format:"+format)
	if err != nil {
		return nil, err
	}
	if !res.Ok() {
		return nil, fmt.Errorf("git log failed: %s", res.Stderr)
	}

	return parseLog(res.Stdout), nil
}

// parseLog splits delimited log output into commits. Records with fewer than
// 8 fields are dropped silently.
func parseLog(out string) []Commit {
	commits := []Commit{}
	for _, record := range strings.Split(out, logRecordDelim) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}

		parts := strings.Split(record, logFieldDelim)
		if len(parts) < 8 {
			continue
		}

		branches, tags := parseDecorations(parts[7])
		commits = append(commits, Commit{
			Hash:        parts[0],
			Author:      parts[1],
			AuthorEmail: parts[2],
			Date:        parts[3],
			Message:     parts[4],
			Body:        strings.TrimSpace(parts[5]),
			Parents:     splitParents(parts[6]),
			Branches:    branches,
			Tags:        tags,
		})
	}
	return commits
}

// parseDecorations splits a %D ref-decoration list into branch and tag names.
// "HEAD -> x" and plain tokens are branches, "tag: x" tokens are tags.
func parseDecorations(decorations string) (branches, tags []string) {
	branches = []string{}
	tags = []string{}
	if decorations == "" {
		return branches, tags
	}
	for _, token := range strings.Split(decorations, ",") {
		token = strings.TrimSpace(token)
		switch {
		case strings.HasPrefix(token, headPrefix):
			branches = append(branches, strings.TrimPrefix(token, headPrefix))
		case strings.HasPrefix(token, tagPrefix):
			tags = append(tags, strings.TrimPrefix(token, tagPrefix))
		default:
			branches = append(branches, token)
		}
	}
	return branches, tags
}

func splitParents(field string) []string {
	parents := strings.Fields(field)
	if parents == nil {
		return []string{}
	}
	return parents
}
