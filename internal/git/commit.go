package git

import (
	"context"
	"fmt"
)

// Commit records the staged changes. An empty body commits the subject alone;
// amend rewrites the previous commit instead of creating a new one.
func (s *Service) Commit(ctx context.Context, repoPath, subject, body string, amend bool) error {
	message := subject
	if body != "" {
		message = subject + "\n\n" + body
	}

	args := []string{"commit"}
	if amend {
		args = append(args, "--amend")
	}
	args = append(args, "-m", message)

	res, err := s.run(ctx, repoPath, args...)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("git commit failed: %s", res.Stderr)
	}
	return nil
}
