package avatar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"gitdeck.dev/gitdeck/internal/gitexec"
)

// githubAvatarURL resolves a username to the account's avatar URL through the
// GitHub API. Authenticated when a token is available, anonymous otherwise;
// unauthenticated rate limits are enough for avatar lookups.
func (r *Resolver) githubAvatarURL(ctx context.Context, username string) (string, error) {
	client := github.NewClient(r.githubHTTPClient(ctx))
	user, _, err := client.Users.Get(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user %s: %w", username, err)
	}
	return user.GetAvatarURL(), nil
}

// githubHTTPClient returns an oauth2 client when a token can be found in the
// environment or the gh CLI, nil for an anonymous client.
func (r *Resolver) githubHTTPClient(ctx context.Context) *http.Client {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		res := r.exec.Run(ctx, gitexec.GH("auth", "token"))
		if res.Ok() {
			token = strings.TrimSpace(res.Stdout)
		}
	}
	if token == "" {
		return nil
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, ts)
}
