// Package avatar resolves author avatars through a best-effort chain of
// network lookups fronted by a content-addressed disk cache. A repository
// hosted on GitHub gets account-specific lookups first; everything falls
// back to a gravatar identicon keyed by the email hash.
package avatar

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	gderrors "gitdeck.dev/gitdeck/internal/errors"
	"gitdeck.dev/gitdeck/internal/gitexec"
)

const (
	unavatarBase = "https://unavatar.io"
	gravatarBase = "https://www.gravatar.com"
)

// Resolver fetches and caches avatar images.
type Resolver struct {
	exec   gitexec.Execer
	client *http.Client

	cacheDir string

	// lookupUser maps a GitHub username to its avatar URL. Swapped out in
	// tests to avoid the live API.
	lookupUser func(ctx context.Context, username string) (string, error)

	unavatarBase string
	gravatarBase string
}

// NewResolver creates a Resolver caching under the user's XDG cache home.
func NewResolver(execer gitexec.Execer) *Resolver {
	r := &Resolver{
		exec:         execer,
		client:       &http.Client{},
		cacheDir:     filepath.Join(xdg.CacheHome, "gitdeck", "avatars"),
		unavatarBase: unavatarBase,
		gravatarBase: gravatarBase,
	}
	r.lookupUser = r.githubAvatarURL
	return r
}

// Resolve returns the avatar for an author as a base64 data URL. A cache hit
// never touches the network; a miss walks the candidate chain and caches the
// first hit. Individual candidate failures move on to the next candidate.
func (r *Resolver) Resolve(ctx context.Context, email, name, repoPath string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	hash := fmt.Sprintf("%x", md5.Sum([]byte(email)))

	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache dir: %w", err)
	}
	cachePath := filepath.Join(r.cacheDir, hash+".png")
	if cached, err := os.ReadFile(cachePath); err == nil {
		return dataURL(cached), nil
	}

	var avatar []byte

	if repoPath != "" && r.isGitHubHosted(ctx, repoPath) {
		if username := r.cliUsername(ctx); username != "" {
			avatar = r.fetchGitHubUser(ctx, username)
		}
		// A display name without spaces may itself be the GitHub login.
		if avatar == nil && name != "" && !strings.Contains(name, " ") {
			avatar = r.fetchGitHubUser(ctx, name)
		}
		if avatar == nil {
			avatar, _ = r.fetch(ctx, r.unavatarBase+"/"+email+"?fallback=false")
		}
	}

	if avatar == nil {
		var err error
		avatar, err = r.fetch(ctx, r.gravatarBase+"/avatar/"+hash+"?d=identicon&s=128")
		if err != nil {
			return "", gderrors.ErrAvatarNotFound
		}
	}

	if avatar == nil {
		return "", gderrors.ErrAvatarNotFound
	}

	// Concurrent first fetches may both land here; they write identical
	// bytes, so the race is benign.
	if err := os.WriteFile(cachePath, avatar, 0o644); err != nil {
		return "", fmt.Errorf("failed to write cache: %w", err)
	}
	return dataURL(avatar), nil
}

// ClearCache wipes the whole avatar cache; entries are never invalidated
// individually.
func (r *Resolver) ClearCache() error {
	if err := os.RemoveAll(r.cacheDir); err != nil {
		return fmt.Errorf("failed to clear avatar cache: %w", err)
	}
	return nil
}

// isGitHubHosted reports whether any remote of the repository points at
// github.com.
func (r *Resolver) isGitHubHosted(ctx context.Context, repoPath string) bool {
	res := r.exec.Run(ctx, gitexec.Git(repoPath, "remote", "-v"))
	return res.Ok() && strings.Contains(res.Stdout, "github.com")
}

// cliUsername asks the gh CLI for the authenticated login, if gh is
// installed and logged in.
func (r *Resolver) cliUsername(ctx context.Context) string {
	res := r.exec.Run(ctx, gitexec.GH("api", "user", "--jq", ".login"))
	if !res.Ok() {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}

// fetchGitHubUser resolves a username to its avatar image, or nil.
func (r *Resolver) fetchGitHubUser(ctx context.Context, username string) []byte {
	url, err := r.lookupUser(ctx, username)
	if err != nil || url == "" {
		return nil
	}
	avatar, err := r.fetch(ctx, url)
	if err != nil {
		return nil
	}
	return avatar
}

// fetch GETs a URL, treating any non-2xx status as failure.
func (r *Resolver) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response for %s", url)
	}
	return body, nil
}

func dataURL(img []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)
}
