package dispatch

import (
	"context"
	"encoding/json"

	"gitdeck.dev/gitdeck/internal/avatar"
	"gitdeck.dev/gitdeck/internal/git"
	"gitdeck.dev/gitdeck/internal/sshkey"
)

// Commands binds the full frontend command surface to the backend services.
type Commands struct {
	Git     *git.Service
	Avatars *avatar.Resolver
	Keys    *sshkey.Manager
}

// Argument shapes shared by several commands.
type (
	pathArgs struct {
		Path string `json:"path"`
	}
	fileArgs struct {
		Path     string `json:"path"`
		FilePath string `json:"file_path"`
	}
	hashArgs struct {
		Path string `json:"path"`
		Hash string `json:"hash"`
	}
	indexArgs struct {
		Path  string `json:"path"`
		Index int    `json:"index"`
	}
	filesArgs struct {
		Path  string   `json:"path"`
		Files []string `json:"files"`
	}
)

// RegisterAll registers every command on the registry.
func (c *Commands) RegisterAll(r *Registry) {
	r.Register("status", c.status)
	r.Register("commits", c.commits)
	r.Register("commit-files", c.commitFiles)
	r.Register("commit-file-diff", c.commitFileDiff)
	r.Register("diff", c.diff)
	r.Register("remotes", c.remotes)
	r.Register("remote-branches", c.remoteBranches)
	r.Register("branches", c.branches)
	r.Register("tags", c.tags)
	r.Register("stashes", c.stashes)
	r.Register("commit", c.commit)
	r.Register("stage-file", c.stageFile)
	r.Register("stage-all", c.stageAll)
	r.Register("unstage-file", c.unstageFile)
	r.Register("unstage-all", c.unstageAll)
	r.Register("discard-changes", c.discardChanges)
	r.Register("stash-save", c.stashSave)
	r.Register("stash-drop", c.stashDrop)
	r.Register("stash-pop", c.stashPop)
	r.Register("fetch", c.fetch)
	r.Register("pull", c.pull)
	r.Register("push", c.push)
	r.Register("create-branch", c.createBranch)
	r.Register("switch-branch", c.switchBranch)
	r.Register("checkout-remote-branch", c.checkoutRemoteBranch)
	r.Register("delete-branch", c.deleteBranch)
	r.Register("create-tag", c.createTag)
	r.Register("ssh-key-info", c.sshKeyInfo)
	r.Register("generate-ssh-key", c.generateSSHKey)
	r.Register("avatar", c.avatar)
	r.Register("clear-avatar-cache", c.clearAvatarCache)
	r.Register("init", c.initRepo)
	r.Register("is-repo", c.isRepo)
	r.Register("repo-stats", c.repoStats)
	r.Register("readme", c.readme)
}

func (c *Commands) status(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.Status(ctx, args.Path)
}

func (c *Commands) commits(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.Commits(ctx, args.Path)
}

func (c *Commands) commitFiles(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[hashArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.CommitFiles(ctx, args.Path, args.Hash)
}

func (c *Commands) commitFileDiff(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Path     string `json:"path"`
		Hash     string `json:"hash"`
		FilePath string `json:"file_path"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.CommitFileDiff(ctx, args.Path, args.Hash, args.FilePath)
}

func (c *Commands) diff(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[fileArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.Diff(ctx, args.Path, args.FilePath)
}

func (c *Commands) remotes(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.Remotes(args.Path)
}

func (c *Commands) remoteBranches(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.RemoteBranchNames(args.Path)
}

func (c *Commands) branches(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.Branches(args.Path)
}

func (c *Commands) tags(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.TagNames(args.Path)
}

func (c *Commands) stashes(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.Stashes(ctx, args.Path)
}

func (c *Commands) commit(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Path    string `json:"path"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
		Amend   bool   `json:"amend"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.Commit(ctx, args.Path, args.Subject, args.Body, args.Amend)
}

func (c *Commands) stageFile(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[fileArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.StageFile(ctx, args.Path, args.FilePath)
}

func (c *Commands) stageAll(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.StageAll(ctx, args.Path)
}

func (c *Commands) unstageFile(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[fileArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.UnstageFile(ctx, args.Path, args.FilePath)
}

func (c *Commands) unstageAll(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.UnstageAll(ctx, args.Path)
}

func (c *Commands) discardChanges(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[filesArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.DiscardChanges(ctx, args.Path, args.Files)
}

func (c *Commands) stashSave(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Path    string   `json:"path"`
		Files   []string `json:"files"`
		Message string   `json:"message"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.StashSave(ctx, args.Path, args.Files, args.Message)
}

func (c *Commands) stashDrop(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[indexArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.StashDrop(ctx, args.Path, args.Index)
}

func (c *Commands) stashPop(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[indexArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.StashPop(ctx, args.Path, args.Index)
}

func (c *Commands) fetch(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.Fetch(ctx, args.Path)
}

func (c *Commands) pull(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.Pull(ctx, args.Path)
}

func (c *Commands) push(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.Push(ctx, args.Path)
}

func (c *Commands) createBranch(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Path       string `json:"path"`
		BranchName string `json:"branch_name"`
		StartPoint string `json:"start_point"`
		Checkout   bool   `json:"checkout"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.CreateBranch(ctx, args.Path, args.BranchName, args.StartPoint, args.Checkout)
}

func (c *Commands) switchBranch(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Path       string `json:"path"`
		BranchName string `json:"branch_name"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.SwitchBranch(ctx, args.Path, args.BranchName)
}

func (c *Commands) checkoutRemoteBranch(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Path          string `json:"path"`
		RemoteBranch  string `json:"remote_branch"`
		NewBranchName string `json:"new_branch_name"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.CheckoutRemoteBranch(ctx, args.Path, args.RemoteBranch, args.NewBranchName)
}

func (c *Commands) deleteBranch(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Path         string `json:"path"`
		BranchName   string `json:"branch_name"`
		DeleteRemote bool   `json:"delete_remote"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.DeleteBranch(ctx, args.Path, args.BranchName, args.DeleteRemote)
}

func (c *Commands) createTag(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Path       string `json:"path"`
		TagName    string `json:"tag_name"`
		CommitHash string `json:"commit_hash"`
		Message    string `json:"message"`
		PushAll    bool   `json:"push_all"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.CreateTag(ctx, args.Path, args.TagName, args.CommitHash, args.Message, args.PushAll)
}

func (c *Commands) sshKeyInfo(_ context.Context, _ json.RawMessage) (any, error) {
	return c.Keys.Info()
}

func (c *Commands) generateSSHKey(ctx context.Context, _ json.RawMessage) (any, error) {
	return c.Keys.Generate(ctx)
}

func (c *Commands) avatar(ctx context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		RepoPath string `json:"repo_path"`
	}](raw)
	if err != nil {
		return nil, err
	}
	return c.Avatars.Resolve(ctx, args.Email, args.Name, args.RepoPath)
}

func (c *Commands) clearAvatarCache(_ context.Context, _ json.RawMessage) (any, error) {
	return nil, c.Avatars.ClearCache()
}

func (c *Commands) initRepo(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return nil, c.Git.Init(args.Path)
}

func (c *Commands) isRepo(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.IsRepo(args.Path)
}

func (c *Commands) repoStats(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.RepoStats(args.Path)
}

func (c *Commands) readme(_ context.Context, raw json.RawMessage) (any, error) {
	args, err := decode[pathArgs](raw)
	if err != nil {
		return nil, err
	}
	return c.Git.Readme(args.Path)
}
