package git

import "time"

// Branch represents a local branch.
type Branch struct {
	Name string `json:"name"`
	// IsCurrent is true for the branch the symbolic HEAD points at.
	// At most one branch per query carries it.
	IsCurrent bool `json:"is_current"`
}

// Stash represents one entry of the stash stack.
type Stash struct {
	// Index is the position in `stash list` output, 0 being the most recent.
	Index int `json:"index"`
	// Message is the stash subject line.
	Message string `json:"message"`
	// Branch is the reflog selector naming the originating branch.
	Branch string `json:"branch"`
}

// Remote represents a configured remote.
type Remote struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Commit represents a commit with full metadata as parsed from git log.
type Commit struct {
	Hash        string `json:"hash"`
	Author      string `json:"author"`
	AuthorEmail string `json:"author_email"`
	// Message is the subject line; Body carries the rest of the message.
	Message string `json:"message"`
	Body    string `json:"body"`
	// Date is the author date as a unix-seconds string.
	Date string `json:"date"`
	// Parents are ordered first-parent-first.
	Parents  []string `json:"parents"`
	Branches []string `json:"branches"`
	Tags     []string `json:"tags"`
}

// CommitFile represents a file touched by a commit.
type CommitFile struct {
	Path string `json:"path"`
	// Status is the single-letter name-status code (A, M, D, R, ...).
	Status string `json:"status"`
}

// StatusFile represents one entry of the working tree status. A path that
// differs in both the index and the working tree appears twice, once staged
// and once unstaged.
type StatusFile struct {
	Path string `json:"path"`
	// Status is the two-character porcelain code, e.g. "M ", " M", "??".
	Status   string `json:"status"`
	IsStaged bool   `json:"is_staged"`
}

// RemoteBranches groups the remote-tracking branch names of a single remote.
type RemoteBranches struct {
	Name     string   `json:"name"`
	Branches []string `json:"branches"`
}

// RepoStats is an aggregate snapshot of a repository, assembled entirely
// through go-git without spawning a process.
type RepoStats struct {
	RepoName      string           `json:"repoName"`
	RemoteURL     string           `json:"remoteUrl"`
	SizeMB        float64          `json:"sizeMb"`
	CommitCount   int              `json:"commitCount"`
	LastCommit    time.Time        `json:"lastCommit"`
	FirstCommit   time.Time        `json:"firstCommit"`
	IsClean       bool             `json:"isClean"`
	ModifiedFiles []string         `json:"modifiedFiles"`
	Branches      []string         `json:"branches"`
	Remotes       []RemoteBranches `json:"remotes"`
	Tags          []string         `json:"tags"`
	Stashes       []string         `json:"stashes"`
	CurrentBranch string           `json:"currentBranch"`
}
