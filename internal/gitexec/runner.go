// Package gitexec runs external commands for the backend, primarily the git
// binary. It captures stdout, stderr and the exit status without interpreting
// them: a non-zero exit is a normal Result the caller must inspect, while a
// spawn failure (binary missing, permission denied) surfaces as Result.Err.
package gitexec

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Command describes a single subprocess invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env is appended to the inherited environment.
	Env []string
}

// Result holds the captured output of a finished subprocess.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is set only when the process could not be spawned at all.
	Err error
}

// Ok reports whether the process was spawned and exited zero.
func (r Result) Ok() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Execer runs a single external command. The system implementation shells out;
// tests substitute a canned-output fake for deterministic behavior.
type Execer interface {
	Run(ctx context.Context, cmd Command) Result
}

// System is the Execer backed by os/exec.
type System struct{}

// NewSystem creates a System Execer.
func NewSystem() *System {
	return &System{}
}

// Run executes the command and waits for it to finish.
func (s *System) Run(ctx context.Context, cmd Command) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.Err = err
		}
	}
	return res
}

// Git builds a git invocation against the repository at repoPath with
// interactive prompts disabled.
func Git(repoPath string, args ...string) Command {
	return Command{
		Name: "git",
		Args: append([]string{"-C", repoPath}, args...),
		Env: []string{
			"GIT_TERMINAL_PROMPT=0",
			"GIT_SSH_COMMAND=ssh -o BatchMode=yes",
		},
	}
}

// GH builds a gh CLI invocation.
func GH(args ...string) Command {
	return Command{Name: "gh", Args: args}
}
