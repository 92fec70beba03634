package testhelpers

import (
	"context"
	"strings"
	"sync"

	"gitdeck.dev/gitdeck/internal/gitexec"
)

// FakeExecer is an Execer returning canned results, keyed by the command name
// and argument list. Unstubbed invocations get the Default result, which
// starts as a clean exit with empty output.
type FakeExecer struct {
	mu        sync.Mutex
	responses map[string]gitexec.Result
	calls     []gitexec.Command

	Default gitexec.Result
}

// NewFakeExecer creates an empty FakeExecer.
func NewFakeExecer() *FakeExecer {
	return &FakeExecer{responses: make(map[string]gitexec.Result)}
}

// Stub registers the result for one exact invocation.
func (f *FakeExecer) Stub(result gitexec.Result, name string, args ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[commandKey(name, args)] = result
}

// StubGit registers the result for a git invocation against repoPath, with
// the same argument shape gitexec.Git produces.
func (f *FakeExecer) StubGit(repoPath string, result gitexec.Result, args ...string) {
	cmd := gitexec.Git(repoPath, args...)
	f.Stub(result, cmd.Name, cmd.Args...)
}

// Run returns the stubbed result and records the call.
func (f *FakeExecer) Run(_ context.Context, cmd gitexec.Command) gitexec.Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, cmd)
	if res, ok := f.responses[commandKey(cmd.Name, cmd.Args)]; ok {
		return res
	}
	return f.Default
}

// Calls returns every recorded invocation in order.
func (f *FakeExecer) Calls() []gitexec.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gitexec.Command(nil), f.calls...)
}

// CallCount counts invocations of one exact command.
func (f *FakeExecer) CallCount(name string, args ...string) int {
	key := commandKey(name, args)
	count := 0
	for _, call := range f.Calls() {
		if commandKey(call.Name, call.Args) == key {
			count++
		}
	}
	return count
}

// GitCallCount counts git invocations against repoPath.
func (f *FakeExecer) GitCallCount(repoPath string, args ...string) int {
	cmd := gitexec.Git(repoPath, args...)
	return f.CallCount(cmd.Name, cmd.Args...)
}

func commandKey(name string, args []string) string {
	return name + "\x00" + strings.Join(args, "\x00")
}
