// Package git exposes repository state and operations to the dispatcher.
//
// Operations shell out to the git binary through gitexec and parse its text
// output into plain records, or read refs and config directly through go-git
// when no subprocess is needed. Records are produced fresh per query and are
// never cached.
package git
