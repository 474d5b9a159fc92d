// Package cmd provides helpers for executing external commands.
//
// This package wraps [os/exec.Cmd] with context support, verbose command
// logging, and stderr capture so command failures carry the tool's own
// error message instead of a bare exit status.
package cmd
