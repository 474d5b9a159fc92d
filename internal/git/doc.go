// Package git discovers repositories under a root directory and runs
// git operations against them through the external git executable.
package git
