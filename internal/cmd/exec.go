package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hgranberg/mgit/internal/log"
)

// Result holds the outcome of a single external command invocation.
// A non-zero ExitCode is data, not an error; stdout and stderr are
// captured separately and never merged.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// prepare builds a context-aware command running in dir (or the working
// directory when dir is empty).
func prepare(ctx context.Context, dir, name string, args ...string) *exec.Cmd {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	return c
}

// RunContext executes a command and returns stderr in the error message
// if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)
	start := time.Now()

	c := prepare(ctx, dir, name, args...)
	var stderr bytes.Buffer
	c.Stderr = &stderr
	err := c.Run()
	done(time.Since(start))

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}
	return nil
}

// OutputContext executes a command and returns stdout, with stderr in
// the error message if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)
	start := time.Now()

	c := prepare(ctx, dir, name, args...)
	var stderr bytes.Buffer
	c.Stderr = &stderr
	out, err := c.Output()
	done(time.Since(start))

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, err
	}
	return out, nil
}

// CaptureContext executes a command and captures exit code, stdout and
// stderr. A non-zero exit does not produce an error; the error return is
// reserved for launch-level failures (executable missing, permission
// denied, context cancellation).
func CaptureContext(ctx context.Context, dir, name string, args ...string) (Result, error) {
	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)
	start := time.Now()

	c := prepare(ctx, dir, name, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	err := c.Run()
	done(time.Since(start))

	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return Result{}, err
	}
	return res, nil
}
