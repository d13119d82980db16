// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package execrun executes the external converter binary with bounded
// runtime. The argument vector is handed directly to process creation;
// nothing passes through a shell, so no escaping is applied or needed.
package execrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// Outcome captures one finished invocation. A non-zero exit code is data at
// this layer, not an error; the caller decides how to surface it.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	TimedOut bool
}

// Runner executes external processes. The interface exists so converter
// tests can substitute a fake for the real tool.
type Runner interface {
	// Run executes exe with args and waits for it to exit. With timeout > 0
	// the process receives SIGTERM at timeout and SIGKILL 2*timeout later,
	// bounding the worst case to 3*timeout. With timeout <= 0 execution is
	// unbounded. The returned error covers launch and plumbing failures
	// only, never the tool's own exit status.
	Run(ctx context.Context, exe string, args []string, timeout time.Duration) (Outcome, error)
}

// New returns the production Runner backed by os/exec.
func New() Runner {
	return &processRunner{}
}

type processRunner struct{}

func (p *processRunner) Run(ctx context.Context, exe string, args []string, timeout time.Duration) (Outcome, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if timeout > 0 {
		// Graceful first: SIGTERM when the deadline fires, SIGKILL only if
		// the process is still alive 2*timeout later.
		cmd.Cancel = func() error {
			return cmd.Process.Signal(syscall.SIGTERM)
		}
		cmd.WaitDelay = 2 * timeout
	}

	start := time.Now()
	err := cmd.Run()
	out := Outcome{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
		TimedOut: ctx.Err() == context.DeadlineExceeded,
	}

	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		out.ExitCode = exitErr.ExitCode()
	case errors.Is(err, exec.ErrWaitDelay):
		// Exited during the grace window with its output pipes abandoned.
		out.ExitCode = -1
	default:
		return out, fmt.Errorf("running %s: %w", exe, err)
	}
	return out, nil
}
