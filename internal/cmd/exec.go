package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/smorinlabs/worktreeflow/internal/log"
)

// ExitError reports a command that ran and exited non-zero.
//
// Error() is the command's trimmed stderr when it produced any, so callers
// can surface the tool's own message verbatim. The full invocation stays
// available for diagnostics.
type ExitError struct {
	Name     string
	Args     []string
	Stderr   string
	ExitCode int

	err error
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s: %v", e.Name, e.err)
}

func (e *ExitError) Unwrap() error { return e.err }

// RunContext executes name with args in dir (current directory when empty),
// discarding stdout. A non-zero exit returns an *ExitError; a cancelled
// context returns the context's error.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := execute(ctx, dir, name, args...)
	return err
}

// OutputContext executes name with args in dir and returns captured stdout.
// Error semantics match RunContext.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return execute(ctx, dir, name, args...)
}

func execute(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				Name:     name,
				Args:     args,
				Stderr:   strings.TrimSpace(stderr.String()),
				ExitCode: exitErr.ExitCode(),
				err:      err,
			}
		}
		// Start failures (missing binary, bad dir) are already descriptive.
		return nil, err
	}

	return stdout.Bytes(), nil
}
