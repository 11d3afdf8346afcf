// Package shell runs step implementation scripts in child processes
// behind a narrow Executor interface, so the run coordinator can be
// tested with a fake.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Invocation is one step execution request: the script body, the
// pattern's capture groups, and the previous step's stdout.
type Invocation struct {
	Script         string
	Captures       []string
	PreviousStdout string
}

// Result is the outcome of one child process: exit status and fully
// buffered output. Exit 0 means the step passed.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs one invocation to completion. A returned error is a
// run-level launch fault, distinct from a failing step.
type Executor interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// exit code reported for a timed-out script, matching the shell's own
// convention for SIGTERM after timeout.
const timeoutExitCode = 124

// ShellExecutor spawns a POSIX shell per invocation. Each spawn gets a
// freshly constructed environment; nothing leaks between steps. The
// executor blocks until the child exits; Timeout zero means unbounded.
type ShellExecutor struct {
	Shell   string
	Timeout time.Duration
}

// NewExecutor locates a shell via the locator and returns an executor
// bound to it. Locator failure is the fatal "cannot launch interpreter"
// case and is surfaced before any step runs.
func NewExecutor(locator Locator, timeout time.Duration) (*ShellExecutor, error) {
	shellPath, err := locator.Locate()
	if err != nil {
		return nil, fmt.Errorf("locate shell: %w", err)
	}
	return &ShellExecutor{Shell: shellPath, Timeout: timeout}, nil
}

// Run executes the invocation's script with <shell> -c, injecting
// MATCH_1..N for the capture groups and PREVIOUS_STEP_STDOUT for the
// prior step's output.
func (e *ShellExecutor) Run(ctx context.Context, inv Invocation) (Result, error) {
	if strings.TrimSpace(inv.Script) == "" {
		return Result{ExitCode: 1, Stderr: "empty script content"}, nil
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.Shell, "-c", inv.Script)
	cmd.Env = buildEnv(inv)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("launch %s: %w", e.Shell, err)
	}

	err := cmd.Wait()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	switch {
	case err == nil:
		return result, nil
	case ctx.Err() == context.DeadlineExceeded:
		result.ExitCode = timeoutExitCode
		result.Stderr = fmt.Sprintf("script execution timed out after %s", e.Timeout)
		return result, nil
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Output capture faults count as a step failure, not a run fault.
		result.ExitCode = 1
		result.Stderr = fmt.Sprintf("output capture failed: %v", err)
		return result, nil
	}
}

// buildEnv constructs the child environment from the parent environment
// plus the step variables. Capture groups are 1-based.
func buildEnv(inv Invocation) []string {
	env := os.Environ()
	for i, capture := range inv.Captures {
		env = append(env, fmt.Sprintf("MATCH_%d=%s", i+1, capture))
	}
	env = append(env, "PREVIOUS_STEP_STDOUT="+inv.PreviousStdout)
	return env
}
