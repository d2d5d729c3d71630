// Package execx wraps os/exec behind a narrow interface so command execution
// can be substituted in tests.
package execx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// RunOptions configures a single command invocation.
type RunOptions struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// RunResult reports the outcome of a command that actually started.
type RunResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Runner executes a command and waits for it. A non-nil error means the
// command could not be started or waited on at all; a command that started
// and exited non-zero is reported through RunResult.ExitCode with a nil
// error. Callers that care about the distinction (probe ran and failed vs
// probe could not run) branch on exactly that.
type Runner interface {
	Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error)
}

// CmdRunner is the production Runner backed by os/exec.
type CmdRunner struct{}

func (CmdRunner) Run(ctx context.Context, command string, args []string, opts RunOptions) (RunResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	stdoutWriter := io.Writer(&stdoutBuf)
	if opts.Stdout != nil {
		stdoutWriter = io.MultiWriter(&stdoutBuf, opts.Stdout)
	}
	stderrWriter := io.Writer(&stderrBuf)
	if opts.Stderr != nil {
		stderrWriter = io.MultiWriter(&stderrBuf, opts.Stderr)
	}

	cmd.Stdout = stdoutWriter
	cmd.Stderr = stderrWriter

	err := cmd.Run()
	result := RunResult{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

var _ Runner = CmdRunner{}
