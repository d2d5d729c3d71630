package execx

import (
	"context"
	"fmt"
)

// Call records a single invocation seen by a FakeRunner.
type Call struct {
	Command string
	Args    []string
	Opts    RunOptions
}

// Response scripts the outcome of one FakeRunner invocation.
type Response struct {
	Result RunResult
	Err    error
}

// FakeRunner replays scripted responses in order and records every call.
// Running past the end of the script fails the invocation.
type FakeRunner struct {
	Responses []Response
	Calls     []Call
}

func (f *FakeRunner) Run(_ context.Context, command string, args []string, opts RunOptions) (RunResult, error) {
	f.Calls = append(f.Calls, Call{Command: command, Args: args, Opts: opts})
	idx := len(f.Calls) - 1
	if idx >= len(f.Responses) {
		return RunResult{}, fmt.Errorf("unexpected call %d: %s %v", idx, command, args)
	}
	resp := f.Responses[idx]
	if resp.Err != nil {
		return resp.Result, resp.Err
	}
	if opts.Stdout != nil && len(resp.Result.Stdout) > 0 {
		_, _ = opts.Stdout.Write(resp.Result.Stdout)
	}
	if opts.Stderr != nil && len(resp.Result.Stderr) > 0 {
		_, _ = opts.Stderr.Write(resp.Result.Stderr)
	}
	return resp.Result, nil
}

var _ Runner = (*FakeRunner)(nil)
