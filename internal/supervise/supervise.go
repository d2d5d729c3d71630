// Package supervise spawns the backend process, relays its output, and
// propagates its exit status.
package supervise

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync"
)

const maxLineBytes = 1024 * 1024

// Supervisor runs a single child process to completion. Each line of the
// child's stdout and stderr is appended to the log with a stream prefix and
// forwarded to the corresponding passthrough writer. Order is preserved
// within each stream; the two streams are independent channels with no
// ordering guarantee between them.
type Supervisor struct {
	Command string
	Args    []string
	Dir     string

	Log    *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Run blocks until the child exits and returns its exit code. A child killed
// by a signal has no retrievable code and reports 1. The returned error is
// non-nil only when the child could not be spawned; the caller treats that as
// fatal.
func (s *Supervisor) Run(ctx context.Context) (int, error) {
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Dir = s.Dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 1, fmt.Errorf("capture stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 1, fmt.Errorf("capture stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("spawn %s: %w", s.Command, err)
	}

	s.Log.Printf("Launcher: Process spawned (pid %d). Monitoring output...", cmd.Process.Pid)

	var wg sync.WaitGroup
	wg.Add(2)
	go s.relay(&wg, "STDOUT", stdout, s.Stdout)
	go s.relay(&wg, "STDERR", stderr, s.Stderr)

	// Drain both pipes before Wait; Wait closes them.
	wg.Wait()

	err = cmd.Wait()
	code := cmd.ProcessState.ExitCode()
	if code < 0 {
		// Signal termination carries no retrievable code.
		s.Log.Printf("Launcher: Process terminated abnormally: %v", err)
		return 1, nil
	}
	s.Log.Printf("Launcher: Process exited with code %d", code)
	return code, nil
}

// relay consumes one stream line by line until EOF. A read error on one
// stream never affects the other or the wait on the child: the pipe is
// drained to EOF even after the scanner gives up, so the child can never
// block on a full pipe.
func (s *Supervisor) relay(wg *sync.WaitGroup, stream string, r io.Reader, passthrough io.Writer) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		s.Log.Printf("%s: %s", stream, line)
		if passthrough != nil {
			fmt.Fprintln(passthrough, line)
		}
	}
	if err := scanner.Err(); err != nil {
		s.Log.Printf("Launcher: %s reader stopped, discarding further output: %v", stream, err)
		io.Copy(io.Discard, r)
	}
}
