package installer

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"voicebox/internal/execx"
)

// Host runs an installer script visibly and blocks until it finishes. The
// user must be able to watch install progress and read errors before the
// session closes.
type Host interface {
	RunVisible(ctx context.Context, scriptPath string) error
}

// TerminalHost executes scripts in a platform terminal session. When no
// separate terminal can be opened it falls back to running the script
// attached to the launcher's own streams, which are visible whenever the
// launcher itself has a console.
type TerminalHost struct {
	Runner execx.Runner
	Stdout io.Writer
	Stderr io.Writer
}

func (h TerminalHost) RunVisible(ctx context.Context, scriptPath string) error {
	return h.runVisible(ctx, runtime.GOOS, scriptPath)
}

func (h TerminalHost) runVisible(ctx context.Context, goos, scriptPath string) error {
	switch goos {
	case "windows":
		// start /wait opens a new console window and blocks until the inner
		// cmd session exits.
		result, err := h.Runner.Run(ctx, "cmd",
			[]string{"/C", "start", "/wait", "cmd", "/c", scriptPath}, execx.RunOptions{})
		if err != nil {
			return fmt.Errorf("open installer terminal: %w", err)
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("installer exited with code %d", result.ExitCode)
		}
		return nil
	case "linux":
		result, err := h.Runner.Run(ctx, "x-terminal-emulator", []string{"-e", "sh", scriptPath}, execx.RunOptions{})
		if err != nil {
			// No terminal emulator available; run attached instead.
			return h.runAttached(ctx, scriptPath)
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("installer exited with code %d", result.ExitCode)
		}
		return nil
	default:
		return h.runAttached(ctx, scriptPath)
	}
}

func (h TerminalHost) runAttached(ctx context.Context, scriptPath string) error {
	result, err := h.Runner.Run(ctx, "sh", []string{scriptPath}, execx.RunOptions{
		Stdout: h.Stdout,
		Stderr: h.Stderr,
	})
	if err != nil {
		return fmt.Errorf("run installer script: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("installer exited with code %d", result.ExitCode)
	}
	return nil
}

var _ Host = TerminalHost{}
