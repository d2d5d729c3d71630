//go:build !windows && !darwin

package dialog

import (
	"context"
	"fmt"

	"voicebox/internal/execx"
)

type zenityPrompter struct {
	runner execx.Runner
}

func newPlatformPrompter(runner execx.Runner) Prompter {
	return &zenityPrompter{runner: runner}
}

// Confirm shows a zenity question dialog. zenity exits 0 for Yes and 1 for
// No; a start failure (no zenity installed, no display) surfaces as an error
// so the caller can log and continue without installing.
func (p *zenityPrompter) Confirm(ctx context.Context, title, message string) (bool, error) {
	args := []string{"--question", "--title", title, "--text", message}
	result, err := p.runner.Run(ctx, "zenity", args, execx.RunOptions{})
	if err != nil {
		return false, fmt.Errorf("show dialog: %w", err)
	}
	return result.ExitCode == 0, nil
}
