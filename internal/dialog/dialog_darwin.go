//go:build darwin

package dialog

import (
	"context"
	"fmt"
	"strings"

	"voicebox/internal/execx"
)

type darwinPrompter struct {
	runner execx.Runner
}

func newPlatformPrompter(runner execx.Runner) Prompter {
	return &darwinPrompter{runner: runner}
}

// Confirm shows a modal dialog via osascript. Pressing No makes osascript
// report "button returned:No" on stdout.
func (p *darwinPrompter) Confirm(ctx context.Context, title, message string) (bool, error) {
	script := fmt.Sprintf(
		`display dialog %s with title %s buttons {"No", "Yes"} default button "Yes"`,
		appleQuote(message), appleQuote(title),
	)

	result, err := p.runner.Run(ctx, "osascript", []string{"-e", script}, execx.RunOptions{})
	if err != nil {
		return false, fmt.Errorf("show dialog: %w", err)
	}
	// osascript exits 1 when the dialog is dismissed; treat that as a No.
	if result.ExitCode != 0 {
		return false, nil
	}
	return strings.Contains(string(result.Stdout), "button returned:Yes"), nil
}

func appleQuote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
