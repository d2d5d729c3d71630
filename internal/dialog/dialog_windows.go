//go:build windows

package dialog

import (
	"context"
	"fmt"
	"strings"

	"voicebox/internal/execx"
)

type windowsPrompter struct {
	runner execx.Runner
}

func newPlatformPrompter(runner execx.Runner) Prompter {
	return &windowsPrompter{runner: runner}
}

// Confirm shows a native MessageBox via PowerShell. The script prints the
// pressed button name; only the literal "Yes" counts as consent.
func (p *windowsPrompter) Confirm(ctx context.Context, title, message string) (bool, error) {
	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
$result = [System.Windows.Forms.MessageBox]::Show(%s, %s, 'YesNo', 'Question')
Write-Output $result
`, psQuote(message), psQuote(title))

	result, err := p.runner.Run(ctx, "powershell", []string{"-NoProfile", "-Command", script}, execx.RunOptions{})
	if err != nil {
		return false, fmt.Errorf("show dialog: %w", err)
	}
	if result.ExitCode != 0 {
		return false, fmt.Errorf("show dialog: powershell exited %d", result.ExitCode)
	}
	return strings.TrimSpace(string(result.Stdout)) == "Yes", nil
}

// psQuote wraps s in PowerShell single quotes, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
