package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"voicebox/internal/config"
	"voicebox/internal/execx"
	"voicebox/internal/probe"
	"voicebox/internal/tui"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check backend dependency availability",
		Long: "check probes the Python environment for every required backend\n" +
			"package without launching anything. Exit code 0 means all packages\n" +
			"import, 1 means at least one is missing, 2 means the interpreter\n" +
			"could not be run at all.",
		RunE: runCheck,
	}
}

type checkResult struct {
	Interpreter string                `json:"interpreter"`
	Result      string                `json:"result"`
	Packages    []probe.PackageStatus `json:"packages"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadLauncherConfig()
	if err != nil {
		return err
	}

	runner := execx.CmdRunner{}
	out := cmd.OutOrStdout()

	var (
		statuses []probe.PackageStatus
		report   probe.Report
	)

	mode := tui.DetectMode(out, outputJSON)
	switch mode {
	case tui.ModeTUI:
		model := tui.NewProbeModel("DEPENDENCY PROBE", probeColumns())
		for _, pkg := range cfg.Backend.Packages {
			model.AddRow(pkg, []string{pkg, "pending"})
		}
		runErr := tui.RunWithWork(out, model, func(send func(tea.Msg)) error {
			statuses, report = probe.RunEach(cmd.Context(), runner, cfg.Interpreter, cfg.Backend.Packages,
				func(st probe.PackageStatus) {
					send(tui.RowUpdateMsg{Key: st.Package, Fields: map[string]string{"STATUS": st.Result}})
				})
			return nil
		})
		if runErr != nil {
			return runErr
		}

	default:
		statuses, report = probe.RunEach(cmd.Context(), runner, cfg.Interpreter, cfg.Backend.Packages, nil)
	}

	switch mode {
	case tui.ModeJSON:
		payload := checkResult{
			Interpreter: cfg.Interpreter,
			Result:      report.Result.String(),
			Packages:    statuses,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case tui.ModePlain:
		writeCheckTable(out, cfg.Interpreter, statuses)
	}

	switch report.Result {
	case probe.Missing:
		return exitCodeError{code: 1}
	case probe.Indeterminate:
		fmt.Fprintf(cmd.ErrOrStderr(), "error: cannot run %s: %v\n", cfg.Interpreter, report.Err)
		for _, hint := range probe.InterpreterHints(cfg.Interpreter) {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", hint)
		}
		return exitCodeError{code: 2}
	default:
		return nil
	}
}

func probeColumns() []tui.Column {
	return []tui.Column{
		{Header: "PACKAGE", Width: 20},
		{Header: "STATUS", Width: 13},
	}
}

func writeCheckTable(out io.Writer, interpreter string, statuses []probe.PackageStatus) {
	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	fmt.Fprintln(out, bold.Render("DEPENDENCY PROBE:")+" "+interpreter)
	for _, st := range statuses {
		styled := tui.StatusStyle(st.Result).Inline(true).Render(st.Result)
		fmt.Fprintf(out, "  %-20s %s\n", st.Package, styled)
	}
}

// loadLauncherConfig reads the optional config beside the executable.
func loadLauncherConfig() (config.Config, error) {
	exePath, err := os.Executable()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(filepath.Join(filepath.Dir(exePath), config.FileName))
}
