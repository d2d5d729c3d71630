package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"voicebox/internal/backend"
)

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show candidate backend locations",
		Long: "paths lists every location probed for the backend directory, in\n" +
			"priority order, and which one resolves. Exit code 1 when none exists.",
		RunE: runPaths,
	}
}

type pathsResult struct {
	Candidates []backend.Candidate `json:"candidates"`
	Resolved   string              `json:"resolved,omitempty"`
	WorkDir    string              `json:"work_dir,omitempty"`
}

func runPaths(cmd *cobra.Command, _ []string) error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate launcher executable: %w", err)
	}

	paths, candidates, resolveErr := backend.Resolve(exePath)
	out := cmd.OutOrStdout()

	if outputJSON {
		payload := pathsResult{Candidates: candidates}
		if resolveErr == nil {
			payload.Resolved = paths.Dir
			payload.WorkDir = paths.WorkDir
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		bold := lipgloss.NewStyle().Bold(true).Inline(true)
		green := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true)
		yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)

		fmt.Fprintln(out, bold.Render("BACKEND CANDIDATES:"))
		for _, c := range candidates {
			status := yellow.Render("not found")
			if c.Found {
				status = green.Render("found")
			}
			fmt.Fprintf(out, "  %-60s %s\n", c.Path, status)
		}
		if resolveErr == nil {
			fmt.Fprintf(out, "\nResolved: %s\nWorkdir:  %s\n", paths.Dir, paths.WorkDir)
		} else {
			fmt.Fprintln(out, "\nResolved: none")
		}
	}

	if resolveErr != nil {
		return exitCodeError{code: 1}
	}
	return nil
}
