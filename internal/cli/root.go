package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outputJSON bool

// exitCodeError carries a specific process exit code out of a command. The
// launcher's contract is faithful propagation of the child's code, so a flat
// exit 1 is not enough here.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// Execute runs the root cobra command and exits the process with the
// resulting code.
func Execute() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	var ec exitCodeError
	if errors.As(err, &ec) {
		os.Exit(ec.code)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voicebox-server [backend args...]",
		Short: "Launch and supervise the Voicebox backend",
		Long: "voicebox-server locates the Voicebox Python backend, verifies its\n" +
			"dependencies, optionally installs missing ones with the user's consent,\n" +
			"then runs the backend and exits with its exit code. All arguments are\n" +
			"forwarded verbatim to the backend.",
		RunE: runLaunch,
		// Arguments belong to the backend, not to the launcher. Flag parsing
		// is disabled so they pass through untouched and in order.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newPathsCmd())

	return cmd
}
