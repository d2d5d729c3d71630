package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"voicebox/internal/backend"
	"voicebox/internal/config"
	"voicebox/internal/dialog"
	"voicebox/internal/execx"
	"voicebox/internal/installer"
	"voicebox/internal/logx"
	"voicebox/internal/probe"
	"voicebox/internal/supervise"
)

func runLaunch(cmd *cobra.Command, args []string) error {
	exePath, err := os.Executable()
	if err != nil {
		exePath = "."
	}

	l := &launcher{
		exePath: exePath,
		args:    args,
		runner:  execx.CmdRunner{},
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	l.prompter = dialog.New(l.runner)
	l.terminal = installer.TerminalHost{Runner: l.runner, Stdout: os.Stdout, Stderr: os.Stderr}

	code := l.run(cmd.Context())
	if code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}

// launcher wires the launch pipeline together. Collaborators are fields so
// tests can substitute them.
type launcher struct {
	exePath string
	args    []string

	runner   execx.Runner
	prompter dialog.Prompter
	terminal installer.Host
	stdout   io.Writer
	stderr   io.Writer

	// runChild is swappable in tests; the default spawns a real process.
	runChild func(ctx context.Context, s *supervise.Supervisor) (int, error)

	// logPath overrides the configured launch log location in tests.
	logPath string
}

// run executes the full launch pipeline and returns the launcher's exit
// code: the child's own code, or 1 for the two fatal cases (backend
// unresolvable, spawn failure).
func (l *launcher) run(ctx context.Context) int {
	exeDir := filepath.Dir(l.exePath)

	cfg, err := config.Load(filepath.Join(exeDir, config.FileName))
	if err != nil {
		// A broken config file must not strand the backend; run on defaults.
		cfg = config.Default()
	}

	logger, closer := l.openLog(cfg)
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		logger.Printf("Launcher: Ignoring invalid config: %v", err)
	}

	logger.Print("Launcher: Starting Voicebox Server wrapper...")
	logger.Printf("Launcher: Executable at %s", l.exePath)
	logger.Printf("Launcher: Executable Dir at %s", exeDir)

	paths, candidates, err := backend.Resolve(l.exePath)
	for _, c := range candidates {
		if c.Found {
			logger.Printf("Launcher: Found backend at %s", c.Path)
			break
		}
		logger.Printf("Launcher: Checked %s (not found)", c.Path)
	}
	if err != nil {
		logger.Printf("Error: %v", err)
		fmt.Fprintf(l.stderr, "error: %v\n", err)
		return 1
	}
	logger.Printf("Launcher: Setting CWD to %s", paths.WorkDir)

	l.preflight(ctx, cfg, paths, logger)

	return l.launch(ctx, cfg, paths, logger)
}

// preflight probes dependencies and drives the guarded install flow. Every
// outcome here is advisory: the backend is launched regardless.
func (l *launcher) preflight(ctx context.Context, cfg config.Config, paths backend.Paths, logger *log.Logger) {
	logger.Print("Launcher: Performing pre-flight dependency check...")

	report := probe.Run(ctx, l.runner, cfg.Interpreter, cfg.Backend.Packages)
	switch report.Result {
	case probe.OK:
		logger.Print("Launcher: Dependencies look OK.")

	case probe.Indeterminate:
		logger.Printf("Launcher: Failed to run dependency check: %v. Is %s installed?", report.Err, cfg.Interpreter)
		for _, hint := range probe.InterpreterHints(cfg.Interpreter) {
			logger.Printf("Launcher: Hint: %s", hint)
		}

	case probe.Missing:
		logger.Print("Launcher: Missing dependencies. Prompting user...")
		o := &installer.Orchestrator{
			Prompter:         l.prompter,
			Terminal:         l.terminal,
			Log:              logger,
			ManifestName:     cfg.Install.Manifest,
			ProtectedMarkers: cfg.Install.ProtectedMarkers,
		}
		decision := o.Run(ctx, paths.Dir)
		logger.Printf("Launcher: Install decision: %s", decision)
	}
}

// launch spawns and supervises the backend, returning the exit code to
// propagate.
func (l *launcher) launch(ctx context.Context, cfg config.Config, paths backend.Paths, logger *log.Logger) int {
	args := launchArgs(cfg.Backend.Module, l.args)
	logger.Printf("Launcher: Running '%s %s' in %s", cfg.Interpreter, strings.Join(args, " "), paths.WorkDir)

	sup := &supervise.Supervisor{
		Command: cfg.Interpreter,
		Args:    args,
		Dir:     paths.WorkDir,
		Log:     logger,
		Stdout:  l.stdout,
		Stderr:  l.stderr,
	}

	runChild := l.runChild
	if runChild == nil {
		runChild = func(ctx context.Context, s *supervise.Supervisor) (int, error) {
			return s.Run(ctx)
		}
	}

	code, err := runChild(ctx, sup)
	if err != nil {
		logger.Printf("Launcher: Failed to spawn %s process: %v", cfg.Interpreter, err)
		logger.Printf("Make sure '%s' is in your system PATH.", cfg.Interpreter)
		fmt.Fprintf(l.stderr, "error: failed to start backend: %v\n", err)
		return 1
	}
	return code
}

// openLog opens the launch log, falling back to a discard logger so that
// logging problems never block a launch.
func (l *launcher) openLog(cfg config.Config) (*log.Logger, io.Closer) {
	path := l.logPath
	if path == "" {
		path = cfg.LogPath
	}
	if path == "" {
		path = logx.DefaultPath()
	}
	logger, closer, err := logx.NewAt(path)
	if err != nil {
		fmt.Fprintf(l.stderr, "warning: cannot open launch log: %v\n", err)
		return logx.Discard(), nil
	}
	return logger, closer
}

// launchArgs composes the backend argv: the fixed module invocation followed
// by every launcher argument, order-preserving and unmodified.
func launchArgs(module string, passthrough []string) []string {
	args := []string{"-m", module}
	return append(args, passthrough...)
}
