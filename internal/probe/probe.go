// Package probe performs the read-only dependency check against the Python
// environment the backend will run in.
package probe

import (
	"context"
	"fmt"
	"strings"

	"voicebox/internal/execx"
)

// Result is the tri-state outcome of a dependency probe.
type Result int

const (
	// OK means the probe ran and every required package imported.
	OK Result = iota
	// Missing means the probe ran and at least one import failed.
	Missing
	// Indeterminate means the probe could not be started at all, typically
	// because the interpreter is not on PATH. Remediation differs from
	// Missing, so the two are never conflated.
	Indeterminate
)

func (r Result) String() string {
	switch r {
	case OK:
		return "ok"
	case Missing:
		return "missing"
	case Indeterminate:
		return "indeterminate"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Report carries the probe outcome plus the start error for Indeterminate.
type Report struct {
	Result Result
	// Err is set only when Result is Indeterminate.
	Err error
}

// Script renders the import-check script passed to `<interpreter> -c`. It
// exits 1 on the first import failure and 0 otherwise; any other outcome
// means the script never ran.
func Script(packages []string) string {
	return fmt.Sprintf(`import sys
try:
    import %s
except ImportError:
    sys.exit(1)
`, strings.Join(packages, ", "))
}

// Run executes the import probe for all packages at once.
func Run(ctx context.Context, runner execx.Runner, interpreter string, packages []string) Report {
	if len(packages) == 0 {
		return Report{Result: OK}
	}

	result, err := runner.Run(ctx, interpreter, []string{"-c", Script(packages)}, execx.RunOptions{})
	if err != nil {
		return Report{Result: Indeterminate, Err: err}
	}
	if result.ExitCode != 0 {
		return Report{Result: Missing}
	}
	return Report{Result: OK}
}

// PackageStatus is the per-package outcome reported by RunEach.
type PackageStatus struct {
	Package string `json:"package"`
	Result  string `json:"result"`
}

// RunEach probes every package individually, invoking observe (when non-nil)
// as each result lands. Used by the check command to show which imports fail
// rather than just that one did. The first start failure short-circuits: if
// the interpreter cannot run one probe it cannot run any.
func RunEach(ctx context.Context, runner execx.Runner, interpreter string, packages []string, observe func(PackageStatus)) ([]PackageStatus, Report) {
	statuses := make([]PackageStatus, 0, len(packages))
	overall := Report{Result: OK}

	record := func(st PackageStatus) {
		statuses = append(statuses, st)
		if observe != nil {
			observe(st)
		}
	}

	for _, pkg := range packages {
		result, err := runner.Run(ctx, interpreter, []string{"-c", Script([]string{pkg})}, execx.RunOptions{})
		if err != nil {
			overall = Report{Result: Indeterminate, Err: err}
			for _, rest := range packages[len(statuses):] {
				record(PackageStatus{Package: rest, Result: Indeterminate.String()})
			}
			return statuses, overall
		}
		if result.ExitCode != 0 {
			record(PackageStatus{Package: pkg, Result: Missing.String()})
			overall.Result = Missing
			continue
		}
		record(PackageStatus{Package: pkg, Result: OK.String()})
	}
	return statuses, overall
}
