package probe

import "runtime"

// InterpreterHints returns per-platform guidance for an Indeterminate probe,
// where the interpreter itself could not be started.
func InterpreterHints(interpreter string) []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"Install Python via Homebrew: brew install python",
			"Make sure '" + interpreter + "' is on your PATH",
		}
	case "linux":
		return []string{
			"Install Python with your distro package manager, e.g. sudo apt install python3",
			"Make sure '" + interpreter + "' is on your PATH",
		}
	case "windows":
		return []string{
			"Install Python from https://www.python.org/downloads/ or via winget: winget install Python.Python.3",
			"Make sure '" + interpreter + "' is on your PATH",
		}
	default:
		return []string{"Install Python and make sure '" + interpreter + "' is on your PATH"}
	}
}
