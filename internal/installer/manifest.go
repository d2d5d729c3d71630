package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilteredName is the transient manifest copy written beside the original.
const FilteredName = "requirements_install.txt"

// Manifest describes one install attempt's dependency input. FilteredPath is
// a temporary artifact owned by the orchestrator and deleted after use.
type Manifest struct {
	SourcePath   string
	FilteredPath string
	Entries      []string
}

// Locate returns the manifest path inside the backend directory, reporting
// whether it exists.
func Locate(backendDir, name string) (string, bool) {
	path := filepath.Join(backendDir, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return path, false
	}
	return path, true
}

// Filter writes a copy of the manifest at sourcePath with every protected
// line removed, returning the retained entries. A line is protected when its
// trimmed text starts with any marker, compared case-insensitively: the
// point is to avoid clobbering a specially built component (a GPU torch
// build, say), so the match is deliberately conservative.
func Filter(sourcePath string, markers []string) (Manifest, error) {
	m := Manifest{SourcePath: sourcePath}

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}

	var kept []string
	for _, line := range strings.Split(string(content), "\n") {
		if protected(line, markers) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, "\r"))
	}
	// Drop a trailing blank produced by a final newline in the source.
	for len(kept) > 0 && kept[len(kept)-1] == "" {
		kept = kept[:len(kept)-1]
	}

	filteredPath := filepath.Join(filepath.Dir(sourcePath), FilteredName)
	if err := os.WriteFile(filteredPath, []byte(strings.Join(kept, "\n")+"\n"), 0o644); err != nil {
		return m, fmt.Errorf("write filtered manifest: %w", err)
	}

	m.FilteredPath = filteredPath
	m.Entries = kept
	return m, nil
}

// Remove deletes the filtered copy. Best-effort by contract.
func (m Manifest) Remove() error {
	if m.FilteredPath == "" {
		return nil
	}
	return os.Remove(m.FilteredPath)
}

func protected(line string, markers []string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	for _, marker := range markers {
		if marker == "" {
			continue
		}
		if strings.HasPrefix(trimmed, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
