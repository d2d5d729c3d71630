// Package backend locates the Voicebox backend package directory relative to
// the launcher executable.
package backend

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound reports that no candidate backend directory exists. The caller
// treats this as fatal: without a backend there is nothing to launch.
var ErrNotFound = errors.New("backend directory not found in any expected location")

// Candidate is one probed backend location.
type Candidate struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
}

// Paths captures the resolved filesystem layout for a launch. Dir is set once
// by Resolve and never re-resolved within a run.
type Paths struct {
	ExePath string
	ExeDir  string
	// Dir is the backend package directory.
	Dir string
	// WorkDir is the parent of Dir. The backend runs as `python -m
	// backend.main`, which requires the cwd to sit one level above the
	// package directory.
	WorkDir string
}

// Candidates returns the ordered backend locations probed for the given
// executable directory. Earlier entries are the more specific layouts, so the
// first match wins: the installed layout (resources subfolder), the flat dev
// layout (sibling folder), then both again one level up for launchers nested
// inside a platform binary folder.
func Candidates(exeDir string) []string {
	parent := filepath.Dir(exeDir)
	return []string{
		filepath.Join(exeDir, "resources", "backend"),
		filepath.Join(exeDir, "backend"),
		filepath.Join(parent, "resources", "backend"),
		filepath.Join(parent, "backend"),
	}
}

// Probe stats every candidate for the given executable directory, preserving
// enumeration order.
func Probe(exeDir string) []Candidate {
	paths := Candidates(exeDir)
	candidates := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		exists, _ := dirExists(p)
		candidates = append(candidates, Candidate{Path: p, Found: exists})
	}
	return candidates
}

// Resolve locates the backend directory for the launcher at exePath. The
// probed candidate list is returned alongside the result so callers can log
// every attempt, including on failure.
func Resolve(exePath string) (Paths, []Candidate, error) {
	exeDir := filepath.Dir(exePath)
	candidates := Probe(exeDir)

	for _, c := range candidates {
		if !c.Found {
			continue
		}
		return Paths{
			ExePath: exePath,
			ExeDir:  exeDir,
			Dir:     c.Path,
			WorkDir: filepath.Dir(c.Path),
		}, candidates, nil
	}
	return Paths{ExePath: exePath, ExeDir: exeDir}, candidates, ErrNotFound
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
