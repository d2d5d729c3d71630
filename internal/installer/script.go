package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Script is a generated installer script: a pure description of what will
// run, separated from the step that executes it so generation stays testable
// without spawning terminals.
type Script struct {
	Path     string
	Manifest string
	Contents string
}

// GenerateScript renders the transient installer script for the host
// platform. The script prints its target, runs the package manager, pauses
// for acknowledgment on failure so the terminal window survives long enough
// to be read, and confirms with a short delay on success.
func GenerateScript(backendDir, manifestPath string) Script {
	return generateScript(runtime.GOOS, backendDir, manifestPath)
}

func generateScript(goos, backendDir, manifestPath string) Script {
	if goos == "windows" {
		lines := []string{
			"@echo off",
			"title Voicebox Dependency Installer",
			"echo Installing missing Python dependencies...",
			fmt.Sprintf("echo Target: %s", manifestPath),
			fmt.Sprintf("pip install -r \"%s\"", manifestPath),
			"if %errorlevel% neq 0 (",
			"   echo.",
			"   echo Installation FAILED. Please check the error messages above.",
			"   pause",
			"   exit /b %errorlevel%",
			")",
			"echo.",
			"echo Installation successful!",
			"timeout /t 5",
			"",
		}
		return Script{
			Path:     filepath.Join(backendDir, "install_deps.bat"),
			Manifest: manifestPath,
			Contents: strings.Join(lines, "\r\n"),
		}
	}

	lines := []string{
		"#!/bin/sh",
		"echo \"Installing missing Python dependencies...\"",
		fmt.Sprintf("echo \"Target: %s\"", manifestPath),
		fmt.Sprintf("pip install -r \"%s\"", manifestPath),
		"status=$?",
		"if [ $status -ne 0 ]; then",
		"    echo",
		"    echo \"Installation FAILED. Please check the error messages above.\"",
		"    printf \"Press Enter to close...\"",
		"    read _",
		"    exit $status",
		"fi",
		"echo",
		"echo \"Installation successful!\"",
		"sleep 5",
		"",
	}
	return Script{
		Path:     filepath.Join(backendDir, "install_deps.sh"),
		Manifest: manifestPath,
		Contents: strings.Join(lines, "\n"),
	}
}

// Write persists the script to its path, executable on Unix.
func (s Script) Write() error {
	if err := os.WriteFile(s.Path, []byte(s.Contents), 0o755); err != nil {
		return fmt.Errorf("write installer script: %w", err)
	}
	return nil
}

// Remove deletes the script artifact. Best-effort by contract; the caller
// logs a failure and moves on.
func (s Script) Remove() error {
	return os.Remove(s.Path)
}
