package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateScriptWindows(t *testing.T) {
	s := generateScript("windows", `C:\app\backend`, `C:\app\backend\requirements_install.txt`)

	if filepath.Base(s.Path) != "install_deps.bat" {
		t.Fatalf("expected batch script, got %s", s.Path)
	}
	for _, want := range []string{
		"@echo off",
		"echo Target: C:\\app\\backend\\requirements_install.txt",
		`pip install -r "C:\app\backend\requirements_install.txt"`,
		"pause",
		"timeout /t 5",
	} {
		if !strings.Contains(s.Contents, want) {
			t.Fatalf("expected script to contain %q:\n%s", want, s.Contents)
		}
	}
	if !strings.Contains(s.Contents, "\r\n") {
		t.Fatal("expected CRLF line endings in batch script")
	}
}

func TestGenerateScriptUnix(t *testing.T) {
	s := generateScript("linux", "/opt/app/backend", "/opt/app/backend/requirements_install.txt")

	if filepath.Base(s.Path) != "install_deps.sh" {
		t.Fatalf("expected shell script, got %s", s.Path)
	}
	for _, want := range []string{
		"#!/bin/sh",
		`pip install -r "/opt/app/backend/requirements_install.txt"`,
		"Installation FAILED",
		"read _",
		"sleep 5",
	} {
		if !strings.Contains(s.Contents, want) {
			t.Fatalf("expected script to contain %q:\n%s", want, s.Contents)
		}
	}
}

func TestScriptWriteAndRemove(t *testing.T) {
	dir := t.TempDir()
	s := generateScript("linux", dir, filepath.Join(dir, "requirements.txt"))

	if err := s.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}
	info, err := os.Stat(s.Path)
	if err != nil {
		t.Fatalf("stat script: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Fatal("expected script to be executable")
	}

	if err := s.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(s.Path); !os.IsNotExist(err) {
		t.Fatalf("expected script deleted, stat err %v", err)
	}
}
