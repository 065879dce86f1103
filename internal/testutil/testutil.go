// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// envVars lists every environment variable the CLI reads.
var envVars = []string{
	"SGEN_CONFIG",
	"SGEN_GENERATOR",
	"SGEN_GENERATOR_PATH",
	"SGEN_THEME",
	"SGEN_HIGHLIGHT_THEME",
	"SGEN_HIGHLIGHT_ENABLED",
	"SGEN_LOG_TIMESTAMPS",
	"SGEN_DEFAULTS_SEED",
}

// Isolate points HOME at a fresh temporary directory and clears the CLI's
// environment variables for the duration of the test. It returns the new
// home directory.
func Isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range envVars {
		t.Setenv(name, "")
	}
	return home
}

// Script writes an executable shell script named name into a temporary
// directory and returns its path. The test is skipped on Windows.
func Script(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("failed to write script %s: %v", path, err)
	}
	return path
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
