package version

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/sgenkit/sgen/internal/generator"
)

// versionRegex matches version strings like "v6.6.2" in
// "SwiftGen v6.6.2 (Stencil v0.15.1, ...)".
var versionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// GeneratorInfo describes the generator binary installation.
type GeneratorInfo struct {
	// Path is the configured generator path, resolved through PATH when it
	// is a bare name.
	Path string `json:"path" yaml:"path"`

	// Found indicates the binary exists and is executable.
	Found bool `json:"found" yaml:"found"`

	// Version is the generator version, if it could be determined.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Message explains a missing binary or unparseable version.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// DetectGenerator checks the generator at path and asks it for its version.
func DetectGenerator(ctx context.Context, path string) GeneratorInfo {
	if path == "" {
		path = generator.DefaultPath
	}

	resolved := path
	if !strings.ContainsRune(path, os.PathSeparator) {
		p, err := exec.LookPath(path)
		if err != nil {
			return GeneratorInfo{Path: path, Message: "not found in PATH"}
		}
		resolved = p
	} else if _, err := os.Stat(path); err != nil {
		return GeneratorInfo{Path: path, Message: "not found"}
	}

	info := GeneratorInfo{Path: resolved, Found: true}

	line, err := generator.NewBinary(resolved).Version(ctx)
	if err != nil {
		info.Message = "failed to get version: " + err.Error()
		return info
	}

	v, err := extractVersion(line)
	if err != nil {
		info.Message = err.Error()
		return info
	}
	info.Version = v
	return info
}

// extractVersion extracts the first version number from output and ensures
// a "v" prefix.
func extractVersion(output string) (string, error) {
	match := versionRegex.FindString(output)
	if match == "" {
		return "", fmt.Errorf("failed to parse generator version from output: %q", output)
	}
	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}
	return match, nil
}

// String returns a human-readable generator info string.
func (g GeneratorInfo) String() string {
	if !g.Found {
		return fmt.Sprintf("  Binary Version: not found (%s)\n  Binary Path:    %s", g.Message, g.Path)
	}
	v := g.Version
	if v == "" {
		v = "unknown (" + g.Message + ")"
	}
	return fmt.Sprintf("  Binary Version: %s\n  Binary Path:    %s", v, g.Path)
}
