// Package generator wraps the external code generator binary.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sgenkit/sgen/internal/output"
)

// DefaultPath is where the generator is installed by Homebrew on Intel Macs.
const DefaultPath = "/usr/local/bin/swiftgen"

var (
	// ErrLaunch is returned when the generator process cannot be started.
	ErrLaunch = errors.New("generator could not be launched")

	// ErrDecode is returned when generator output is not UTF-8 text.
	ErrDecode = errors.New("generator output is not valid UTF-8")
)

// Runner runs the generator with an argument vector and returns everything
// it wrote to standard output.
type Runner interface {
	Run(ctx context.Context, args []string) ([]byte, error)
}

// Binary runs the generator as a child process.
type Binary struct {
	// Path is the generator executable. If empty, DefaultPath is used.
	Path string
}

// NewBinary creates a Binary for the executable at path.
func NewBinary(path string) *Binary {
	return &Binary{Path: path}
}

// Run starts the generator and drains its standard output. The exit status
// is not inspected: a process that started and exited non-zero still
// returns its output with a nil error. Only a failure to start the process
// is an error, wrapping ErrLaunch.
func (b *Binary) Run(ctx context.Context, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, b.path(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, b.path(), err)
		}
		output.Debug("generator exited non-zero",
			"code", exitErr.ExitCode(),
			"stderr", strings.TrimSpace(stderr.String()),
		)
	} else if stderr.Len() > 0 {
		output.Debug("generator stderr", "stderr", strings.TrimSpace(stderr.String()))
	}

	output.Debug("generator finished",
		"path", b.path(),
		"args", strings.Join(args, " "),
		"bytes", stdout.Len(),
		"duration", elapsed.Round(time.Millisecond),
	)

	return stdout.Bytes(), nil
}

// Version runs "<path> --version" and returns the trimmed first line.
func (b *Binary) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, b.path(), "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", b.path(), err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line), nil
}

func (b *Binary) path() string {
	if b.Path != "" {
		return b.Path
	}
	return DefaultPath
}

// Decode converts generator output to text, rejecting invalid UTF-8.
func Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecode
	}
	return string(data), nil
}
