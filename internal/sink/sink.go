// Package sink delivers generated code: to a file through a generator
// re-invocation, or to the clipboard.
package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgenkit/sgen/internal/command"
	"github.com/sgenkit/sgen/internal/output"
	"github.com/sgenkit/sgen/internal/pipeline"
)

var _ pipeline.Clipboard = (*Sink)(nil)

// Saver re-invokes the generator with an output path.
type Saver interface {
	GenerateAndSave(ctx context.Context, cmd *command.Command, path string) error
}

// Sink writes generated code to files and the clipboard.
type Sink struct {
	saver     Saver
	clipboard pipeline.Clipboard
}

// New creates a Sink. A nil clipboard selects SystemClipboard.
func New(saver Saver, clip pipeline.Clipboard) *Sink {
	if clip == nil {
		clip = SystemClipboard{}
	}
	return &Sink{saver: saver, clipboard: clip}
}

// WriteToFile has the generator write cmd's output to path. The cached
// Result is not written locally; the generator owns the file. When path
// names a directory the command's default file name is used inside it.
// It returns the path handed to the generator.
func (s *Sink) WriteToFile(ctx context.Context, cmd *command.Command, path string) (string, error) {
	target, err := ResolvePath(path, cmd.DefaultFileName())
	if err != nil {
		return "", err
	}
	if err := s.saver.GenerateAndSave(ctx, cmd, target); err != nil {
		return target, fmt.Errorf("saving to %s: %w", target, err)
	}
	output.Debug("generator asked to write file", "path", target)
	return target, nil
}

// CopyToClipboard replaces the clipboard content with text.
func (s *Sink) CopyToClipboard(text string) error {
	if err := s.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// WriteAll implements pipeline.Clipboard so the pipeline's copy operation
// goes through the sink.
func (s *Sink) WriteAll(text string) error {
	return s.CopyToClipboard(text)
}

// ResolvePath expands a leading ~ and makes path absolute. An existing
// directory, or a path ending in a separator, gets defaultName appended.
func ResolvePath(path, defaultName string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("output path is empty")
	}

	trailing := strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator))

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding ~: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	if trailing {
		return filepath.Join(abs, defaultName), nil
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return filepath.Join(abs, defaultName), nil
	}
	return abs, nil
}
