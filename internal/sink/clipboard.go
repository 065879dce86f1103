package sink

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no system clipboard utility is
// available (for example a headless Linux session without xclip or xsel).
var ErrClipboardUnsupported = errors.New("system clipboard is not available")

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll replaces the clipboard content with text.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// ReadAll returns the clipboard content.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

// MemoryClipboard is an in-process clipboard.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// WriteAll replaces the stored text.
func (m *MemoryClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// ReadAll returns the stored text.
func (m *MemoryClipboard) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
