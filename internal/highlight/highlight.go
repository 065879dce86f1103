// Package highlight renders generated source as ANSI-styled text.
package highlight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/sgenkit/sgen/internal/output"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "monokai"

// Renderer turns raw source into a styled representation. Implementations
// never fail; the worst case is the unstyled input.
type Renderer interface {
	Render(source string) string
}

// Plain returns source unchanged.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(source string) string {
	return source
}

// Chroma highlights Swift source with a chroma style and terminal formatter.
type Chroma struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// New returns a Chroma renderer for the named theme. Empty selects
// DefaultTheme.
func New(theme string) (*Chroma, error) {
	if theme == "" {
		theme = DefaultTheme
	}
	style, ok := styles.Registry[strings.ToLower(theme)]
	if !ok {
		return nil, fmt.Errorf("unknown highlight theme %q", theme)
	}

	lexer := lexers.Get("swift")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &Chroma{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: formatter,
	}, nil
}

// Render implements Renderer.
func (c *Chroma) Render(source string) string {
	if source == "" {
		return ""
	}

	it, err := c.lexer.Tokenise(nil, source)
	if err != nil {
		output.Debug("highlight tokenise failed", "error", err)
		return source
	}

	var sb strings.Builder
	if err := c.formatter.Format(&sb, c.style, it); err != nil {
		output.Debug("highlight format failed", "error", err)
		return source
	}
	return sb.String()
}

// Themes returns the names of all available themes, sorted.
func Themes() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsTheme reports whether name is an available theme.
func IsTheme(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// ForTerminal picks a renderer for stdout: Chroma when enabled and stdout
// is a terminal, Plain otherwise. An unknown theme falls back to
// DefaultTheme with a warning.
func ForTerminal(theme string, enabled bool) Renderer {
	if !enabled || !output.IsTTY() {
		return Plain{}
	}
	r, err := New(theme)
	if err != nil {
		output.Warn("falling back to default highlight theme", "theme", theme, "error", err)
		r, _ = New(DefaultTheme)
	}
	return r
}
