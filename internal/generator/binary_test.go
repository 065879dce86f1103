package generator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgenkit/sgen/internal/testutil"
)

// writeScript creates an executable shell script standing in for the generator.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	return testutil.Script(t, "fakegen", body)
}

func TestBinary_RunCapturesStdout(t *testing.T) {
	path := writeScript(t, `for a in "$@"; do echo "$a"; done
echo "ignored" >&2
`)

	out, err := NewBinary(path).Run(context.Background(), []string{"colors", "/x/Colors.txt", "--param", "enumName=A B"})
	require.NoError(t, err)
	assert.Equal(t, "colors\n/x/Colors.txt\n--param\nenumName=A B\n", string(out))
}

func TestBinary_RunIgnoresExitStatus(t *testing.T) {
	path := writeScript(t, "echo partial\nexit 3\n")

	out, err := NewBinary(path).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "partial\n", string(out))
}

func TestBinary_RunEmptyOutput(t *testing.T) {
	path := writeScript(t, "exit 0\n")

	out, err := NewBinary(path).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBinary_RunLaunchFailure(t *testing.T) {
	t.Run("missing executable", func(t *testing.T) {
		_, err := NewBinary(filepath.Join(t.TempDir(), "missing")).Run(context.Background(), nil)
		assert.ErrorIs(t, err, ErrLaunch)
	})

	t.Run("not executable", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file modes not meaningful on windows")
		}
		path := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho hi\n"), 0o644))

		_, err := NewBinary(path).Run(context.Background(), nil)
		assert.ErrorIs(t, err, ErrLaunch)
	})
}

func TestBinary_Version(t *testing.T) {
	path := writeScript(t, "echo 'SwiftGen v6.6.2 (Stencil v0.15.1)'\necho second\n")

	v, err := NewBinary(path).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SwiftGen v6.6.2 (Stencil v0.15.1)", v)
}

func TestBinary_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, (&Binary{}).path())
	assert.Equal(t, "/opt/bin/swiftgen", NewBinary("/opt/bin/swiftgen").path())
}

func TestDecode(t *testing.T) {
	s, err := Decode([]byte("enum Asset {}\n"))
	require.NoError(t, err)
	assert.Equal(t, "enum Asset {}\n", s)

	s, err = Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = Decode([]byte{0xff, 0xfe, 0x00})
	assert.ErrorIs(t, err, ErrDecode)
}
