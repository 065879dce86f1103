package version

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgenkit/sgen/internal/testutil"
)

func TestGet(t *testing.T) {
	info := Get()
	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{"SwiftGen v6.6.2 (Stencil v0.15.1, StencilSwiftKit v2.10.1, SwiftGenKit v6.6.2)", "v6.6.2", false},
		{"6.5.0", "v6.5.0", false},
		{"SwiftGen v7.0.0-beta.1", "v7.0.0-beta.1", false},
		{"no version here", "", true},
	}
	for _, tt := range tests {
		got, err := extractVersion(tt.output)
		if tt.wantErr {
			assert.Error(t, err, tt.output)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestDetectGenerator(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		path := testutil.Script(t, "swiftgen", "echo 'SwiftGen v6.6.2 (Stencil v0.15.1)'\n")

		info := DetectGenerator(context.Background(), path)
		assert.True(t, info.Found)
		assert.Equal(t, "v6.6.2", info.Version)
		assert.Contains(t, FullVersionString(Get(), info), "v6.6.2")
	})

	t.Run("missing", func(t *testing.T) {
		info := DetectGenerator(context.Background(), filepath.Join(t.TempDir(), "swiftgen"))
		assert.False(t, info.Found)
		assert.Contains(t, info.String(), "not found")
	})

	t.Run("bare name not on PATH", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		info := DetectGenerator(context.Background(), "swiftgen")
		assert.False(t, info.Found)
		assert.Equal(t, "not found in PATH", info.Message)
	})
}
