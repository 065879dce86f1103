package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIsValid(t *testing.T) {
	tests := []struct {
		format Format
		valid  bool
	}{
		{FormatYAML, true},
		{FormatJSON, true},
		{FormatTable, true},
		{Format("dir"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"TABLE", FormatTable, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"JSON", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteStructured(t *testing.T) {
	type row struct {
		Name    string `json:"name" yaml:"name"`
		Default bool   `json:"default" yaml:"default"`
	}
	v := []row{{Name: "swift4", Default: true}}

	var buf bytes.Buffer
	require.NoError(t, WriteStructured(&buf, FormatJSON, v))
	assert.JSONEq(t, `[{"name":"swift4","default":true}]`, buf.String())

	buf.Reset()
	require.NoError(t, WriteStructured(&buf, FormatYAML, v))
	assert.Equal(t, "- name: swift4\n  default: true\n", buf.String())

	assert.Error(t, WriteStructured(&buf, FormatTable, v))
}
