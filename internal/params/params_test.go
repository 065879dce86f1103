package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_FixedOrder(t *testing.T) {
	assert.Equal(t, []Kind{
		EnumName, ColorAliasName, ImageAliasName, ColorTypeName,
		ImageTypeName, SceneEnumName, SegueEnumName,
	}, StringKinds())

	assert.Equal(t, []Kind{
		PreservePath, Module, IgnoreTargetModule, PublicAccess, NoAllValues, NoComments,
	}, BoolKinds())

	assert.Len(t, All(), len(catalog), "every catalog entry is in exactly one list")
}

func TestCatalog_ListsAgreeWithSpecs(t *testing.T) {
	for _, k := range StringKinds() {
		assert.False(t, MustLookup(k).IsBool, "%s should be string-valued", k)
	}
	for _, k := range BoolKinds() {
		spec := MustLookup(k)
		assert.True(t, spec.IsBool, "%s should be boolean-valued", k)
		assert.False(t, spec.HasDefault(), "%s should not carry a text default", k)
	}
}

func TestCatalog_Defaults(t *testing.T) {
	tests := []struct {
		kind  Kind
		want  string
		label string
	}{
		{EnumName, "", "Enum class name"},
		{ColorAliasName, "Color", "Color alias name"},
		{ImageAliasName, "Image", "Image alias name"},
		{ColorTypeName, "ColorAsset", "Color type name"},
		{ImageTypeName, "ImageAsset", "Image type name"},
		{SceneEnumName, "StoryboardScene", "Scene enum name"},
		{SegueEnumName, "StoryboardSegue", "Segue enum name"},
		{PublicAccess, "", "Public access"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			spec := MustLookup(tt.kind)
			assert.Equal(t, tt.want, spec.Default)
			assert.Equal(t, tt.label, tt.kind.Label())
		})
	}
}

func TestParse(t *testing.T) {
	k, err := Parse("publicaccess")
	require.NoError(t, err)
	assert.Equal(t, PublicAccess, k)

	_, err = Parse("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumName")
}

func TestValueSet_SetRejectsWrongType(t *testing.T) {
	s := ValueSet{}
	assert.Error(t, s.SetBool(EnumName, true))
	assert.Error(t, s.SetString(PublicAccess, "yes"))
	assert.Error(t, s.SetString(Kind("nope"), "x"))
	assert.Empty(t, s)

	require.NoError(t, s.SetString(EnumName, "Asset"))
	require.NoError(t, s.SetBool(PublicAccess, true))
	assert.Len(t, s, 2)
}

func TestValueSet_Overlay(t *testing.T) {
	base := ValueSet{EnumName: String("A"), PublicAccess: Bool(false)}
	top := ValueSet{PublicAccess: Bool(true)}

	merged := base.Overlay(top)

	assert.Equal(t, String("A"), merged[EnumName])
	assert.Equal(t, Bool(true), merged[PublicAccess])
	assert.Equal(t, Bool(false), base[PublicAccess], "overlay must not mutate the receiver")
}

func TestSeed(t *testing.T) {
	got := Seed("ColorName", []Kind{EnumName, ColorAliasName, PublicAccess})

	assert.Equal(t, ValueSet{
		EnumName:       String("ColorName"),
		ColorAliasName: String("Color"),
		PublicAccess:   Bool(false),
	}, got)
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		kind    Kind
		value   Value
		wantErr bool
	}{
		{name: "string value", arg: "enumName=Palette", kind: EnumName, value: String("Palette")},
		{name: "empty string value", arg: "enumName=", kind: EnumName, value: String("")},
		{name: "value containing equals", arg: "colorAliasName=a=b", kind: ColorAliasName, value: String("a=b")},
		{name: "bare bool", arg: "publicAccess", kind: PublicAccess, value: Bool(true)},
		{name: "explicit false", arg: "publicAccess=false", kind: PublicAccess, value: Bool(false)},
		{name: "bare string key", arg: "enumName", wantErr: true},
		{name: "bad bool", arg: "noComments=maybe", wantErr: true},
		{name: "unknown key", arg: "colour=red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, v, err := ParseAssignment(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, k)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestParseAssignments_LastWins(t *testing.T) {
	got, err := ParseAssignments([]string{"enumName=A", "enumName=B", "module"})
	require.NoError(t, err)
	assert.Equal(t, ValueSet{EnumName: String("B"), Module: Bool(true)}, got)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "values.yaml")
		require.NoError(t, os.WriteFile(path, []byte("enumName: Palette\npublicAccess: true\nsegueEnumName:\n"), 0o600))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, ValueSet{EnumName: String("Palette"), PublicAccess: Bool(true)}, got)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "values.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"colorAliasName": "Tint", "noComments": false}`), 0o600))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, ValueSet{ColorAliasName: String("Tint"), NoComments: Bool(false)}, got)
	})

	t.Run("type mismatch", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("publicAccess: \"yes\"\n"), 0o600))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("number", func(t *testing.T) {
		path := filepath.Join(dir, "num.yaml")
		require.NoError(t, os.WriteFile(path, []byte("enumName: 3\n"), 0o600))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}
