package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgenkit/sgen/internal/kinds"
	"github.com/sgenkit/sgen/internal/params"
	"github.com/sgenkit/sgen/internal/templates"
)

func mustTemplate(t *testing.T, k kinds.Kind, name string) templates.Template {
	t.Helper()
	tmpl, err := templates.Get(k, name)
	require.NoError(t, err)
	return tmpl
}

func TestBuildArguments_Examples(t *testing.T) {
	t.Run("colors swift4", func(t *testing.T) {
		values := params.ValueSet{
			params.EnumName:       params.String(""),
			params.ColorAliasName: params.String("Palette"),
			params.PublicAccess:   params.Bool(true),
		}

		got := BuildArguments(kinds.Colors, mustTemplate(t, kinds.Colors, "swift4"), "/x/Colors.txt", values)

		assert.Equal(t, []string{
			"colors", "/x/Colors.txt", "--templateName", "swift4",
			"--param", "enumName=ColorName",
			"--param", "colorAliasName=Palette",
			"--param", "publicAccess",
		}, got)
	})

	t.Run("strings without values", func(t *testing.T) {
		got := BuildArguments(kinds.Strings, mustTemplate(t, kinds.Strings, "flat-swift3"), "/p/Localizable.strings", params.ValueSet{})

		assert.Equal(t, []string{"strings", "/p/Localizable.strings", "--templateName", "flat-swift3"}, got)
	})
}

func TestBuildArguments_DeclaredOrderNotInsertionOrder(t *testing.T) {
	values := params.ValueSet{}
	require.NoError(t, values.SetBool(params.PublicAccess, true))
	require.NoError(t, values.SetBool(params.NoAllValues, true))
	require.NoError(t, values.SetString(params.ImageTypeName, "Img"))
	require.NoError(t, values.SetString(params.EnumName, "Asset"))
	require.NoError(t, values.SetString(params.ColorAliasName, "Tint"))

	got := ParamArguments(kinds.Assets, mustTemplate(t, kinds.Assets, "swift3"), values)

	assert.Equal(t, []string{
		"--param", "enumName=Asset",
		"--param", "colorAliasName=Tint",
		"--param", "imageTypeName=Img",
		"--param", "noAllValues",
		"--param", "publicAccess",
	}, got)
}

func TestBuildArguments_IgnoresUndeclared(t *testing.T) {
	// colorAliasName is stale from a swift4 selection
	values := params.ValueSet{
		params.EnumName:       params.String("Colors"),
		params.ColorAliasName: params.String("Palette"),
		params.NoComments:     params.Bool(true),
	}

	got := ParamArguments(kinds.Colors, mustTemplate(t, kinds.Colors, "literals-swift4"), values)

	assert.Equal(t, []string{"--param", "enumName=Colors"}, got)
}

func TestBuildArguments_AllTemplatesRespectDeclarations(t *testing.T) {
	// Every parameter set, every string non-empty and every bool true.
	full := params.ValueSet{}
	for _, k := range params.StringKinds() {
		require.NoError(t, full.SetString(k, "V"+string(k)))
	}
	for _, k := range params.BoolKinds() {
		require.NoError(t, full.SetBool(k, true))
	}

	for _, k := range kinds.All() {
		for _, tmpl := range templates.List(k) {
			t.Run(k.Token()+"/"+tmpl.Name, func(t *testing.T) {
				got := ParamArguments(k, tmpl, full)

				var want []string
				for _, p := range tmpl.Params {
					if p.IsBool() {
						want = append(want, "--param", string(p))
					} else {
						want = append(want, "--param", string(p)+"=V"+string(p))
					}
				}
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestParamArgument_StringRules(t *testing.T) {
	tests := []struct {
		name  string
		kind  kinds.Kind
		param params.Kind
		value params.Value
		want  string
		ok    bool
	}{
		{"enumName empty uses kind default", kinds.Fonts, params.EnumName, params.String(""), "enumName=FontFamily", true},
		{"enumName whitespace uses kind default", kinds.JSON, params.EnumName, params.String("  "), "enumName=JSONFiles", true},
		{"enumName kept verbatim", kinds.JSON, params.EnumName, params.String(" Files"), "enumName= Files", true},
		{"enumName empty without kind default", kinds.InterfaceBuilder, params.EnumName, params.String(""), "", false},
		{"other string empty omitted", kinds.Assets, params.ColorAliasName, params.String(""), "", false},
		{"other string whitespace omitted", kinds.Assets, params.ImageAliasName, params.String("\t"), "", false},
		{"bool true", kinds.Fonts, params.PreservePath, params.Bool(true), "preservePath", true},
		{"bool false", kinds.Fonts, params.PreservePath, params.Bool(false), "", false},
		{"mistyped value omitted", kinds.Fonts, params.PreservePath, params.String("true"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := paramArgument(tt.kind, tt.param, tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithOutput(t *testing.T) {
	args := []string{"fonts", "/f", "--templateName", "swift4"}
	got := WithOutput(args, "/out/Fonts.swift")

	assert.Equal(t, []string{"fonts", "/f", "--templateName", "swift4", "--output", "/out/Fonts.swift"}, got)
	assert.Len(t, args, 4, "input slice must not change")
}

func TestNew(t *testing.T) {
	cmd, err := New(kinds.Colors, "/x/Colors.txt", "", nil)
	require.NoError(t, err)

	assert.Equal(t, kinds.Colors, cmd.Kind())
	assert.Equal(t, "literals-swift4", cmd.Template().Name)
	assert.Equal(t, Ready, cmd.State())
	assert.NotEqual(t, cmd.ID().String(), "")

	_, err = New(kinds.Colors, "/x/Colors.txt", "scenes-swift4", nil)
	assert.Error(t, err)

	_, err = New(kinds.Kind(99), "/x", "", nil)
	assert.Error(t, err)
}

func TestNew_CopiesValues(t *testing.T) {
	values := params.ValueSet{params.EnumName: params.String("A")}
	cmd, err := New(kinds.JSON, "/j.json", "", values)
	require.NoError(t, err)

	values[params.EnumName] = params.String("B")

	assert.Equal(t, params.String("A"), cmd.Values()[params.EnumName])
}

func TestCommand_StateTransitions(t *testing.T) {
	cmd, err := New(kinds.YAML, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, Unconfigured, cmd.State())

	_, err = cmd.Arguments()
	assert.ErrorIs(t, err, ErrUnconfigured)

	cmd.SetInput("/a.yml")
	assert.Equal(t, Ready, cmd.State())

	res := &Result{Code: "enum YAMLFiles {}"}
	assert.True(t, cmd.Store("/a.yml", res))
	assert.Equal(t, Cached, cmd.State())

	cached, ok := cmd.Cached()
	require.True(t, ok)
	assert.Same(t, res, cached)

	cmd.SetInput("/b.yml")
	assert.Equal(t, Ready, cmd.State())
	_, ok = cmd.Cached()
	assert.False(t, ok)
}

func TestCommand_StoreDropsStaleInput(t *testing.T) {
	cmd, err := New(kinds.YAML, "/b.yml", "", nil)
	require.NoError(t, err)

	assert.False(t, cmd.Store("/a.yml", &Result{Code: "old"}))
	assert.False(t, cmd.Store("/b.yml", nil))
	assert.Equal(t, Ready, cmd.State())
}

func TestCommand_Arguments(t *testing.T) {
	cmd, err := New(kinds.InterfaceBuilder, "/ui/Main.storyboard", "segues-swift4", params.ValueSet{
		params.SegueEnumName: params.String("Segues"),
		params.Module:        params.Bool(true),
		params.EnumName:      params.String("Ignored"),
	})
	require.NoError(t, err)

	got, err := cmd.Arguments()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ib", "/ui/Main.storyboard", "--templateName", "segues-swift4",
		"--param", "segueEnumName=Segues",
		"--param", "module",
	}, got)
}

func TestDefaultFileName(t *testing.T) {
	assert.Equal(t, "Generated-Assets.swift", DefaultFileName(kinds.Assets))
	assert.Equal(t, "Generated-InterfaceBuilder.swift", DefaultFileName(kinds.InterfaceBuilder))
}

func TestResult_IsEmpty(t *testing.T) {
	var nilResult *Result
	assert.True(t, nilResult.IsEmpty())
	assert.True(t, EmptyResult().IsEmpty())
	assert.False(t, (&Result{Code: "x"}).IsEmpty())
}
