package paranormal_test

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caryan/paranormal"
	"github.com/caryan/paranormal/argspec"
	"github.com/caryan/paranormal/params"
	"github.com/caryan/paranormal/schema"
	"github.com/caryan/paranormal/serialize"
)

var colors = params.MustEnum("SeasonColors", "RED", "BLUE", "GREEN")

var summer = schema.MustDefine("paranormaltest", "Summer",
	schema.Param(params.Linspace("dpw_s", params.Expand(), params.Prefix("s_"),
		params.Default(params.Range{params.Num(0), nil, params.Num(15)}))),
	schema.Param(params.EnumOf("c", colors, params.Default("BLUE"))),
	schema.Param(params.Float("t", params.Default(60), params.Unit("ns"))),
	schema.Param(params.Float("fr", params.Unit("MHz"))),
	schema.Param(params.Bool("do_something_crazy", params.Default(false))),
)

var winter = schema.MustDefine("paranormaltest", "Winter",
	schema.Param(params.Float("s", params.Default(12.0))),
	schema.Param(params.Bool("hib", params.Default(false))),
	schema.Param(params.Linspace("dpw_w", params.Expand(), params.Prefix("w_"),
		params.Default(params.Range{params.Num(0), nil, params.Num(15)}))),
)

func TestParseArgs_MergedDefinitions(t *testing.T) {
	list, err := paranormal.ParseArgs(
		[]string{"--s_stop", "30", "--hib", "--mystery=7"},
		summer, winter)
	require.NoError(t, err)
	require.Len(t, list, 2)

	su, wi := list[0], list[1]

	pts := su.MustValue("dpw_s").([]float64)
	require.Len(t, pts, 15)
	assert.InDelta(t, 0.0, pts[0], 1e-9)
	assert.InDelta(t, 30.0, pts[len(pts)-1], 1e-9)

	assert.Equal(t, true, wi.MustValue("hib"))
	assert.Equal(t, 12.0, wi.MustValue("s"))

	spew.Dump(su.Items())
}

func TestParseArgsStrict_RejectsUnknown(t *testing.T) {
	_, err := paranormal.ParseArgsStrict([]string{"--mystery=7"}, summer)
	require.Error(t, err)

	_, err = paranormal.ParseArgsStrict([]string{"--t", "90"}, summer)
	require.NoError(t, err)
}

func TestParseOne(t *testing.T) {
	in, err := paranormal.ParseOne([]string{"--c", "GREEN", "--fr", "360"}, summer)
	require.NoError(t, err)

	assert.Equal(t, colors.MustMember("GREEN"), in.MustValue("c"))
	assert.Equal(t, 360.0, in.MustValue("fr"))
	assert.Equal(t, 60.0, in.MustValue("t"))
}

func TestFromParsed(t *testing.T) {
	ns := argspec.NewNamespace(map[string]any{"s": 15.5, "hib": true})

	list, err := paranormal.FromParsed(ns, winter)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, 15.5, list[0].MustValue("s"))
	assert.Equal(t, true, list[0].MustValue("hib"))
}

func TestFacade_SerializationRoundTrip(t *testing.T) {
	in, err := paranormal.ParseOne([]string{"--s_stop", "30", "--do_something_crazy"}, summer)
	require.NoError(t, err)

	data, err := paranormal.ToJSON(in)
	require.NoError(t, err)

	back, err := paranormal.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))

	path := filepath.Join(t.TempDir(), "summer.yaml")
	require.NoError(t, paranormal.WriteYAMLFile(in, path, serialize.SkipDefaults()))

	back, err = paranormal.ReadYAMLFile(path)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))
	assert.Equal(t, true, back.MustValue("do_something_crazy"))
}
