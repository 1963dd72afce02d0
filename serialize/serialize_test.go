package serialize_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caryan/paranormal/params"
	"github.com/caryan/paranormal/schema"
	"github.com/caryan/paranormal/serialize"
)

var letters = params.MustEnum("Letters", "X", "Y", "Z")

var pdef = schema.MustDefine("serializetest", "P",
	schema.Param(params.Bool("b", params.Default(true))),
	schema.Param(params.Int("i", params.Default(1))),
	schema.Param(params.Float("f", params.Default(0.5))),
	schema.Param(params.Int("r", params.Required())),
	schema.Param(params.EnumOf("e", letters, params.Default("X"))),
	schema.Param(params.ListOf("l", params.KindInt, params.Default([]int{0, 1, 2}))),
	schema.Param(params.Arange("a", params.Default(params.Triple(0, 100, 5)))),
)

var inner = schema.MustDefine("serializetest", "Inner",
	schema.Param(params.Float("gain", params.Default(0.5))),
	schema.Param(params.String("tag", params.Default("base"))),
)

var outer = schema.MustDefine("serializetest", "Outer",
	schema.Param(params.Int("id", params.Required())),
	schema.Nested("inner", inner.MustNew(nil)),
)

var shy = schema.MustDefine("serializetest", "Shy",
	schema.Param(params.Int("seen", params.Default(1))),
	schema.Param(params.Int("secret", params.Default(2), params.Hidden())),
)

func TestToJSON_SkipDefaults(t *testing.T) {
	t.Parallel()

	in := pdef.MustNew(schema.Values{"r": 5})

	data, err := serialize.ToJSON(in, serialize.SkipDefaults())
	require.NoError(t, err)
	assert.Equal(t, `{"r":5,"_type":"P","_module":"serializetest"}`, string(data))
}

func TestToJSON_IncludeDefaults(t *testing.T) {
	t.Parallel()

	in := pdef.MustNew(schema.Values{"r": 5})

	data, err := serialize.ToJSON(in)
	require.NoError(t, err)
	assert.Equal(t,
		`{"b":true,"i":1,"f":0.5,"r":5,"e":"X","l":[0,1,2],"a":[0,100,5],"_type":"P","_module":"serializetest"}`,
		string(data))
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	in := pdef.MustNew(schema.Values{"r": 3, "e": "Z"})

	data, err := serialize.ToJSON(in)
	require.NoError(t, err)

	back, err := serialize.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))

	data, err = serialize.ToJSON(in, serialize.SkipDefaults())
	require.NoError(t, err)

	back, err = serialize.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))
	assert.Equal(t, letters.MustMember("Z"), back.MustValue("e"))
}

func TestDecodeJSON_KeyOrder(t *testing.T) {
	t.Parallel()

	m, err := serialize.DecodeJSON([]byte(`{"r":5,"_type":"P","_module":"serializetest"}`))
	require.NoError(t, err)

	var keys []string
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"r", "_type", "_module"}, keys)

	v, ok := m.Get("r")
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestFromMap_Errors(t *testing.T) {
	t.Parallel()

	m, err := serialize.DecodeJSON([]byte(`{"r":5}`))
	require.NoError(t, err)

	_, err = serialize.FromMap(m)
	require.ErrorIs(t, err, serialize.ErrUnrecognizedFormat)

	m, err = serialize.DecodeJSON([]byte(`{"_type":"Ghost","_module":"serializetest"}`))
	require.NoError(t, err)

	_, err = serialize.FromMap(m)
	var unknown *serialize.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Ghost", unknown.Name)
}

func TestFromMap_Registry(t *testing.T) {
	t.Parallel()

	data := []byte(`{"r":7,"_type":"P","_module":"serializetest"}`)

	reg := schema.NewRegistry()
	_, err := serialize.FromJSON(data, serialize.Registry(reg))
	var unknown *serialize.UnknownTypeError
	require.ErrorAs(t, err, &unknown)

	require.NoError(t, reg.Add(pdef))

	in, err := serialize.FromJSON(data, serialize.Registry(reg))
	require.NoError(t, err)
	assert.Equal(t, 7, in.MustValue("r"))
}

func TestToYAML_DeclarationOrder(t *testing.T) {
	t.Parallel()

	in := pdef.MustNew(schema.Values{"r": 10})

	data, err := serialize.ToYAML(in)
	require.NoError(t, err)

	want := strings.Join([]string{
		"b: true",
		"i: 1",
		"f: 0.5",
		"r: 10",
		"e: X",
		"l:",
		"  - 0",
		"  - 1",
		"  - 2",
		"a:",
		"  - 0.0",
		"  - 100.0",
		"  - 5.0",
		"_type: P",
		"_module: serializetest",
		"",
	}, "\n")
	assert.Equal(t, want, string(data))
}

func TestToYAML_SortKeys(t *testing.T) {
	t.Parallel()

	in := pdef.MustNew(schema.Values{"r": 10})

	data, err := serialize.ToYAML(in, serialize.SortKeys())
	require.NoError(t, err)

	var keys []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "-") {
			continue
		}

		keys = append(keys, strings.SplitN(line, ":", 2)[0])
	}
	assert.Equal(t, []string{"_module", "_type", "a", "b", "e", "f", "i", "l", "r"}, keys)
}

func TestYAML_FileRoundTrip(t *testing.T) {
	t.Parallel()

	in := pdef.MustNew(schema.Values{"r": 10, "l": []int{4, 5}})
	path := filepath.Join(t.TempDir(), "p.yaml")

	require.NoError(t, serialize.WriteYAMLFile(in, path, serialize.SkipDefaults()))

	back, err := serialize.ReadYAMLFile(path)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))
	assert.Equal(t, []int{4, 5}, back.MustValue("l"))
}

func TestJSON_FileRoundTrip(t *testing.T) {
	t.Parallel()

	in := pdef.MustNew(schema.Values{"r": 10, "b": false})
	path := filepath.Join(t.TempDir(), "p.json")

	require.NoError(t, serialize.WriteJSONFile(in, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("}\n")))

	back, err := serialize.ReadJSONFile(path)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))
	assert.Equal(t, false, back.MustValue("b"))
}

func TestNested_RoundTrip(t *testing.T) {
	t.Parallel()

	tuned := inner.MustNew(schema.Values{"gain": 0.9})
	in := outer.MustNew(schema.Values{"id": 1, "inner": tuned})

	m := serialize.ToMap(in)
	sub, ok := m.Get("inner")
	require.True(t, ok)

	subMap, ok := sub.(*serialize.Map)
	require.True(t, ok)
	typ, _ := subMap.Get("_type")
	assert.Equal(t, "Inner", typ)

	data, err := serialize.ToJSON(in)
	require.NoError(t, err)

	back, err := serialize.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))

	nested := back.MustValue("inner").(*schema.Instance)
	assert.Equal(t, 0.9, nested.MustValue("gain"))
}

func TestNested_SkipDefaultsOmitsUntouched(t *testing.T) {
	t.Parallel()

	in := outer.MustNew(schema.Values{"id": 1})

	data, err := serialize.ToJSON(in, serialize.SkipDefaults())
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"_type":"Outer","_module":"serializetest"}`, string(data))

	back, err := serialize.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))
}

func TestHiddenParams(t *testing.T) {
	t.Parallel()

	in := shy.MustNew(nil)

	data, err := serialize.ToJSON(in)
	require.NoError(t, err)
	assert.Equal(t, `{"seen":1,"_type":"Shy","_module":"serializetest"}`, string(data))

	data, err = serialize.ToJSON(in, serialize.IncludeHidden())
	require.NoError(t, err)
	assert.Equal(t, `{"seen":1,"secret":2,"_type":"Shy","_module":"serializetest"}`, string(data))
}

func TestExplicitNil_Survives(t *testing.T) {
	t.Parallel()

	in := pdef.MustNew(schema.Values{"r": 5, "f": nil})

	data, err := serialize.ToJSON(in, serialize.SkipDefaults())
	require.NoError(t, err)
	assert.Equal(t, `{"f":null,"r":5,"_type":"P","_module":"serializetest"}`, string(data))

	back, err := serialize.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, back.IsSet("f"))
	assert.Nil(t, back.MustValue("f"))
}

func TestPartialRange_NullSlots(t *testing.T) {
	t.Parallel()

	d := schema.MustDefine("serializetest", "Sweepy",
		schema.Param(params.Linspace("dpw", params.Default(params.Range{params.Num(0), nil, params.Num(15)}))),
	)

	in := d.MustNew(nil)

	data, err := serialize.ToJSON(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"dpw":[0,null,15]`)

	back, err := serialize.FromJSON(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(back))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	s := serialize.Describe(pdef)
	assert.Equal(t, "object", s.Type)
	assert.Contains(t, s.Required, "r")
	assert.Contains(t, s.Required, "_type")
	assert.Contains(t, s.Required, "_module")

	e, ok := s.Properties.Get("e")
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"X", "Y", "Z"}, e.Enum)

	a, ok := s.Properties.Get("a")
	require.True(t, ok)
	assert.Equal(t, "array", a.Type)
	require.NotNil(t, a.MinItems)
	assert.EqualValues(t, 3, *a.MinItems)

	typ, ok := s.Properties.Get("_type")
	require.True(t, ok)
	assert.Equal(t, "P", typ.Const)

	o := serialize.Describe(outer)
	nested, ok := o.Properties.Get("inner")
	require.True(t, ok)
	assert.Equal(t, "object", nested.Type)
}
