package serialize

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/caryan/paranormal/schema"
)

// ToYAML encodes an instance as a YAML document, keys in mapping order.
// Unset values are written as explicit nulls so a round-trip keeps them
// distinct from absent keys.
func ToYAML(in *schema.Instance, opts ...Option) ([]byte, error) {
	return EncodeYAML(ToMap(in, opts...))
}

// EncodeYAML renders an ordered mapping as a YAML document.
func EncodeYAML(m *Map) ([]byte, error) {
	node, err := yamlNode(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FromYAML decodes a YAML document and rebuilds the instance it names.
func FromYAML(data []byte, opts ...Option) (*schema.Instance, error) {
	m, err := DecodeYAML(data)
	if err != nil {
		return nil, err
	}

	return FromMap(m, opts...)
}

// WriteYAMLFile serializes an instance into a YAML file at path.
func WriteYAMLFile(in *schema.Instance, path string, opts ...Option) error {
	data, err := ToYAML(in, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// ReadYAMLFile reads a YAML file and rebuilds the instance it names.
func ReadYAMLFile(path string, opts ...Option) (*schema.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return FromYAML(data, opts...)
}

func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	default:
		return nil, fmt.Errorf("cannot encode %T into yaml", v)
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(t)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(t)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	case []int:
		return yamlSeq(widen(t))
	case []float64:
		return yamlSeq(widen(t))
	case []string:
		return yamlSeq(widen(t))
	case []bool:
		return yamlSeq(widen(t))
	case []any:
		return yamlSeq(t)
	case *Map:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for p := t.Oldest(); p != nil; p = p.Next() {
			vn, err := yamlNode(p.Value)
			if err != nil {
				return nil, err
			}

			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key}, vn)
		}
		return n, nil
	}
}

func yamlSeq(items []any) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		in, err := yamlNode(item)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, in)
	}
	return n, nil
}

func widen[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// formatFloat keeps the scalar text float shaped, an integral value
// would otherwise read back as an int.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// DecodeYAML parses a YAML document into an ordered mapping, keys kept
// in document order.
func DecodeYAML(data []byte) (*Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("empty yaml document")
		}

		root = root.Content[0]
	}

	v, err := fromNode(root)
	if err != nil {
		return nil, err
	}

	m, ok := v.(*Map)
	if !ok {
		return nil, fmt.Errorf("yaml document is not a mapping")
	}

	return m, nil
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %v on line %d", n.Kind, n.Line)
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		return scalarValue(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		m := orderedmap.New[string, any]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			m.Set(n.Content[i].Value, v)
		}
		return m, nil
	}
}

func scalarValue(n *yaml.Node) (any, error) {
	switch n.Tag {
	default:
		return n.Value, nil
	case "!!null":
		return nil, nil
	case "!!bool":
		return strconv.ParseBool(n.Value)
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("bad yaml int on line %d: %w", n.Line, err)
		}

		return int(i), nil
	case "!!float":
		switch n.Value {
		case ".inf", "+.inf":
			return math.Inf(1), nil
		case "-.inf":
			return math.Inf(-1), nil
		case ".nan":
			return math.NaN(), nil
		}

		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("bad yaml float on line %d: %w", n.Line, err)
		}

		return f, nil
	}
}
