package serialize

import (
	"fmt"
	"os"
	"strconv"

	"github.com/buger/jsonparser"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/caryan/paranormal/schema"
)

// ToJSON encodes an instance as a compact JSON object, keys in mapping
// order.
func ToJSON(in *schema.Instance, opts ...Option) ([]byte, error) {
	return EncodeJSON(ToMap(in, opts...))
}

// EncodeJSON renders an ordered mapping as a compact JSON object.
func EncodeJSON(m *Map) ([]byte, error) {
	return m.MarshalJSON()
}

// FromJSON decodes a JSON object and rebuilds the instance it names.
func FromJSON(data []byte, opts ...Option) (*schema.Instance, error) {
	m, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}

	return FromMap(m, opts...)
}

// WriteJSONFile serializes an instance into a JSON file at path.
func WriteJSONFile(in *schema.Instance, path string, opts ...Option) error {
	data, err := ToJSON(in, opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadJSONFile reads a JSON file and rebuilds the instance it names.
func ReadJSONFile(path string, opts ...Option) (*schema.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return FromJSON(data, opts...)
}

// DecodeJSON parses a JSON object into an ordered mapping, object keys
// kept in document order. Whole numbers decode as int, everything else
// numeric as float64.
func DecodeJSON(data []byte) (*Map, error) {
	return decodeObject(data)
}

func decodeObject(data []byte) (*Map, error) {
	m := orderedmap.New[string, any]()

	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		v, err := decodeValue(value, vt)
		if err != nil {
			return err
		}

		m.Set(string(key), v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

func decodeValue(value []byte, vt jsonparser.ValueType) (any, error) {
	switch vt {
	default:
		return nil, fmt.Errorf("unsupported json value %q", value)
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Number:
		if i, err := strconv.ParseInt(string(value), 10, 64); err == nil {
			return int(i), nil
		}

		return jsonparser.ParseFloat(value)
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Array:
		var (
			out   []any
			inner error
		)
		_, err := jsonparser.ArrayEach(value, func(item []byte, it jsonparser.ValueType, _ int, _ error) {
			if inner != nil {
				return
			}

			v, err := decodeValue(item, it)
			if err != nil {
				inner = err
				return
			}

			out = append(out, v)
		})
		if err != nil {
			return nil, err
		}
		if inner != nil {
			return nil, inner
		}

		return out, nil
	case jsonparser.Object:
		return decodeObject(value)
	}
}
