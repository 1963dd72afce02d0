package serialize

import (
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/caryan/paranormal/params"
	"github.com/caryan/paranormal/schema"
)

// Reserved mapping keys carrying type identity through serialization.
const (
	TypeKey      = "_type"
	NamespaceKey = "_module"
)

// Map is the ordered plain mapping exchanged with the text codecs.
type Map = orderedmap.OrderedMap[string, any]

type config struct {
	skipDefaults  bool
	sortKeys      bool
	includeHidden bool
	registry      *schema.Registry
}

// Option adjusts serialization behavior.
type Option func(*config)

// SkipDefaults omits fields whose value still matches the declared
// default. The reserved identity keys are always kept.
func SkipDefaults() Option { return func(c *config) { c.skipDefaults = true } }

// SortKeys orders mapping keys alphabetically instead of declaration
// order, nested mappings included.
func SortKeys() Option { return func(c *config) { c.sortKeys = true } }

// IncludeHidden serializes hidden parameters too.
func IncludeHidden() Option { return func(c *config) { c.includeHidden = true } }

// Registry resolves identity keys against reg instead of the default
// registry when deserializing.
func Registry(reg *schema.Registry) Option { return func(c *config) { c.registry = reg } }

func newConfig(opts []Option) config {
	cfg := config{registry: schema.DefaultRegistry}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ToMap converts an instance into an ordered plain mapping ready for
// text encoding. Fields appear in declaration order followed by the two
// reserved identity keys. Nested instances become nested mappings, enum
// members their bare names and ranges their raw slot triples.
func ToMap(in *schema.Instance, opts ...Option) *Map {
	cfg := newConfig(opts)

	m := toMap(in, cfg)
	if cfg.sortKeys {
		m = SortMap(m)
	}

	return m
}

func toMap(in *schema.Instance, cfg config) *Map {
	def := in.Definition()
	m := orderedmap.New[string, any]()

	for _, f := range def.Fields() {
		if !f.IsNested() && f.Spec.Hidden && !cfg.includeHidden {
			continue
		}

		if cfg.skipDefaults {
			if dflt, err := in.IsDefault(f.Name); err == nil && dflt {
				continue
			}
		}

		v, err := in.Raw(f.Name)
		if err != nil {
			continue
		}

		if f.IsNested() {
			m.Set(f.Name, toMap(v.(*schema.Instance), cfg))
			continue
		}

		m.Set(f.Name, plain(v))
	}

	m.Set(TypeKey, def.Name())
	m.Set(NamespaceKey, def.Namespace())

	return m
}

// plain lowers a canonical field value to text-codec shape.
func plain(v any) any {
	switch t := v.(type) {
	default:
		return v
	case params.Member:
		return t.Name()
	case params.Range:
		out := make([]any, len(t))
		for i, p := range t {
			if p != nil {
				out[i] = *p
			}
		}
		return out
	}
}

// SortMap returns a copy of the mapping with keys in alphabetical
// order, nested mappings included. Values are shared, not copied.
func SortMap(m *Map) *Map {
	keys := make([]string, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	slices.Sort(keys)

	out := orderedmap.New[string, any]()
	for _, k := range keys {
		v, _ := m.Get(k)
		if sub, ok := v.(*Map); ok {
			v = SortMap(sub)
		}

		out.Set(k, v)
	}
	return out
}

// FromMap rebuilds an instance from a serialized mapping. The reserved
// identity keys pick the definition out of the registry, every known
// field key is coerced through its spec and unrecognized keys are
// ignored. Nested mappings rebuild nested instances recursively.
func FromMap(m *Map, opts ...Option) (*schema.Instance, error) {
	return fromMap(m, newConfig(opts))
}

func fromMap(m *Map, cfg config) (*schema.Instance, error) {
	rawName, okName := m.Get(TypeKey)
	rawNS, okNS := m.Get(NamespaceKey)
	if !okName || !okNS {
		return nil, fmt.Errorf("%w: missing %s or %s key", ErrUnrecognizedFormat, TypeKey, NamespaceKey)
	}

	name, okName := rawName.(string)
	namespace, okNS := rawNS.(string)
	if !okName || !okNS {
		return nil, fmt.Errorf("%w: identity keys must be strings", ErrUnrecognizedFormat)
	}

	def, ok := cfg.registry.Lookup(namespace, name)
	if !ok {
		return nil, &UnknownTypeError{Namespace: namespace, Name: name}
	}

	values := schema.Values{}
	for _, f := range def.Fields() {
		v, present := m.Get(f.Name)
		if !present {
			continue
		}

		if f.IsNested() {
			sub, ok := v.(*Map)
			if !ok {
				return nil, fmt.Errorf("field %q of %s wants a mapping, got %T", f.Name, name, v)
			}

			nested, err := fromMap(sub, cfg)
			if err != nil {
				return nil, err
			}

			values[f.Name] = nested
			continue
		}

		values[f.Name] = v
	}

	return def.New(values)
}
