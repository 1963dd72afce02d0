package argspec

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/caryan/paranormal/flatten"
	"github.com/caryan/paranormal/params"
)

type config struct {
	allowUnknown bool
	out          io.Writer
}

// Option adjusts how a parse behaves.
type Option func(*config)

// AllowUnknown skips unrecognized flags instead of failing the parse.
func AllowUnknown() Option { return func(c *config) { c.allowUnknown = true } }

// Output redirects usage and error output, os.Stderr by default.
func Output(w io.Writer) Option { return func(c *config) { c.out = w } }

// Parse registers the flattened fields as flags, parses argv, and
// captures the resulting namespace. Required flags left unset fail the
// parse, and a --help request surfaces as pflag.ErrHelp after the usage
// text is printed.
func Parse(prog string, set *flatten.Set, argv []string, opts ...Option) (*Namespace, error) {
	cfg := &config{out: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}

	fs, err := buildFlagSet(prog, set, cfg)
	if err != nil {
		return nil, err
	}

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}

	return capture(fs, set)
}

// capture reads every flag back off the parsed flag set. Unset flags
// fall back to their declared default, set flags come back in their
// canonical carrying type with choices enforced.
func capture(fs *pflag.FlagSet, set *flatten.Set) (*Namespace, error) {
	ns := &Namespace{
		values: make(map[string]any, len(set.Flags)),
		order:  make([]string, 0, len(set.Flags)),
		args:   fs.Args(),
	}
	var missing []string
	for _, f := range set.Flags {
		ns.order = append(ns.order, f.FlatName)
		if !fs.Changed(f.FlatName) {
			if f.Required {
				missing = append(missing, "--"+f.FlatName)
			}

			ns.values[f.FlatName] = f.Default
			continue
		}

		v, err := flagValue(fs, f)
		if err != nil {
			return nil, err
		}

		if err := checkChoices(f, v); err != nil {
			return nil, err
		}

		ns.values[f.FlatName] = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("the following arguments are required: %s", strings.Join(missing, ", "))
	}

	return ns, nil
}

func flagValue(fs *pflag.FlagSet, f flatten.Field) (any, error) {
	name := f.FlatName
	switch f.Kind {
	default:
		return nil, fmt.Errorf("flag --%s: unsupported kind %s", name, f.Kind)
	case params.KindBool:
		return fs.GetBool(name)
	case params.KindInt:
		return fs.GetInt(name)
	case params.KindFloat:
		return fs.GetFloat64(name)
	case params.KindString:
		return fs.GetString(name)
	case params.KindEnum:
		s, err := fs.GetString(name)
		if err != nil {
			return nil, err
		}

		if !f.EnumType.Has(s) {
			return nil, fmt.Errorf("flag --%s: invalid choice %q (choose from %s)",
				name, s, strings.Join(f.EnumType.Members(), ", "))
		}

		return s, nil
	case params.KindList:
		switch f.Subtype {
		default:
			return nil, fmt.Errorf("flag --%s: unsupported list element kind %s", name, f.Subtype)
		case params.KindBool:
			return fs.GetBoolSlice(name)
		case params.KindInt:
			return fs.GetIntSlice(name)
		case params.KindFloat:
			return fs.GetFloat64Slice(name)
		case params.KindString:
			return fs.GetStringSlice(name)
		}
	case params.KindRange:
		vals, err := fs.GetFloat64Slice(name)
		if err != nil {
			return nil, err
		}

		if !f.Guard && len(vals) != 3 {
			return nil, fmt.Errorf("flag --%s wants exactly 3 values, got %d", name, len(vals))
		}

		return vals, nil
	}
}

func checkChoices(f flatten.Field, v any) error {
	if len(f.Choices) == 0 {
		return nil
	}

	// a range flag's choices constrain the whole triple and are
	// enforced when the triple is coerced back into its parameter
	if f.Kind == params.KindRange {
		return nil
	}

	for _, e := range elems(v) {
		if !allowed(e, f.Choices) {
			return fmt.Errorf("flag --%s: invalid choice %v (choose from %s)",
				f.FlatName, e, strings.Join(choiceNames(f), ", "))
		}
	}
	return nil
}

func allowed(v any, choices []any) bool {
	for _, c := range choices {
		if params.Equal(v, c) {
			return true
		}
	}
	return false
}

// elems spreads list values so choices apply per element.
func elems(v any) []any {
	switch t := v.(type) {
	default:
		return []any{v}
	case []bool:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case []int:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case []float64:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	}
}
