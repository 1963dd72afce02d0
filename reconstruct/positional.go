package reconstruct

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/caryan/paranormal/flatten"
	"github.com/caryan/paranormal/params"
)

var (
	intToken   = regexp.MustCompile(`^[+-]?\d+$`)
	floatToken = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	boolToken  = regexp.MustCompile(`^(true|false)$`)
)

// matchPositionals assigns the leftover command line tokens to the
// positional fields. Tokens are claimed in two rounds: fields with a
// fixed choice set pick their tokens first, then the rest claim tokens
// whose shape fits their kind, most restrictive kind first. Within a
// round fields keep their declaration order, so two fields of the same
// kind split the stream left to right.
func matchPositionals(fields []flatten.Field, tokens []string) (map[string]any, error) {
	if len(fields) == 0 {
		if len(tokens) > 0 {
			return nil, fmt.Errorf("unexpected positional arguments: %s", strings.Join(tokens, " "))
		}

		return map[string]any{}, nil
	}

	used := make([]bool, len(tokens))
	out := make(map[string]any, len(fields))

	var untyped []flatten.Field
	for _, f := range fields {
		if !hasChoices(f) {
			untyped = append(untyped, f)
			continue
		}

		if err := claim(f, tokens, used, out, choiceMatcher(f)); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(untyped, func(i, j int) bool { return rank(untyped[i]) < rank(untyped[j]) })

	for _, f := range untyped {
		if err := claim(f, tokens, used, out, kindMatcher(f)); err != nil {
			return nil, err
		}
	}

	var leftover []string
	for i, t := range tokens {
		if !used[i] {
			leftover = append(leftover, t)
		}
	}

	if len(leftover) > 0 {
		return nil, fmt.Errorf("unable to match positional arguments: %s", strings.Join(leftover, " "))
	}

	return out, nil
}

// claim scans the unclaimed tokens in order, keeps the ones accepted by
// match, takes the field's arity worth of them and converts the result
// to the field's canonical value.
func claim(f flatten.Field, tokens []string, used []bool, out map[string]any, match func(string) bool) error {
	var idxs []int
	for i, t := range tokens {
		if !used[i] && match(t) {
			idxs = append(idxs, i)
		}
	}

	if len(idxs) == 0 {
		return fmt.Errorf("unable to find a %s value for positional %q", describe(f), f.FlatName)
	}

	if n := f.Arity(); n > 0 {
		if len(idxs) < n {
			return fmt.Errorf("positional %q wants %d values, found %d", f.FlatName, n, len(idxs))
		}

		idxs = idxs[:n]
	}

	v, err := convert(f, tokens, idxs)
	if err != nil {
		return err
	}

	for _, i := range idxs {
		used[i] = true
	}
	out[f.FlatName] = v

	return nil
}

func convert(f flatten.Field, tokens []string, idxs []int) (any, error) {
	spec := fieldSpec(f)

	switch {
	default:
		return spec.Coerce(tokens[idxs[0]])
	case f.Kind == params.KindRange:
		vals := make([]any, len(idxs))
		for k, i := range idxs {
			n, err := strconv.ParseFloat(tokens[i], 64)
			if err != nil {
				return nil, fmt.Errorf("positional %q: %w", f.FlatName, err)
			}

			vals[k] = n
		}

		return spec.Coerce(vals)
	case f.Kind == params.KindList:
		vals := make([]any, len(idxs))
		for k, i := range idxs {
			tok := tokens[i]
			if f.Subtype == params.KindBool {
				vals[k] = tok == "true"
				continue
			}

			vals[k] = tok
		}

		return spec.Coerce(vals)
	}
}

func fieldSpec(f flatten.Field) params.Spec {
	return params.Spec{
		Name:      f.FlatName,
		Kind:      f.Kind,
		Subtype:   f.Subtype,
		EnumType:  f.EnumType,
		RangeKind: f.RangeKind,
		Choices:   f.Choices,
	}
}

func hasChoices(f flatten.Field) bool {
	return f.Kind == params.KindEnum || len(f.Choices) > 0
}

// choiceMatcher accepts a token when it spells out one of the field's
// allowed values. Enum fields accept member names, everything else
// compares the token against each choice both as text and as a coerced
// value, so an int choice of 3 claims the token "3" but not "3.5".
func choiceMatcher(f flatten.Field) func(string) bool {
	if f.Kind == params.KindEnum {
		return func(tok string) bool {
			if f.EnumType == nil || !f.EnumType.Has(tok) {
				return false
			}

			if len(f.Choices) == 0 {
				return true
			}

			for _, c := range f.Choices {
				if name, ok := c.(string); ok && name == tok {
					return true
				}
				if m, ok := c.(params.Member); ok && m.Name() == tok {
					return true
				}
			}

			return false
		}
	}

	spec := fieldSpec(f)
	spec.Choices = nil

	return func(tok string) bool {
		for _, c := range f.Choices {
			if fmt.Sprintf("%v", c) == tok {
				return true
			}

			if v, err := spec.Coerce(tok); err == nil && params.Equal(v, c) {
				return true
			}
		}

		return false
	}
}

func kindMatcher(f flatten.Field) func(string) bool {
	switch effectiveKind(f) {
	default:
		return func(string) bool { return true }
	case params.KindInt:
		return intToken.MatchString
	case params.KindFloat:
		return floatToken.MatchString
	case params.KindBool:
		return boolToken.MatchString
	}
}

// rank orders fields by how restrictive their token shape is. Integer
// shapes are claimed before float shapes, and bare strings go last
// because they accept anything.
func rank(f flatten.Field) int {
	switch effectiveKind(f) {
	default:
		return 4
	case params.KindBool, params.KindInt:
		return 1
	case params.KindFloat:
		return 2
	case params.KindString:
		return 3
	}
}

// effectiveKind is the scalar kind whose shape the tokens must have.
// Lists match by their element kind and ranges consume three floats.
func effectiveKind(f flatten.Field) params.Kind {
	switch f.Kind {
	default:
		return f.Kind
	case params.KindList:
		return f.Subtype
	case params.KindRange:
		return params.KindFloat
	}
}

func describe(f flatten.Field) string {
	switch effectiveKind(f) {
	default:
		return "string"
	case params.KindBool:
		return "bool"
	case params.KindInt:
		return "int"
	case params.KindFloat:
		return "float"
	}
}
