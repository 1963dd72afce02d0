package argspec

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/caryan/paranormal/flatten"
	"github.com/caryan/paranormal/params"
)

// Bind registers every flag field of the set on a caller-supplied flag
// set, for embedding the derived flags into an existing command.
func Bind(fs *pflag.FlagSet, set *flatten.Set) error {
	for _, f := range set.Flags {
		if err := register(fs, f); err != nil {
			return err
		}
	}
	return nil
}

// buildFlagSet registers every flag field on a fresh flag set.
func buildFlagSet(prog string, set *flatten.Set, cfg *config) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(prog, pflag.ContinueOnError)
	fs.SetOutput(cfg.out)
	if cfg.allowUnknown {
		fs.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
	}

	fs.Usage = func() { fmt.Fprint(cfg.out, Usage(prog, set, fs)) }

	if err := Bind(fs, set); err != nil {
		return nil, err
	}
	return fs, nil
}

func register(fs *pflag.FlagSet, f flatten.Field) error {
	name, help := f.FlatName, decorateHelp(f)
	switch f.Kind {
	default:
		return fmt.Errorf("flag --%s: unsupported kind %s", name, f.Kind)
	case params.KindBool:
		fs.Bool(name, false, help)
		if d, ok := f.Default.(bool); ok && d {
			// naming a default-true switch turns it off
			fs.Lookup(name).NoOptDefVal = "false"
		}
	case params.KindInt:
		fs.Int(name, 0, help)
	case params.KindFloat:
		fs.Float64(name, 0, help)
	case params.KindString, params.KindEnum:
		fs.String(name, "", help)
	case params.KindList:
		switch f.Subtype {
		default:
			return fmt.Errorf("flag --%s: unsupported list element kind %s", name, f.Subtype)
		case params.KindBool:
			fs.BoolSlice(name, nil, help)
		case params.KindInt:
			fs.IntSlice(name, nil, help)
		case params.KindFloat:
			fs.Float64Slice(name, nil, help)
		case params.KindString:
			fs.StringSlice(name, nil, help)
		}
	case params.KindRange:
		fs.Float64Slice(name, nil, help)
		if f.Guard {
			fs.Lookup(name).Hidden = true
		}
	}
	return nil
}

// decorateHelp appends the choice list and the declared default with
// its unit to the field's help text.
func decorateHelp(f flatten.Field) string {
	if f.Guard {
		return ""
	}

	help := f.Help
	if choices := choiceNames(f); len(choices) > 0 {
		help = strings.TrimSpace(help + " (choices: " + strings.Join(choices, ", ") + ")")
	}

	if f.Default == nil || f.Required {
		return help
	}

	if f.Unit != "" {
		return strings.TrimSpace(help + fmt.Sprintf(" [default: %v %s]", f.Default, f.Unit))
	}

	return strings.TrimSpace(help + fmt.Sprintf(" [default: %v]", f.Default))
}

func choiceNames(f flatten.Field) []string {
	if f.Kind == params.KindEnum && f.EnumType != nil && len(f.Choices) == 0 {
		return f.EnumType.Members()
	}

	if len(f.Choices) == 0 {
		return nil
	}

	out := make([]string, len(f.Choices))
	for i, c := range f.Choices {
		out[i] = fmt.Sprintf("%v", c)
	}
	return out
}

// Usage renders the usage banner: the positional signature, the leading
// class description when one is set, and the flag list.
func Usage(prog string, set *flatten.Set, fs *pflag.FlagSet) string {
	var b strings.Builder
	b.WriteString("usage: " + prog)
	if len(set.Flags) > 0 {
		b.WriteString(" [flags]")
	}

	for _, p := range set.Positionals {
		switch {
		default:
			fmt.Fprintf(&b, " %s", p.FlatName)
		case p.Variadic():
			fmt.Fprintf(&b, " %s...", p.FlatName)
		case p.Kind == params.KindRange:
			fmt.Fprintf(&b, " %s %s %s", p.FlatName, p.FlatName, p.FlatName)
		}
	}
	b.WriteString("\n")

	if desc := description(set); desc != "" {
		b.WriteString("\n" + desc + "\n")
	}

	if len(set.Positionals) > 0 {
		b.WriteString("\npositional arguments:\n")
		for _, p := range set.Positionals {
			fmt.Fprintf(&b, "  %-24s %s\n", p.FlatName, decorateHelp(p))
		}
	}

	if len(set.Flags) > 0 {
		b.WriteString("\nflags:\n")
		b.WriteString(fs.FlagUsages())
	}
	return b.String()
}

func description(set *flatten.Set) string {
	for _, d := range set.Roots {
		if d.Help() != "" {
			return d.Help()
		}
	}
	return ""
}
