package paranormal

import (
	"os"
	"path/filepath"

	"github.com/caryan/paranormal/argspec"
	"github.com/caryan/paranormal/flatten"
	"github.com/caryan/paranormal/internal/common"
	"github.com/caryan/paranormal/reconstruct"
	"github.com/caryan/paranormal/schema"
	"github.com/caryan/paranormal/serialize"
)

// ParseArgs flattens the definitions into one merged command line,
// parses argv and rebuilds one instance per definition, in definition
// order. Unknown flags are ignored; ParseArgsStrict rejects them. A nil
// argv reads the process arguments.
func ParseArgs(argv []string, defs ...*schema.Definition) ([]*schema.Instance, error) {
	return parseArgs(argv, true, defs)
}

// ParseArgsStrict is ParseArgs that fails on flags no definition
// declares.
func ParseArgsStrict(argv []string, defs ...*schema.Definition) ([]*schema.Instance, error) {
	return parseArgs(argv, false, defs)
}

// ParseOne is ParseArgs for a single definition.
func ParseOne(argv []string, def *schema.Definition) (*schema.Instance, error) {
	list, err := ParseArgs(argv, def)
	if err != nil {
		return nil, err
	}

	first, _ := common.First(list)

	return first, nil
}

func parseArgs(argv []string, tolerant bool, defs []*schema.Definition) ([]*schema.Instance, error) {
	set, err := flatten.Fields(defs...)
	if err != nil {
		return nil, err
	}

	if argv == nil {
		argv = os.Args[1:]
	}

	var opts []argspec.Option
	if tolerant {
		opts = append(opts, argspec.AllowUnknown())
	}

	ns, err := argspec.Parse(progName(), set, argv, opts...)
	if err != nil {
		return nil, err
	}

	return reconstruct.Instances(ns, defs...)
}

func progName() string {
	if len(os.Args) == 0 {
		return "paranormal"
	}

	return filepath.Base(os.Args[0])
}

// FromParsed rebuilds instances from an already parsed namespace, for
// callers that drive the flag parsing themselves.
func FromParsed(ns *argspec.Namespace, defs ...*schema.Definition) ([]*schema.Instance, error) {
	return reconstruct.Instances(ns, defs...)
}

// ToJSON renders an instance as a compact JSON object.
func ToJSON(in *schema.Instance, opts ...serialize.Option) ([]byte, error) {
	return serialize.ToJSON(in, opts...)
}

// FromJSON rebuilds the instance a JSON object names.
func FromJSON(data []byte, opts ...serialize.Option) (*schema.Instance, error) {
	return serialize.FromJSON(data, opts...)
}

// ToYAML renders an instance as a YAML document.
func ToYAML(in *schema.Instance, opts ...serialize.Option) ([]byte, error) {
	return serialize.ToYAML(in, opts...)
}

// FromYAML rebuilds the instance a YAML document names.
func FromYAML(data []byte, opts ...serialize.Option) (*schema.Instance, error) {
	return serialize.FromYAML(data, opts...)
}

// WriteYAMLFile serializes an instance into a YAML file.
func WriteYAMLFile(in *schema.Instance, path string, opts ...serialize.Option) error {
	return serialize.WriteYAMLFile(in, path, opts...)
}

// ReadYAMLFile reads a YAML file and rebuilds the instance it names.
func ReadYAMLFile(path string, opts ...serialize.Option) (*schema.Instance, error) {
	return serialize.ReadYAMLFile(path, opts...)
}

// WriteJSONFile serializes an instance into a JSON file.
func WriteJSONFile(in *schema.Instance, path string, opts ...serialize.Option) error {
	return serialize.WriteJSONFile(in, path, opts...)
}

// ReadJSONFile reads a JSON file and rebuilds the instance it names.
func ReadJSONFile(path string, opts ...serialize.Option) (*schema.Instance, error) {
	return serialize.ReadJSONFile(path, opts...)
}
