// Package paranormal is a declarative parameter framework: typed named
// parameters are declared once per schema definition, and the library
// derives a command line for them, rebuilds typed values from the
// parsed result and serializes instances to and from JSON and YAML.
//
// A definition is an ordered list of fields built with the params
// constructors, optionally nesting other definitions:
//
//	colors := params.MustEnum("Colors", "RED", "BLUE", "GREEN")
//
//	sweep := schema.MustDefine("demo", "Sweep",
//		schema.Param(params.Linspace("freqs", params.Expand(), params.Prefix("f_"),
//			params.Default(params.Triple(10, 20, 30)), params.Unit("MHz"))),
//		schema.Param(params.EnumOf("color", colors, params.Default("BLUE"))),
//	)
//
// Expanded ranges surface on the command line as three independent
// slot flags (--f_start, --f_stop, --f_num) and come back as a single
// materialized sequence. Nested definitions merge into one flat
// namespace, with colliding names qualified by the nesting field name.
//
//	in, err := paranormal.ParseOne(os.Args[1:], sweep)
//	freqs := in.MustValue("freqs").([]float64)
//
// Instances round-trip through plain ordered mappings tagged with the
// defining namespace and type name, so the exact definition is
// recovered on the way back in:
//
//	data, _ := paranormal.ToYAML(in)
//	back, _ := paranormal.FromYAML(data)
//
// The subpackages expose each stage on its own: params (descriptors and
// coercion), schema (definitions, instances, the registry), flatten
// (the conflict-free flat field list), argspec (pflag binding),
// reconstruct (namespace to instances) and serialize (mappings, JSON,
// YAML, JSON Schema description).
package paranormal
