// Package schema composes parameter specs into params classes: named,
// ordered field sets that can nest each other, instantiate with
// explicit values on top of declared defaults, and register a type
// identity for serialization.
//
// A class is declared once, usually at package level:
//
//	var Summer = schema.MustDefine("demo", "Summer",
//		schema.Param(params.Linspace("dpw", params.Expand(), params.Prefix("s_"))),
//		schema.Param(params.Float("t", params.Default(60.0), params.Unit("ns"))),
//	)
//
// and instantiated with explicit values:
//
//	in, err := Summer.New(schema.Values{"t": 42.5})
//
// Instances remember which fields were set explicitly. Unset fields
// track the declared default, and a complete range field materializes
// into its point sequence on access.
package schema
