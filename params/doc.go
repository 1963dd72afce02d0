// Package params declares typed named parameters: the value kinds, the
// enum and range value carriers, and the per-kind coercion rules that
// every other layer builds on.
//
// A Spec is a plain declaration built from a kind helper and functional
// options:
//
//	params.Float("gain", params.Default(0.5), params.Unit("dB"))
//	params.Linspace("freqs", params.Expand(), params.Prefix("f_"),
//		params.Default(params.Range{params.Num(10), params.Num(20), params.Num(30)}))
//
// # Key capabilities
//
//   - Seven value kinds: bool, int, float, string, enum, list, range
//   - Range kinds with distinct materialization rules (arange, linspace,
//     geomspace, span_arange) and per-kind slot naming for expansion
//   - Coercion into canonical carrying types with loose numeric widening
//   - Choice restriction checked after coercion
//   - Loose structural value equality shared by the schema layer
package params
