// Package reconstruct turns a flat parsed namespace back into typed
// instances. It is the inverse of package flatten: the same definitions
// are flattened again, each flat name is traced to the declared field
// it came from and the field values are reassembled bottom up, nested
// instances included.
//
// Positional tokens are matched to positional fields by shape. Fields
// with a fixed choice set claim their tokens first, then integer
// shaped fields, float shaped fields and finally bare strings, which
// accept anything. Variadic list fields take every remaining token of
// their element shape.
package reconstruct
