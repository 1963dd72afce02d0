// Package flatten projects nested definition trees onto a single flat
// argument namespace.
//
// Expanded range parameters become three slot fields plus a guard
// reserving the original name. Name collisions between nested classes
// are resolved by qualifying the colliding pieces with their nested
// field's name, whole expansion families at a time. Collisions that
// qualification cannot resolve are reported as errors instead of being
// silently shadowed.
package flatten
