// Package serialize converts instances to and from plain ordered
// mappings ready for JSON and YAML text. Every mapping carries the two
// reserved keys "_type" and "_module" after the declared fields, so the
// inverse direction can resolve the exact definition through the
// registry and rebuild the same instance, nested instances included.
//
// The round trip law holds for every valid instance: serializing with
// defaults included and deserializing yields an equal instance. With
// SkipDefaults the mapping carries exactly the fields that differ from
// their declared defaults, which still round-trips because one side
// omits what the other side defaults.
package serialize
