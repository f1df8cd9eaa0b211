// Package schema defines the option/requirement data model described in
// spec.md §3: the [Kind] union, the shared [Header] and [Param] fields, the
// per-kind constraint fields, the [Requirement] tree, and the [Values]
// record a parse populates.
//
// These are data-only types with fluent builder methods (see [NewFlag],
// [NewString], and friends) — schema imports no other package of this
// module, so it sits at the bottom of the dependency graph alongside
// clargserr.
package schema
