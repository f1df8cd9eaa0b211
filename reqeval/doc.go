// Package reqeval evaluates a [schema.Requirement] tree against a parse's
// [schema.Values] and specified-keys set, per spec.md §4.3: a recursive walk
// threading a negate bit that flips at every [schema.ReqNot] node, so
// [schema.ReqAll] and [schema.ReqOne] swap roles under negation (De Morgan).
// [Evaluate] returns both the pass/fail verdict and a human-readable reason
// string suitable for an optionRequires error message.
package reqeval
