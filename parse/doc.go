// Package parse implements the argument loop described in spec.md §4.2: a
// 4-state classification (Marker/Positional/Inline/Param) that consumes a
// tokenized command line left-to-right, dispatches by option kind, and
// produces a [schema.Values] record together with any pending futures from
// suspended parse/parseDelimited or function/command callbacks. Requirement
// evaluation (reqeval) and default application run once the loop completes.
package parse
