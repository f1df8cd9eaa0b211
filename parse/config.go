package parse

import "go.jacobcolvin.com/clargs/schema"

// Config controls one call to [Parser.Parse]/[Parser.ParseAsync]/
// [Parser.ParseInto].
type Config struct {
	// Completing marks this parse as running in shell-completion mode: a
	// custom callback's error is suppressed instead of surfaced, and a
	// function/command break is ignored (spec.md §5).
	Completing bool
	// CompIndex is the index of the token under the completion cursor, as
	// produced by [Tokenize]. Ignored when Completing is false.
	CompIndex int
}

// Result is returned by every parse entry point.
type Result struct {
	Values  schema.Values
	Futures []schema.PendingFuture
}
