// Package normalize implements the pure value-normalization functions
// described in spec.md §4.4: [String], [Number], and [Array]. They are
// shared by the validate package (normalizing default/example values) and
// the parse package (normalizing parsed values), so both agree on what a
// legal value looks like.
package normalize
