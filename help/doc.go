// Package help implements the three-column, word-wrapped help formatter
// described in spec.md §4.6-4.7: given a validated schema and a
// [FormatConfig], it builds one styled [term.String] per option across the
// names/param/desc columns, groups entries by [schema.Option.Group], and
// renders each group to a width-aware, wrapped string.
package help
