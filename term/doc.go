// Package term implements the styled terminal string builder described in
// spec.md §4.5 and the CSI sequence vocabulary from §6: a flat sequence of
// (kind, payload) tokens, where a text token contributes to visible width
// and a control token does not. Visible width is computed per text token as
// the builder appends it — control tokens are simply never counted, rather
// than stripped back out of a finished string later.
//
// Sequence construction is built on [github.com/charmbracelet/x/ansi]'s CSI
// mnemonics, the same escape-sequence library charm.land/bubbletea and
// charm.land/lipgloss sit on inside this module's dependency graph.
package term
