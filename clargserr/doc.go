// Package clargserr defines the closed error taxonomy shared by every
// clargs subpackage: schema errors raised while validating an option schema,
// parse errors raised while consuming argv, and the value-constraint errors
// raised by both.
//
// [Error] carries a [Kind] plus a rendered message and supports
// errors.Is/errors.As against the Kind constants via [Error.Unwrap]. Help,
// version, and shell-completion results travel the same channel as errors
// but as a distinct [Control] type, so callers can tell "stop, here is your
// answer" apart from "stop, something is wrong" with a single type switch.
package clargserr
