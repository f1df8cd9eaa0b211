// Package validate implements the schema validator described in spec.md
// §4.1: constructing a [Validator] indexes every option by name, records the
// (at most one) positional slot, and collects the always-required key list;
// [Validator.Validate] re-walks the schema for the deeper structural checks
// (name shape, requirement-tree references, default/example normalization)
// that are too expensive to run on every construction.
package validate
