package schema

import "regexp"

// Kind discriminates the option union. Dispatch on Kind is exhaustive by
// construction: adding a new kind means adding a new case everywhere a
// switch over Kind exists, rather than threading a new virtual method
// through an interface hierarchy.
type Kind int

const (
	// Niladic kinds: consume no parameter.

	KindFlag Kind = iota
	KindFunction
	KindCommand
	KindHelp
	KindVersion

	// Single-valued kinds.

	KindBoolean
	KindString
	KindNumber

	// Array-valued kinds.

	KindStrings
	KindNumbers
)

// Niladic reports whether k consumes no parameter from argv.
func (k Kind) Niladic() bool {
	return k <= KindVersion
}

// Array reports whether k accumulates a slice of values.
func (k Kind) Array() bool {
	return k == KindStrings || k == KindNumbers
}

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindFunction:
		return "function"
	case KindCommand:
		return "command"
	case KindHelp:
		return "help"
	case KindVersion:
		return "version"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindStrings:
		return "strings"
	case KindNumbers:
		return "numbers"
	default:
		return "unknown"
	}
}

// CaseMode controls string normalization for [KindString] and [KindStrings]
// options.
type CaseMode int

const (
	CaseNone CaseMode = iota
	CaseLower
	CaseUpper
)

// RoundMode controls numeric rounding for [KindNumber] and [KindNumbers]
// options, applied before enum/range constraints.
type RoundMode int

const (
	RoundNone RoundMode = iota
	RoundTrunc
	RoundFloor
	RoundCeil
	RoundRound
)

// Range is a closed numeric interval, inclusive on both ends.
type Range struct {
	Lo, Hi float64
}

// Styles carries per-option rendering overrides, set with
// [Option.WithStyles]. The help formatter does not read them: every entry
// is rendered with the formatter's own configured styles.
type Styles struct {
	Names *string
	Param *string
	Desc  *string
}

// FuncResult is returned by a [KindFunction] callback.
type FuncResult struct {
	// Value is stored under the option's key, unless Future is set.
	Value any
	// Break stops the parse loop immediately (after running requirement
	// checks and applying defaults), unless Completing was true.
	Break bool
	// Future, if non-nil, defers Value until the channel yields a
	// [FutureResult]; see values.go.
	Future <-chan FutureResult
}

// FuncCallback implements a [KindFunction] option. completing is true when
// the parser is running in shell-completion mode, in which case the
// callback's error (if any) is suppressed rather than surfaced.
type FuncCallback func(values Values, completing bool, rest []string) (FuncResult, error)

// CommandReducer combines the outer (already-parsed) [Values] with the
// inner, recursively-parsed [Values] of a [KindCommand] option into the
// single value stored under the command's key.
type CommandReducer func(outer, inner Values) any

// ParseFunc converts one raw token into a typed value for a parametric
// option. It replaces the kind-specific built-in conversion.
type ParseFunc func(name, value string) (any, error)

// ParseDelimitedFunc converts one raw token into a full set of elements for
// an array option, replacing the built-in separator-splitting logic.
type ParseDelimitedFunc func(name string, value string) ([]string, error)

// CompleteFunc returns shell-completion candidates for a parametric option,
// given the partial word typed so far.
type CompleteFunc func(values Values, partial string) []string

// ResolveFunc reads a package manifest path and returns the version string
// found there. It is the library's only hook into the out-of-scope
// "package-version resolver" described in spec.md §1 — clargs never reads
// the filesystem itself to resolve a version.
type ResolveFunc func(manifestPath string) (string, error)

// Header holds the fields shared by every option kind.
type Header struct {
	// Names is the ordered list of names this option answers to (e.g.
	// "-n", "--name"). At least one must be non-empty.
	Names []string
	// PreferredName is shown in error messages and help; defaults to the
	// first non-empty entry of Names.
	PreferredName string
	Desc          string
	// Group buckets this option for help rendering; empty means the
	// default group.
	Group      string
	Hide       bool
	Deprecated bool
	Link       string
	Styles     *Styles
	Requires   Requirement
	Required   bool
}

// Param holds the fields shared by every parametric (non-niladic) option.
type Param struct {
	// Default is used when the option was not specified. If DefaultFunc
	// is set, it takes precedence and is invoked with the parse's
	// Values.
	Default     any
	DefaultFunc func(Values) any
	Example     any
	// Positional marks this as the schema's single positional option.
	Positional bool
	// PositionalMarker, if set, is a name that — once seen on its own —
	// forces every subsequent token to be treated as positional, even if
	// it would otherwise match a known name.
	PositionalMarker string
	// PositionalMarkerSet distinguishes "no marker configured" from an
	// explicit empty marker (a validation error) — see
	// [Option.WithPositionalMarker].
	PositionalMarkerSet bool
	ParamName           string
	Parse               ParseFunc
	ParseDelimited      ParseDelimitedFunc
	Complete            CompleteFunc
}

// Option is a tagged variant over every option kind, sharing one header.
// Build one with [NewFlag], [NewFunction], [NewCommand], [NewHelp],
// [NewVersion], [NewBoolean], [NewString], [NewNumber], [NewStrings], or
// [NewNumbers], then chain the With* methods to configure it.
type Option struct {
	Kind Kind
	Header
	Param

	// String/Strings constraints.
	Enums []string
	Regex *regexp.Regexp
	Trim  bool
	Case  CaseMode

	// Number/Numbers constraints.
	NumberEnums []float64
	NumRange    *Range
	Round       RoundMode

	// Strings/Numbers (array) constraints.
	Separator      string
	SeparatorRegex *regexp.Regexp
	Append         bool
	Unique         bool
	Limit          int

	// Flag.
	NegationNames []string

	// Function.
	Func FuncCallback

	// Command.
	CommandOptions []*Option
	Reduce         CommandReducer

	// Help.
	HelpFormatWidth int

	// Version.
	VersionLiteral    string
	VersionLiteralSet bool
	VersionResolve    ResolveFunc
}

// Key returns the canonical map key this option's values are stored under:
// its PreferredName, falling back to the first non-empty name.
func (o *Option) Key() string {
	if o.PreferredName != "" {
		return o.PreferredName
	}

	for _, n := range o.Names {
		if n != "" {
			return n
		}
	}

	return ""
}
