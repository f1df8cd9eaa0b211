package schema

import "regexp"

// NewFlag builds a niladic boolean [Option]. Use [Option.WithNegation] to
// add names that set the value to false instead of true.
func NewFlag(names ...string) *Option {
	return &Option{Kind: KindFlag, Header: Header{Names: names}}
}

// NewFunction builds a niladic [Option] that invokes fn on each occurrence.
func NewFunction(fn FuncCallback, names ...string) *Option {
	return &Option{Kind: KindFunction, Header: Header{Names: names}, Func: fn}
}

// NewCommand builds a niladic [Option] that parses the remaining argv
// against a nested schema and folds the result into the outer values with
// reduce.
func NewCommand(opts []*Option, reduce CommandReducer, names ...string) *Option {
	return &Option{
		Kind:           KindCommand,
		Header:         Header{Names: names},
		CommandOptions: opts,
		Reduce:         reduce,
	}
}

// NewHelp builds a niladic [Option] that terminates the parse with a
// rendered help message.
func NewHelp(names ...string) *Option {
	return &Option{Kind: KindHelp, Header: Header{Names: names}}
}

// NewVersion builds a niladic [Option] that terminates the parse with a
// version string, either the literal set by [Option.WithVersionLiteral] or
// one resolved by [Option.WithVersionResolve].
func NewVersion(names ...string) *Option {
	return &Option{Kind: KindVersion, Header: Header{Names: names}}
}

// NewBoolean builds a single-valued boolean [Option].
func NewBoolean(names ...string) *Option {
	return &Option{Kind: KindBoolean, Header: Header{Names: names}}
}

// NewString builds a single-valued string [Option].
func NewString(names ...string) *Option {
	return &Option{Kind: KindString, Header: Header{Names: names}}
}

// NewNumber builds a single-valued numeric [Option].
func NewNumber(names ...string) *Option {
	return &Option{Kind: KindNumber, Header: Header{Names: names}}
}

// NewStrings builds an array-valued string [Option].
func NewStrings(names ...string) *Option {
	return &Option{Kind: KindStrings, Header: Header{Names: names}}
}

// NewNumbers builds an array-valued numeric [Option].
func NewNumbers(names ...string) *Option {
	return &Option{Kind: KindNumbers, Header: Header{Names: names}}
}

// Header fluent setters, valid on every kind.

func (o *Option) WithPreferredName(name string) *Option {
	o.PreferredName = name

	return o
}

func (o *Option) WithDesc(desc string) *Option {
	o.Desc = desc

	return o
}

func (o *Option) WithGroup(group string) *Option {
	o.Group = group

	return o
}

func (o *Option) WithHide() *Option {
	o.Hide = true

	return o
}

func (o *Option) WithDeprecated() *Option {
	o.Deprecated = true

	return o
}

func (o *Option) WithLink(link string) *Option {
	o.Link = link

	return o
}

func (o *Option) WithStyles(s *Styles) *Option {
	o.Styles = s

	return o
}

func (o *Option) WithRequires(r Requirement) *Option {
	o.Requires = r

	return o
}

func (o *Option) WithRequired() *Option {
	o.Required = true

	return o
}

// Flag-only.

func (o *Option) WithNegation(names ...string) *Option {
	o.NegationNames = names

	return o
}

// Version-only.

func (o *Option) WithVersionLiteral(v string) *Option {
	o.VersionLiteral = v
	o.VersionLiteralSet = true

	return o
}

func (o *Option) WithVersionResolve(fn ResolveFunc) *Option {
	o.VersionResolve = fn

	return o
}

// Parametric fluent setters (single- and array-valued kinds).

func (o *Option) WithDefault(v any) *Option {
	o.Default = v

	return o
}

func (o *Option) WithDefaultFunc(fn func(Values) any) *Option {
	o.DefaultFunc = fn

	return o
}

func (o *Option) WithExample(v any) *Option {
	o.Example = v

	return o
}

func (o *Option) WithPositional() *Option {
	o.Positional = true

	return o
}

func (o *Option) WithPositionalMarker(marker string) *Option {
	o.Positional = true
	o.PositionalMarker = marker
	o.PositionalMarkerSet = true

	return o
}

func (o *Option) WithParamName(name string) *Option {
	o.ParamName = name

	return o
}

func (o *Option) WithParse(fn ParseFunc) *Option {
	o.Parse = fn

	return o
}

func (o *Option) WithParseDelimited(fn ParseDelimitedFunc) *Option {
	o.ParseDelimited = fn

	return o
}

func (o *Option) WithComplete(fn CompleteFunc) *Option {
	o.Complete = fn

	return o
}

// String/Strings constraints.

func (o *Option) WithEnums(values ...string) *Option {
	o.Enums = values

	return o
}

func (o *Option) WithRegex(re *regexp.Regexp) *Option {
	o.Regex = re

	return o
}

func (o *Option) WithTrim() *Option {
	o.Trim = true

	return o
}

func (o *Option) WithCase(mode CaseMode) *Option {
	o.Case = mode

	return o
}

// Number/Numbers constraints.

func (o *Option) WithNumberEnums(values ...float64) *Option {
	o.NumberEnums = values

	return o
}

func (o *Option) WithRange(lo, hi float64) *Option {
	o.NumRange = &Range{Lo: lo, Hi: hi}

	return o
}

func (o *Option) WithRound(mode RoundMode) *Option {
	o.Round = mode

	return o
}

// Strings/Numbers (array) constraints.

func (o *Option) WithSeparator(sep string) *Option {
	o.Separator = sep

	return o
}

func (o *Option) WithSeparatorRegex(re *regexp.Regexp) *Option {
	o.SeparatorRegex = re

	return o
}

func (o *Option) WithAppend() *Option {
	o.Append = true

	return o
}

func (o *Option) WithUnique() *Option {
	o.Unique = true

	return o
}

func (o *Option) WithLimit(n int) *Option {
	o.Limit = n

	return o
}
