package help

import "go.jacobcolvin.com/clargs/term"

// ColumnConfig controls one of the three help columns.
type ColumnConfig struct {
	// Indent is either relative to the end of the previous column
	// (IndentAbsolute false) or an absolute offset from line start
	// (IndentAbsolute true).
	Indent         int
	IndentAbsolute bool
	// Break forces a line break before this column is emitted.
	Break  bool
	Hidden bool
}

// DescItem names one description-column phrase, in the order the default
// configuration emits them.
type DescItem int

const (
	ItemSynopsis DescItem = iota
	ItemNegation
	ItemSeparator
	ItemVariadic
	ItemPositional
	ItemAppend
	ItemTrim
	ItemCase
	ItemRound
	ItemEnums
	ItemRegex
	ItemRange
	ItemUnique
	ItemLimit
	ItemRequires
	ItemRequired
	ItemDefault
	ItemDeprecated
	ItemLink
)

// defaultItemOrder is every description item, in the order spec.md §4.6
// lists them.
var defaultItemOrder = []DescItem{
	ItemSynopsis, ItemNegation, ItemSeparator, ItemVariadic, ItemPositional,
	ItemAppend, ItemTrim, ItemCase, ItemRound, ItemEnums, ItemRegex, ItemRange,
	ItemUnique, ItemLimit, ItemRequires, ItemRequired, ItemDefault,
	ItemDeprecated, ItemLink,
}

// defaultPhrases holds one splitText template per item, using "%v"-style
// placeholders resolved by the item's own value formatter. Alternation
// groups ("(a|b)") let a single phrase cover both singular and plural, or
// both polarities, selected by an alt index the item computes itself.
var defaultPhrases = map[DescItem]string{
	ItemNegation:   "negate with %n",
	ItemSeparator:  "(split|joined) on %s",
	ItemVariadic:   "may be repeated",
	ItemPositional: "positional",
	ItemAppend:     "accumulates across repeats",
	ItemTrim:       "surrounding whitespace is trimmed",
	ItemCase:       "normalized to (lower|upper) case",
	ItemRound:      "rounded (down|up|to nearest|toward zero)",
	ItemEnums:      "one of %e",
	ItemRegex:      "must match %r",
	ItemRange:      "between %g and %g",
	ItemUnique:     "duplicates are removed",
	ItemLimit:      "limited to %d item(s|)",
	ItemRequires:   "requires %q",
	ItemRequired:   "required",
	ItemDefault:    "default %v",
	ItemDeprecated: "deprecated",
	ItemLink:       "see %u",
}

// Styles bundles the default control sequences applied to each column
// before its text, reverted immediately after.
type Styles struct {
	Names string
	Param string
	Desc  string
}

// FormatConfig configures one [HelpFormatter].
type FormatConfig struct {
	Names ColumnConfig
	Param ColumnConfig
	Desc  ColumnConfig

	Items   []DescItem
	Phrases map[DescItem]string
	Styles  Styles

	// FallbackWidth is used when the output width cannot be determined
	// from the environment.
	FallbackWidth int
}

// DefaultFormatConfig returns the formatter's default layout: names at
// column 2, param one space after names, desc two spaces after param, every
// default description item in spec order.
func DefaultFormatConfig() *FormatConfig {
	phrases := make(map[DescItem]string, len(defaultPhrases))
	for k, v := range defaultPhrases {
		phrases[k] = v
	}

	return &FormatConfig{
		Names:         ColumnConfig{Indent: 2, IndentAbsolute: true},
		Param:         ColumnConfig{Indent: 1},
		Desc:          ColumnConfig{Indent: 2, Break: false},
		Items:         append([]DescItem{}, defaultItemOrder...),
		Phrases:       phrases,
		Styles:        Styles{Names: term.SGR(term.AttrBold), Param: term.SGR(term.AttrFaint), Desc: ""},
		FallbackWidth: 80,
	}
}
