package clargserr

// Kind discriminates the error taxonomy. Kinds are grouped by the stage that
// raises them: schema errors come from a Validator, parse errors from a
// running Parser, and value-constraint errors from either (the same
// normalizer runs at validation time over default/example values and at
// parse time over parsed values).
type Kind int

const (
	// Schema errors, raised by Validate.

	EmptyPositionalMarker Kind = iota
	InvalidOptionName
	OptionRequiresItself
	UnknownRequiredOption
	NiladicOptionRequiredValue
	OptionZeroEnum
	DuplicateOptionName
	DuplicatePositionalOption
	DuplicateStringEnum
	DuplicateNumberEnum
	OptionValueIncompatible
	OptionEmptyVersion

	// Parse errors, raised while consuming argv.

	UnknownOption
	UnknownOptionWithSimilar
	ParseError
	ParseErrorWithSimilar
	MissingParameter
	MissingRequiredOption
	OptionRequires
	OptionInlineValue
	PositionalInlineValue
	MissingPackageJSON

	// Value-constraint errors, raised by a normalizer.

	StringOptionEnums
	StringOptionRegex
	NumberOptionEnums
	NumberOptionRange
	ArrayOptionLimit
)

var kindNames = map[Kind]string{
	EmptyPositionalMarker:      "emptyPositionalMarker",
	InvalidOptionName:          "invalidOptionName",
	OptionRequiresItself:       "optionRequiresItself",
	UnknownRequiredOption:      "unknownRequiredOption",
	NiladicOptionRequiredValue: "niladicOptionRequiredValue",
	OptionZeroEnum:             "optionZeroEnum",
	DuplicateOptionName:        "duplicateOptionName",
	DuplicatePositionalOption:  "duplicatePositionalOption",
	DuplicateStringEnum:        "duplicateStringEnum",
	DuplicateNumberEnum:        "duplicateNumberEnum",
	OptionValueIncompatible:    "optionValueIncompatible",
	OptionEmptyVersion:         "optionEmptyVersion",

	UnknownOption:          "unknownOption",
	UnknownOptionWithSimilar: "unknownOptionWithSimilar",
	ParseError:             "parseError",
	ParseErrorWithSimilar:  "parseErrorWithSimilar",
	MissingParameter:       "missingParameter",
	MissingRequiredOption:  "missingRequiredOption",
	OptionRequires:         "optionRequires",
	OptionInlineValue:      "optionInlineValue",
	PositionalInlineValue:  "positionalInlineValue",
	MissingPackageJSON:     "missingPackageJson",

	StringOptionEnums: "stringOptionEnums",
	StringOptionRegex: "stringOptionRegex",
	NumberOptionEnums: "numberOptionEnums",
	NumberOptionRange: "numberOptionRange",
	ArrayOptionLimit:  "arrayOptionLimit",
}

// String returns the lowerCamelCase name used throughout spec.md, e.g.
// "missingRequiredOption".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknownErrorKind"
}

// Schema reports whether k is raised by schema validation rather than by
// parsing or normalization.
func (k Kind) Schema() bool {
	return k >= EmptyPositionalMarker && k <= OptionEmptyVersion
}
