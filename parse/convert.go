package parse

import (
	"strconv"
	"strings"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/schema"
)

// convertScalar converts one raw token to the type a single-valued or
// array-element kind expects, per spec.md §4.2 step 3: strings pass
// through unchanged, numbers parse with Go's float syntax, and booleans are
// false only for "0" or a case-insensitive "false".
func convertScalar(name string, kind schema.Kind, raw string) (any, error) {
	switch kind {
	case schema.KindString, schema.KindStrings:
		return raw, nil
	case schema.KindNumber, schema.KindNumbers:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, clargserr.Newf(clargserr.ParseError,
				"option %q: %q is not a valid number", name, raw).WithOption(name)
		}

		return n, nil
	case schema.KindBoolean:
		folded := strings.ToLower(raw)

		return !(raw == "0" || folded == "false"), nil
	default:
		return raw, nil
	}
}
