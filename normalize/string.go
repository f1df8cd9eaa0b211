package normalize

import (
	"slices"
	"strings"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/schema"
)

// String applies trim, then case folding, then the enum/regex constraint
// (mutually exclusive per spec.md §3) to s. The returned error, when
// non-nil, is a *clargserr.Error of kind StringOptionEnums or
// StringOptionRegex.
func String(opt *schema.Option, s string) (string, error) {
	if opt.Trim {
		s = strings.TrimSpace(s)
	}

	switch opt.Case {
	case schema.CaseLower:
		s = strings.ToLower(s)
	case schema.CaseUpper:
		s = strings.ToUpper(s)
	case schema.CaseNone:
	}

	switch {
	case len(opt.Enums) > 0:
		if !slices.Contains(opt.Enums, s) {
			return s, clargserr.Newf(clargserr.StringOptionEnums,
				"invalid parameter %q: expected one of %s",
				s, strings.Join(opt.Enums, ", "))
		}
	case opt.Regex != nil:
		if !opt.Regex.MatchString(s) {
			return s, clargserr.Newf(clargserr.StringOptionRegex,
				"invalid parameter %q: expected a value matching %s",
				s, opt.Regex.String())
		}
	}

	return s, nil
}
