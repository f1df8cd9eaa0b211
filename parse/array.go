package parse

import (
	"errors"
	"regexp"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/normalize"
	"go.jacobcolvin.com/clargs/schema"
)

// splitElements breaks one raw token into the elements an array option's
// separator configuration prescribes; with no separator the token is a
// single element.
func splitElements(opt *schema.Option, raw string) []string {
	switch {
	case opt.SeparatorRegex != nil:
		return opt.SeparatorRegex.Split(raw, -1)
	case opt.Separator != "":
		return regexp.MustCompile(regexp.QuoteMeta(opt.Separator)).Split(raw, -1)
	default:
		return []string{raw}
	}
}

// appendArrayRaw converts and normalizes raw tokens for opt, resetting the
// accumulator on first specification this parse (unless Append is set and
// a prior value already exists) and appending on every subsequent call.
func (st *loopState) appendArrayRaw(opt *schema.Option, raw []string) error {
	key := opt.Key()
	firstThisParse := !st.specified[key]
	st.specified[key] = true

	var elements []string

	for _, tok := range raw {
		elements = append(elements, splitElements(opt, tok)...)
	}

	return st.appendElements(opt, key, firstThisParse, elements)
}

// appendPreSplit appends elements a custom [schema.ParseDelimitedFunc] has
// already produced, skipping the separator-splitting step.
func (st *loopState) appendPreSplit(opt *schema.Option, elements []string) error {
	key := opt.Key()
	firstThisParse := !st.specified[key]
	st.specified[key] = true

	return st.appendElements(opt, key, firstThisParse, elements)
}

func (st *loopState) appendElements(opt *schema.Option, key string, firstThisParse bool, elements []string) error {
	switch opt.Kind {
	case schema.KindStrings:
		return st.appendStrings(opt, key, firstThisParse, elements)
	case schema.KindNumbers:
		return st.appendNumbers(opt, key, firstThisParse, elements)
	default:
		return clargserr.Newf(clargserr.OptionValueIncompatible, "option %q is not array-valued", key)
	}
}

func (st *loopState) appendStrings(opt *schema.Option, key string, firstThisParse bool, raw []string) error {
	converted := make([]string, 0, len(raw))

	for _, tok := range raw {
		if opt.Parse != nil {
			v, err := opt.Parse(key, tok)
			if err != nil {
				return wrapOption(err, key)
			}

			s, _ := v.(string)
			converted = append(converted, s)

			continue
		}

		s, err := normalize.String(opt, tok)
		if err != nil {
			return wrapOption(err, key)
		}

		converted = append(converted, s)
	}

	existing, _ := st.values[key].([]string)

	// A key not yet specified this parse starts empty unless WithAppend keeps
	// a value already present. Replacing an earlier specification made
	// without WithAppend happens in dispatchArray, before this occurrence's
	// elements arrive — intentional, matching the last-occurrence convention
	// most CLIs use for repeatable non-cumulative flags.
	if firstThisParse && !opt.Append {
		existing = nil
	}

	merged, err := normalize.Array(opt.Unique, opt.Limit, append(existing, converted...))
	if err != nil {
		return wrapOption(err, key)
	}

	st.values[key] = merged

	return nil
}

func (st *loopState) appendNumbers(opt *schema.Option, key string, firstThisParse bool, raw []string) error {
	converted := make([]float64, 0, len(raw))

	for _, tok := range raw {
		v, err := convertScalar(key, schema.KindNumber, tok)
		if err != nil {
			return err
		}

		n, _ := v.(float64)

		n, err = normalize.Number(opt, n)
		if err != nil {
			return wrapOption(err, key)
		}

		converted = append(converted, n)
	}

	existing, _ := st.values[key].([]float64)

	if firstThisParse && !opt.Append {
		existing = nil
	}

	merged, err := normalize.Array(opt.Unique, opt.Limit, append(existing, converted...))
	if err != nil {
		return wrapOption(err, key)
	}

	st.values[key] = merged

	return nil
}

func wrapOption(err error, key string) error {
	var cerr *clargserr.Error
	if errors.As(err, &cerr) {
		return cerr.WithOption(key)
	}

	return err
}
