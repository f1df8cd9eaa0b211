package parse

import (
	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/help"
	"go.jacobcolvin.com/clargs/schema"
)

// dispatch handles one option occurrence already matched by name. rest is
// every token after the name, unconsumed.
//
// Return values: ctrl, when non-nil, means the parse should stop
// immediately and surface this control result (help/version) rather than
// values. stop means the loop should end here (a function's Break) and
// fall through to the caller's normal finalize-and-return path. consumed
// is how many of rest's tokens dispatch used.
func (st *loopState) dispatch(
	opt *schema.Option, negation, hasInline bool, inlineVal string, rest []string,
) (ctrl *clargserr.Control, stop bool, consumed int, err error) {
	key := opt.Key()
	st.specified[key] = true

	switch opt.Kind {
	case schema.KindFlag:
		n, e := st.dispatchFlag(opt, negation, hasInline)

		return nil, false, n, e
	case schema.KindFunction:
		return st.dispatchFunction(opt, rest)
	case schema.KindCommand:
		n, e := st.dispatchCommand(opt, rest)

		return nil, true, n, e
	case schema.KindHelp:
		c, e := st.dispatchHelp(opt)

		return c, false, 0, e
	case schema.KindVersion:
		c, e := st.dispatchVersion(opt)

		return c, false, 0, e
	case schema.KindBoolean, schema.KindString, schema.KindNumber:
		n, e := st.dispatchScalar(opt, hasInline, inlineVal, rest)

		return nil, false, n, e
	case schema.KindStrings, schema.KindNumbers:
		n, e := st.dispatchArray(opt, hasInline, inlineVal, rest)

		return nil, false, n, e
	default:
		return nil, false, 0, clargserr.Newf(clargserr.ParseError, "option %q: unsupported kind", key)
	}
}

func (st *loopState) dispatchFlag(opt *schema.Option, negation, hasInline bool) (int, error) {
	if hasInline {
		return 0, clargserr.New(clargserr.OptionInlineValue,
			"flag options do not accept an inline value").WithOption(opt.Key())
	}

	st.values[opt.Key()] = !negation

	return 0, nil
}

func (st *loopState) dispatchFunction(opt *schema.Option, rest []string) (*clargserr.Control, bool, int, error) {
	result, err := opt.Func(st.values, st.cfg.Completing, rest)
	if err != nil && !st.cfg.Completing {
		return nil, false, 0, wrapOption(err, opt.Key())
	}

	if result.Future != nil {
		st.chainFuture(opt.Key(), result.Future)
	} else if result.Value != nil {
		st.values[opt.Key()] = result.Value
	}

	stop := result.Break && !st.cfg.Completing

	return nil, stop, 0, nil
}

func (st *loopState) dispatchCommand(opt *schema.Option, rest []string) (int, error) {
	if !st.cfg.Completing {
		if err := st.finalize(); err != nil {
			return 0, err
		}
	}

	inner, err := New(opt.CommandOptions)
	if err != nil {
		return 0, err
	}

	innerRes, err := inner.ParseInto(schema.Values{}, rest, st.cfg)
	if err != nil {
		return 0, err
	}

	for _, f := range innerRes.Futures {
		st.chainFuture(f.Key, f.Done)
	}

	st.values[opt.Key()] = opt.Reduce(st.values, innerRes.Values)

	return len(rest), nil
}

func (st *loopState) dispatchHelp(opt *schema.Option) (*clargserr.Control, error) {
	if err := st.finalize(); err != nil {
		return nil, err
	}

	formatter := help.New(st.p.v, st.p.helpConfig)

	return &clargserr.Control{Kind: clargserr.Help, Text: formatter.FormatHelp(0)}, nil
}

func (st *loopState) dispatchVersion(opt *schema.Option) (*clargserr.Control, error) {
	if err := st.finalize(); err != nil {
		return nil, err
	}

	text := opt.VersionLiteral

	if opt.VersionResolve != nil {
		resolved, err := opt.VersionResolve(st.p.manifestPath)
		if err != nil {
			return nil, wrapOption(err, opt.Key())
		}

		text = resolved
	}

	return &clargserr.Control{Kind: clargserr.Version, Text: text}, nil
}

func (st *loopState) dispatchScalar(
	opt *schema.Option, hasInline bool, inlineVal string, rest []string,
) (int, error) {
	if hasInline {
		return 0, st.storeScalar(opt, inlineVal)
	}

	if len(rest) == 0 {
		return 0, clargserr.Newf(clargserr.MissingParameter,
			"option %q requires a parameter", opt.Key()).WithOption(opt.Key())
	}

	return 1, st.storeScalar(opt, rest[0])
}

func (st *loopState) dispatchArray(
	opt *schema.Option, hasInline bool, inlineVal string, rest []string,
) (int, error) {
	// Each specification without WithAppend replaces the elements of any
	// earlier one; with WithAppend the new elements are concatenated.
	if !opt.Append {
		delete(st.values, opt.Key())
	}

	if hasInline {
		return 0, st.appendArrayRaw(opt, []string{inlineVal})
	}

	if opt.ParseDelimited != nil {
		if len(rest) == 0 {
			return 0, clargserr.Newf(clargserr.MissingParameter,
				"option %q requires a parameter", opt.Key()).WithOption(opt.Key())
		}

		elements, err := opt.ParseDelimited(opt.Key(), rest[0])
		if err != nil {
			return 0, wrapOption(err, opt.Key())
		}

		return 1, st.appendPreSplit(opt, elements)
	}

	if opt.Parse != nil || opt.Separator != "" || opt.SeparatorRegex != nil {
		if len(rest) == 0 {
			return 0, clargserr.Newf(clargserr.MissingParameter,
				"option %q requires a parameter", opt.Key()).WithOption(opt.Key())
		}

		return 1, st.appendArrayRaw(opt, []string{rest[0]})
	}

	// No separator and no custom parse: variadic, greedily consumes bare
	// tokens until the next name or end of stream (handled by run()).
	st.pendingArray = opt

	return 0, nil
}
