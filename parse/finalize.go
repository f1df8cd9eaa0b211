package parse

import (
	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/reqeval"
	"go.jacobcolvin.com/clargs/schema"
	"go.jacobcolvin.com/clargs/validate"
)

// finalize runs the two post-loop phases of spec.md §4.2: required-key
// presence and requirement-tree evaluation, then default application. It
// is idempotent — command/help/version dispatch may call it early, and
// ParseInto always calls it once more before returning.
func (st *loopState) finalize() error {
	if st.finalized {
		return nil
	}

	st.finalized = true

	for _, key := range st.p.v.Required() {
		if !st.specified[key] {
			return clargserr.Newf(clargserr.MissingRequiredOption,
				"option %q is required", key).WithOption(key)
		}
	}

	for _, opt := range st.p.v.Options() {
		if !st.specified[opt.Key()] || opt.Requires == nil {
			continue
		}

		ok, reason := reqeval.Evaluate(opt.Requires, st.values, st.specified, st.p.v.ByKey)
		if !ok {
			return clargserr.Newf(clargserr.OptionRequires,
				"option %q requires %s", opt.Key(), reason).WithOption(opt.Key())
		}
	}

	for _, opt := range st.p.v.Options() {
		if st.specified[opt.Key()] {
			continue
		}

		if err := st.applyDefault(opt); err != nil {
			return err
		}
	}

	return nil
}

func (st *loopState) applyDefault(opt *schema.Option) error {
	switch {
	case opt.Kind == schema.KindFlag:
		if _, has := st.values[opt.Key()]; !has {
			st.values[opt.Key()] = false
		}

		return nil
	case opt.Kind.Niladic():
		return nil
	case opt.DefaultFunc != nil:
		value := opt.DefaultFunc(st.values)

		normalized, err := validate.NormalizeValue(opt, value)
		if err != nil {
			return wrapOption(err, opt.Key())
		}

		st.values[opt.Key()] = normalized

		return nil
	case opt.Default != nil:
		st.values[opt.Key()] = opt.Default

		return nil
	default:
		return nil
	}
}
