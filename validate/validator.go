package validate

import (
	"errors"
	"regexp"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/normalize"
	"go.jacobcolvin.com/clargs/schema"
)

// nameEntry is what a name in the index resolves to: the option that owns
// it, and whether the name is the option's positional marker (a special
// token rather than a name the parser dispatches value-setting to).
type nameEntry struct {
	option   *schema.Option
	negation bool
	marker   bool
}

// Validator indexes a schema once at construction and never changes that
// index afterward, so it is freely shareable across parses, per spec.md §5.
// [Validator.Validate] does rewrite options in place: it stores the
// normalized enums, default and example values.
type Validator struct {
	options    []*schema.Option
	names      map[string]nameEntry
	byKey      map[string]*schema.Option
	positional *schema.Option
	required   []string
}

// New constructs a [Validator], indexing names and recording the positional
// slot and required-key list. It returns the first structural error found
// (duplicate name, duplicate positional slot); call [Validator.Validate]
// afterward to run the deeper checks from spec.md §4.1.
func New(options []*schema.Option) (*Validator, error) {
	v := &Validator{
		names: make(map[string]nameEntry),
		byKey: make(map[string]*schema.Option),
	}

	for _, opt := range options {
		if opt.PreferredName == "" {
			for _, n := range opt.Names {
				if n != "" {
					opt.PreferredName = n

					break
				}
			}
		}

		for _, n := range opt.Names {
			if n == "" {
				continue
			}

			if err := v.addName(n, nameEntry{option: opt}); err != nil {
				return nil, err
			}
		}

		for _, n := range opt.NegationNames {
			if n == "" {
				continue
			}

			if err := v.addName(n, nameEntry{option: opt, negation: true}); err != nil {
				return nil, err
			}
		}

		if opt.Positional {
			if v.positional != nil {
				return nil, clargserr.New(clargserr.DuplicatePositionalOption,
					"only one option may be positional")
			}

			v.positional = opt

			if opt.PositionalMarkerSet && opt.PositionalMarker != "" {
				if err := v.addName(opt.PositionalMarker, nameEntry{option: opt, marker: true}); err != nil {
					return nil, err
				}
			}
		}

		v.options = append(v.options, opt)
		v.byKey[opt.Key()] = opt

		if opt.Required {
			v.required = append(v.required, opt.Key())
		}
	}

	return v, nil
}

func (v *Validator) addName(name string, entry nameEntry) error {
	if _, exists := v.names[name]; exists {
		return clargserr.Newf(clargserr.DuplicateOptionName, "duplicate option name %q", name)
	}

	v.names[name] = entry

	return nil
}

// Options returns every option in schema order.
func (v *Validator) Options() []*schema.Option {
	return v.options
}

// Lookup resolves a name (including a negation name or positional marker)
// to its option and name-kind.
func (v *Validator) Lookup(name string) (opt *schema.Option, negation, marker bool, ok bool) {
	entry, ok := v.names[name]
	if !ok {
		return nil, false, false, false
	}

	return entry.option, entry.negation, entry.marker, true
}

// ByKey resolves an option by its values-record key.
func (v *Validator) ByKey(key string) *schema.Option {
	return v.byKey[key]
}

// Positional returns the schema's single positional option, if any.
func (v *Validator) Positional() *schema.Option {
	return v.positional
}

// Required returns the keys of every always-required option.
func (v *Validator) Required() []string {
	return v.required
}

// Names returns every registered name, in no particular order, for
// similar-name suggestions.
func (v *Validator) Names() []string {
	names := make([]string, 0, len(v.names))
	for n := range v.names {
		names = append(names, n)
	}

	return names
}

// OptionInfo is a read-only introspection projection of one option.
type OptionInfo struct {
	Key   string
	Kind  schema.Kind
	Group string
	Hide  bool
}

// Describe returns a read-only projection of every option, for callers that
// want schema metadata without constructing a help formatter.
func (v *Validator) Describe() []OptionInfo {
	out := make([]OptionInfo, 0, len(v.options))
	for _, opt := range v.options {
		out = append(out, OptionInfo{Key: opt.Key(), Kind: opt.Kind, Group: opt.Group, Hide: opt.Hide})
	}

	return out
}

var invalidNameChars = regexp.MustCompile(`[\s=]`)

// Validate re-walks the schema for the deeper checks that construction
// skips: name shape, requirement-tree well-formedness, and default/example
// normalization. It also normalizes each string option's Enums in place
// (invariant 4 of spec.md §3: duplicates are checked after string
// normalization).
func (v *Validator) Validate() error {
	for _, opt := range v.options {
		if err := v.validateNames(opt); err != nil {
			return err
		}

		if err := v.validateEnums(opt); err != nil {
			return err
		}

		if err := v.validateRequires(opt); err != nil {
			return err
		}

		if err := v.validateDefaultExample(opt); err != nil {
			return err
		}

		if opt.Kind == schema.KindVersion && opt.VersionLiteralSet && opt.VersionLiteral == "" {
			return clargserr.Newf(clargserr.OptionEmptyVersion,
				"option %q: version literal must not be empty", opt.Key())
		}
	}

	return nil
}

func (v *Validator) validateNames(opt *schema.Option) error {
	all := append(append([]string{}, opt.Names...), opt.NegationNames...)
	for _, n := range all {
		if n != "" && invalidNameChars.MatchString(n) {
			return clargserr.Newf(clargserr.InvalidOptionName,
				"option name %q must not contain whitespace or '='", n)
		}
	}

	if opt.Positional && opt.PositionalMarkerSet && opt.PositionalMarker == "" {
		return clargserr.New(clargserr.EmptyPositionalMarker,
			"positional marker must not be empty")
	}

	return nil
}

func (v *Validator) validateEnums(opt *schema.Option) error {
	switch opt.Kind {
	case schema.KindString, schema.KindStrings:
		if opt.Regex != nil && len(opt.Enums) > 0 {
			return clargserr.Newf(clargserr.OptionValueIncompatible,
				"option %q: enums and regex are mutually exclusive", opt.Key())
		}

		if opt.Enums == nil {
			return nil
		}

		if len(opt.Enums) == 0 {
			return clargserr.Newf(clargserr.OptionZeroEnum, "option %q: enums must not be empty", opt.Key())
		}

		normalized := make([]string, len(opt.Enums))
		seen := make(map[string]struct{}, len(opt.Enums))

		for i, e := range opt.Enums {
			n, _ := normalize.String(opt, e)
			normalized[i] = n

			if _, dup := seen[n]; dup {
				return clargserr.Newf(clargserr.DuplicateStringEnum, "option %q: duplicate enum %q", opt.Key(), n)
			}

			seen[n] = struct{}{}
		}

		opt.Enums = normalized

	case schema.KindNumber, schema.KindNumbers:
		if opt.NumRange != nil && len(opt.NumberEnums) > 0 {
			return clargserr.Newf(clargserr.OptionValueIncompatible,
				"option %q: enums and range are mutually exclusive", opt.Key())
		}

		if opt.NumberEnums == nil {
			return nil
		}

		if len(opt.NumberEnums) == 0 {
			return clargserr.Newf(clargserr.OptionZeroEnum, "option %q: enums must not be empty", opt.Key())
		}

		seen := make(map[float64]struct{}, len(opt.NumberEnums))

		for _, e := range opt.NumberEnums {
			if _, dup := seen[e]; dup {
				return clargserr.Newf(clargserr.DuplicateNumberEnum, "option %q: duplicate enum %g", opt.Key(), e)
			}

			seen[e] = struct{}{}
		}
	}

	return nil
}

func (v *Validator) validateRequires(opt *schema.Option) error {
	if opt.Requires == nil {
		return nil
	}

	for _, key := range schema.RequirementKeys(opt.Requires) {
		if key == opt.Key() {
			return clargserr.Newf(clargserr.OptionRequiresItself,
				"option %q cannot require itself", opt.Key())
		}

		ref := v.byKey[key]
		if ref == nil {
			return clargserr.Newf(clargserr.UnknownRequiredOption,
				"option %q requires unknown option %q", opt.Key(), key)
		}
	}

	return validateLeafValueKinds(opt.Requires, v.byKey, opt.Key())
}

// validateLeafValueKinds enforces invariant 7: a niladic option cannot be
// required with an expected value.
func validateLeafValueKinds(r schema.Requirement, byKey map[string]*schema.Option, owner string) error {
	switch n := r.(type) {
	case *schema.ReqLeaf:
		if n.Mode == schema.LeafEquals {
			if ref := byKey[n.Key]; ref != nil && ref.Kind.Niladic() {
				return clargserr.Newf(clargserr.NiladicOptionRequiredValue,
					"option %q: %q is niladic and cannot be required with a value", owner, n.Key)
			}
		}
	case *schema.ReqAll:
		for _, item := range n.Items {
			if err := validateLeafValueKinds(item, byKey, owner); err != nil {
				return err
			}
		}
	case *schema.ReqOne:
		for _, item := range n.Items {
			if err := validateLeafValueKinds(item, byKey, owner); err != nil {
				return err
			}
		}
	case *schema.ReqNot:
		return validateLeafValueKinds(n.Item, byKey, owner)
	}

	return nil
}

func (v *Validator) validateDefaultExample(opt *schema.Option) error {
	if opt.Kind.Niladic() {
		return nil
	}

	if opt.Default != nil && opt.DefaultFunc == nil {
		normalized, err := normalizeValue(opt, opt.Default)
		if err != nil {
			return withOption(err, opt.Key())
		}

		opt.Default = normalized
	}

	if opt.Example != nil {
		normalized, err := normalizeValue(opt, opt.Example)
		if err != nil {
			return withOption(err, opt.Key())
		}

		opt.Example = normalized
	}

	return nil
}

func withOption(err error, key string) error {
	var cerr *clargserr.Error
	if errors.As(err, &cerr) {
		return cerr.WithOption(key)
	}

	return err
}

// normalizeValue runs value through the normalization pipeline matching
// opt's kind, used identically by the validator (over default/example) and
// the parser (over parsed values) — see spec.md §3 invariant 5.
func normalizeValue(opt *schema.Option, value any) (any, error) {
	switch opt.Kind {
	case schema.KindBoolean:
		return value, nil
	case schema.KindString:
		s, _ := value.(string)

		return normalize.String(opt, s)
	case schema.KindNumber:
		n, _ := value.(float64)

		return normalize.Number(opt, n)
	case schema.KindStrings:
		items, _ := value.([]string)

		out := make([]string, len(items))

		for i, s := range items {
			n, err := normalize.String(opt, s)
			if err != nil {
				return nil, err
			}

			out[i] = n
		}

		return normalize.Array(opt.Unique, opt.Limit, out)
	case schema.KindNumbers:
		items, _ := value.([]float64)

		out := make([]float64, len(items))

		for i, n := range items {
			nv, err := normalize.Number(opt, n)
			if err != nil {
				return nil, err
			}

			out[i] = nv
		}

		return normalize.Array(opt.Unique, opt.Limit, out)
	default:
		return value, nil
	}
}

// NormalizeValue exposes normalizeValue to the parse package, so the same
// pipeline validated here runs again over parsed values and over invoked
// defaults.
func NormalizeValue(opt *schema.Option, value any) (any, error) {
	return normalizeValue(opt, value)
}
