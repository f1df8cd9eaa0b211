package help

import (
	"fmt"
	"strconv"
	"strings"

	"go.jacobcolvin.com/clargs/schema"
	"go.jacobcolvin.com/clargs/term"
)

// Entry is one option's rendered row, prior to column placement and
// wrapping.
type Entry struct {
	Option *schema.Option
	Names  *term.String
	Param  *term.String
	Desc   *term.String
	Group  string
}

// buildEntries builds one [Entry] per non-hidden option, in schema order.
func (f *HelpFormatter) buildEntries() []Entry {
	slotWidths := f.nameSlotWidths()

	entries := make([]Entry, 0, len(f.options))

	for _, opt := range f.options {
		if opt.Hide {
			continue
		}

		entries = append(entries, Entry{
			Option: opt,
			Names:  f.buildNames(opt, slotWidths),
			Param:  f.buildParam(opt),
			Desc:   f.buildDesc(opt),
			Group:  opt.Group,
		})
	}

	return entries
}

// nameSlotWidths computes, for each name-list index, the maximum visible
// width of any non-hidden option's name at that index — the alignment
// spec.md §4.6 calls the names column's "sub-slots".
func (f *HelpFormatter) nameSlotWidths() []int {
	var widths []int

	for _, opt := range f.options {
		if opt.Hide {
			continue
		}

		for i, n := range opt.Names {
			for len(widths) <= i {
				widths = append(widths, 0)
			}

			if w := term.New().AddText(n).Length(); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

const nameSlotSeparator = 2 // ", "

func (f *HelpFormatter) buildNames(opt *schema.Option, slotWidths []int) *term.String {
	s := term.New()
	s.AddSequence(f.config.Styles.Names)

	lastSlotWithContent := -1

	for i := range opt.Names {
		if opt.Names[i] != "" {
			lastSlotWithContent = i
		}
	}

	// Compute absolute target columns up front so moves are always
	// forward-only (cuf never needs to move left).
	targets := make([]int, len(slotWidths))
	acc := 0

	for i, w := range slotWidths {
		targets[i] = acc
		acc += w + nameSlotSeparator
	}

	cur := 0

	for i, n := range opt.Names {
		if i >= len(targets) {
			break
		}

		if targets[i] > cur {
			s.AddSequence(term.CursorForward(targets[i] - cur))
			cur = targets[i]
		}

		if n == "" {
			continue
		}

		s.AddWords(n)
		cur += term.New().AddText(n).Length()

		if i < lastSlotWithContent {
			s.AddWords(",")
			cur++
		}
	}

	s.AddSequence(term.Reset())

	return s
}

func (f *HelpFormatter) buildParam(opt *schema.Option) *term.String {
	if opt.Kind.Niladic() || opt.Hide {
		return term.New()
	}

	s := term.New()
	s.AddSequence(f.config.Styles.Param)

	switch {
	case opt.Example != nil:
		s.AddWords(formatValue(opt, opt.Example))
	case opt.ParamName != "":
		s.AddWords(bracket(opt.ParamName))
	default:
		s.AddWords(bracket(opt.Kind.String()))
	}

	s.AddSequence(term.Reset())

	return s
}

func bracket(name string) string {
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		return name
	}

	return "<" + name + ">"
}

func formatValue(opt *schema.Option, v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ",")
	case []float64:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.FormatFloat(n, 'g', -1, 64)
		}

		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}

func (f *HelpFormatter) buildDesc(opt *schema.Option) *term.String {
	s := term.New()
	s.AddSequence(f.config.Styles.Desc)

	first := true

	for _, item := range f.config.Items {
		phrase, text := renderItem(opt, item, f.config.Phrases[item])
		if !phrase {
			continue
		}

		if !first {
			s.AddText(".")
		}

		s.AddText(text)
		first = false
	}

	s.AddSequence(term.Reset())

	return s
}

// renderItem reports whether item applies to opt and, if so, the resolved
// phrase text.
func renderItem(opt *schema.Option, item DescItem, template string) (bool, string) {
	alt := 0

	switch item {
	case ItemNegation:
		if len(opt.NegationNames) == 0 {
			return false, ""
		}

		return true, term.SplitText(template, 0, func(spec string) string {
			if spec == "%n" {
				return strings.Join(opt.NegationNames, ", ")
			}

			return spec
		})
	case ItemSeparator:
		if opt.Separator == "" && opt.SeparatorRegex == nil {
			return false, ""
		}

		if opt.SeparatorRegex != nil {
			alt = 1
		}

		sep := opt.Separator
		if opt.SeparatorRegex != nil {
			sep = opt.SeparatorRegex.String()
		}

		return true, term.SplitText(template, alt, func(spec string) string {
			if spec == "%s" {
				return sep
			}

			return spec
		})
	case ItemVariadic:
		if !opt.Kind.Array() {
			return false, ""
		}

		return true, template
	case ItemPositional:
		if !opt.Positional {
			return false, ""
		}

		return true, template
	case ItemAppend:
		if !opt.Append {
			return false, ""
		}

		return true, template
	case ItemTrim:
		if !opt.Trim {
			return false, ""
		}

		return true, template
	case ItemCase:
		if opt.Case == schema.CaseNone {
			return false, ""
		}

		if opt.Case == schema.CaseUpper {
			alt = 1
		}

		return true, term.SplitText(template, alt, nil)
	case ItemRound:
		if opt.Round == schema.RoundNone {
			return false, ""
		}

		switch opt.Round {
		case schema.RoundFloor:
			alt = 0
		case schema.RoundCeil:
			alt = 1
		case schema.RoundRound:
			alt = 2
		case schema.RoundTrunc:
			alt = 3
		}

		return true, term.SplitText(template, alt, nil)
	case ItemEnums:
		var enumStrs []string

		switch {
		case len(opt.Enums) > 0:
			enumStrs = opt.Enums
		case len(opt.NumberEnums) > 0:
			for _, n := range opt.NumberEnums {
				enumStrs = append(enumStrs, strconv.FormatFloat(n, 'g', -1, 64))
			}
		default:
			return false, ""
		}

		return true, term.SplitText(template, 0, func(spec string) string {
			if spec == "%e" {
				return strings.Join(enumStrs, ", ")
			}

			return spec
		})
	case ItemRegex:
		if opt.Regex == nil {
			return false, ""
		}

		return true, term.SplitText(template, 0, func(spec string) string {
			if spec == "%r" {
				return opt.Regex.String()
			}

			return spec
		})
	case ItemRange:
		if opt.NumRange == nil {
			return false, ""
		}

		lo := strconv.FormatFloat(opt.NumRange.Lo, 'g', -1, 64)
		hi := strconv.FormatFloat(opt.NumRange.Hi, 'g', -1, 64)
		filled := false

		return true, term.SplitText(template, 0, func(spec string) string {
			if spec == "%g" {
				if !filled {
					filled = true

					return lo
				}

				return hi
			}

			return spec
		})
	case ItemUnique:
		if !opt.Unique {
			return false, ""
		}

		return true, template
	case ItemLimit:
		if opt.Limit <= 0 {
			return false, ""
		}

		if opt.Limit == 1 {
			alt = 1
		}

		return true, term.SplitText(template, alt, func(spec string) string {
			if spec == "%d" {
				return strconv.Itoa(opt.Limit)
			}

			return spec
		})
	case ItemRequires:
		if opt.Requires == nil {
			return false, ""
		}

		keys := schema.RequirementKeys(opt.Requires)

		return true, term.SplitText(template, 0, func(spec string) string {
			if spec == "%q" {
				return strings.Join(keys, ", ")
			}

			return spec
		})
	case ItemRequired:
		if !opt.Required {
			return false, ""
		}

		return true, template
	case ItemDefault:
		if opt.Default == nil && opt.DefaultFunc == nil {
			return false, ""
		}

		if opt.DefaultFunc != nil {
			return true, "has a computed default"
		}

		return true, term.SplitText(template, 0, func(spec string) string {
			if spec == "%v" {
				return formatValue(opt, opt.Default)
			}

			return spec
		})
	case ItemDeprecated:
		if !opt.Deprecated {
			return false, ""
		}

		return true, template
	case ItemLink:
		if opt.Link == "" {
			return false, ""
		}

		return true, term.SplitText(template, 0, func(spec string) string {
			if spec == "%u" {
				return opt.Link
			}

			return spec
		})
	case ItemSynopsis:
		if opt.Desc == "" {
			return false, ""
		}

		return true, opt.Desc
	default:
		return false, ""
	}
}
