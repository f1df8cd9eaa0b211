package help

import (
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"go.jacobcolvin.com/clargs/schema"
	clargsterm "go.jacobcolvin.com/clargs/term"
	"go.jacobcolvin.com/clargs/validate"
)

// HelpFormatter renders a validated schema into the styled, column-aligned,
// word-wrapped help text described in spec.md §4.6.
type HelpFormatter struct {
	options []*schema.Option
	config  *FormatConfig
	v       *validate.Validator
}

// New constructs a [HelpFormatter] over v. A nil config uses
// [DefaultFormatConfig].
func New(v *validate.Validator, config *FormatConfig) *HelpFormatter {
	if config == nil {
		config = DefaultFormatConfig()
	}

	return &HelpFormatter{config: config, v: v, options: v.Options()}
}

// FormatHelp renders the default (empty-named) group at width, falling back
// to the platform terminal width and then [FormatConfig.FallbackWidth] when
// width is 0.
func (f *HelpFormatter) FormatHelp(width int) string {
	groups := f.FormatGroups(width)

	return groups[""]
}

// FormatGroups renders every group, keyed by its group name.
func (f *HelpFormatter) FormatGroups(width int) map[string]string {
	if width <= 0 {
		width = detectWidth(f.config.FallbackWidth)
	}

	entries := f.buildEntries()

	byGroup := make(map[string][]Entry)
	for _, e := range entries {
		byGroup[e.Group] = append(byGroup[e.Group], e)
	}

	namesWidth, paramWidth := f.columnWidths(entries)

	out := make(map[string]string, len(byGroup))

	for group, es := range byGroup {
		out[group] = f.renderGroup(es, width, namesWidth, paramWidth)
	}

	return out
}

// WriteGroups writes every group to w, each preceded by a header line
// naming the group (the default group is written first, unheaded).
func (f *HelpFormatter) WriteGroups(w io.Writer, width int) error {
	groups := f.FormatGroups(width)

	if def, ok := groups[""]; ok {
		if _, err := io.WriteString(w, def); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(groups))

	for g := range groups {
		if g != "" {
			names = append(names, g)
		}
	}

	sort.Strings(names)

	for _, g := range names {
		if _, err := io.WriteString(w, "\n"+g+":\n"+groups[g]); err != nil {
			return err
		}
	}

	return nil
}

func (f *HelpFormatter) columnWidths(entries []Entry) (names, param int) {
	for _, e := range entries {
		if w := e.Names.Length(); w > names {
			names = w
		}

		if w := e.Param.Length(); w > param {
			param = w
		}
	}

	return names, param
}

func (f *HelpFormatter) renderGroup(entries []Entry, width, namesWidth, paramWidth int) string {
	var b strings.Builder

	namesCol := f.config.Names.Indent
	paramCol := namesCol + namesWidth + f.config.Param.Indent
	if f.config.Param.IndentAbsolute {
		paramCol = f.config.Param.Indent
	}

	descCol := paramCol + paramWidth + f.config.Desc.Indent
	if f.config.Desc.IndentAbsolute {
		descCol = f.config.Desc.Indent
	}

	for i, e := range entries {
		if i > 0 || f.config.Names.Break {
			b.WriteString("\n")
		}

		b.WriteString(clargsterm.CursorHorizontalAbsolute(namesCol))
		b.WriteString(e.Names.Render())

		if e.Param.Length() > 0 {
			if f.config.Param.Break {
				b.WriteString("\n")
			}

			b.WriteString(clargsterm.CursorHorizontalAbsolute(paramCol))
			b.WriteString(e.Param.Render())
		}

		if e.Desc.Length() > 0 {
			if f.config.Desc.Break {
				b.WriteString("\n")
			}

			b.WriteString(wrap(e.Desc, descCol, width))
		}
	}

	return b.String()
}

// detectWidth consults the platform terminal width on stdout, falling back
// to fallback when it cannot be determined (not a terminal, or the query
// fails).
func detectWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}

	return w
}
