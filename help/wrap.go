package help

import (
	"strings"

	"go.jacobcolvin.com/clargs/term"
)

// wrap renders body word-wrapped into the window starting at column start
// with the given width, per spec.md §4.7. If start+maxWordLen(body) would
// never fit, it degrades to wrapping from column 0 with no indent.
func wrap(body *term.String, start, width int) string {
	tokens := body.Tokens()

	maxWord := 0

	for _, t := range tokens {
		if t.Kind != term.KindText {
			continue
		}

		if w := term.New().AddWords(t.Text).Length(); w > maxWord {
			maxWord = w
		}
	}

	col := start

	var out strings.Builder

	if start+maxWord > width {
		col = 0
		out.WriteString("\n")
	}

	out.WriteString(term.CursorHorizontalAbsolute(col))

	lineLen := 0

	newLine := func() {
		out.WriteString("\n")
		out.WriteString(term.CursorHorizontalAbsolute(col))
		lineLen = 0
	}

	firstOnLine := true

	for _, t := range tokens {
		if t.Kind == term.KindControl {
			out.WriteString(t.Text)

			continue
		}

		if t.Text == "\n" {
			newLine()
			firstOnLine = true

			continue
		}

		wl := term.New().AddWords(t.Text).Length()

		sep := 0
		if !firstOnLine && !t.Merge {
			sep = 1
		}

		if !firstOnLine && col+lineLen+sep+wl > width {
			newLine()
			firstOnLine = true
			sep = 0
		}

		if sep == 1 {
			out.WriteString(" ")
			lineLen++
		}

		out.WriteString(t.Text)
		lineLen += wl
		firstOnLine = false
	}

	return out.String()
}
