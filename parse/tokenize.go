package parse

import "strings"

// Tokenize splits command the way a POSIX shell would: single quotes
// suppress all interpretation, double quotes allow backslash escaping of
// `"` and `\`, and an unquoted backslash escapes the following rune.
// compPoint, if >= 0, is a byte offset into command (as COMP_POINT gives
// it); Tokenize returns the index of the token that offset falls within, or
// len(tokens) if it falls past the end, so completion can target the word
// under the cursor rather than always the last word.
func Tokenize(command string, compPoint int) (tokens []string, compIndex int) {
	var (
		cur       strings.Builder
		inSingle  bool
		inDouble  bool
		haveToken bool
	)

	flush := func() {
		if haveToken {
			tokens = append(tokens, cur.String())
			cur.Reset()
			haveToken = false
		}
	}

	compIndex = -1

	for i := 0; i < len(command); i++ {
		c := command[i]

		if compPoint >= 0 && i == compPoint && compIndex == -1 {
			compIndex = len(tokens)
		}

		switch {
		case inSingle:
			if c == '\'' {
				inSingle = false
			} else {
				cur.WriteByte(c)
			}
		case inDouble:
			switch c {
			case '"':
				inDouble = false
			case '\\':
				if i+1 < len(command) && (command[i+1] == '"' || command[i+1] == '\\') {
					i++
					cur.WriteByte(command[i])
				} else {
					cur.WriteByte(c)
				}
			default:
				cur.WriteByte(c)
			}
		case c == '\'':
			inSingle = true
			haveToken = true
		case c == '"':
			inDouble = true
			haveToken = true
		case c == '\\':
			if i+1 < len(command) {
				i++
				cur.WriteByte(command[i])
				haveToken = true
			}
		case c == ' ' || c == '\t' || c == '\n':
			flush()
		default:
			cur.WriteByte(c)
			haveToken = true
		}
	}

	flush()

	if compPoint >= 0 && compIndex == -1 {
		compIndex = len(tokens)
	}

	return tokens, compIndex
}
