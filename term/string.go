package term

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Kind discriminates a [Token]: a text token contributes to visible width,
// a control token (an escape sequence) never does.
type Kind int

const (
	KindText Kind = iota
	KindControl
)

// Token is one unit of a [String]: either a run of visible text or a
// control sequence spliced between visible runs.
type Token struct {
	Kind Kind
	Text string
	// Merge marks a text token that attaches to its predecessor without an
	// intervening space when the string is rendered — trailing punctuation,
	// a closing bracket, or the token immediately following an opening one.
	Merge bool
}

// String is an ordered sequence of [Token]s: the styled-string builder of
// spec.md §4.5. Width is computed token-by-token as text is appended, so a
// control token is simply never counted rather than stripped back out of a
// finished string.
type String struct {
	tokens []Token
}

// New returns an empty [String].
func New() *String { return &String{} }

var openBrackets = map[byte]bool{'(': true, '[': true, '{': true}

func mergesPredecessor(word string) bool {
	if word == "" {
		return false
	}

	switch word[0] {
	case ')', ']', '}', ',', '.', ':', ';', '!', '?':
		return true
	default:
		return false
	}
}

// AddSequence appends one or more control sequences, dropping any that
// exactly repeats the immediately preceding control token.
func (s *String) AddSequence(seqs ...string) *String {
	for _, seq := range seqs {
		if seq == "" {
			continue
		}

		if n := len(s.tokens); n > 0 && s.tokens[n-1].Kind == KindControl && s.tokens[n-1].Text == seq {
			continue
		}

		s.tokens = append(s.tokens, Token{Kind: KindControl, Text: seq})
	}

	return s
}

// AddText splits each string on whitespace and appends the resulting words
// via [String.AddWords].
func (s *String) AddText(strs ...string) *String {
	for _, str := range strs {
		s.AddWords(strings.Fields(str)...)
	}

	return s
}

// AddWords appends pre-split words as text tokens, computing each word's
// merge flag from its own leading punctuation and from whether the
// preceding text token ended with an opening bracket.
func (s *String) AddWords(words ...string) *String {
	for _, w := range words {
		if w == "" {
			continue
		}

		merge := mergesPredecessor(w)

		if !merge {
			if prev := s.lastText(); prev != "" && openBrackets[prev[len(prev)-1]] {
				merge = true
			}
		}

		s.tokens = append(s.tokens, Token{Kind: KindText, Text: w, Merge: merge})
	}

	return s
}

func (s *String) lastText() string {
	for i := len(s.tokens) - 1; i >= 0; i-- {
		if s.tokens[i].Kind == KindText {
			return s.tokens[i].Text
		}
	}

	return ""
}

// AddAndRevert wraps text in a style sequence and its revert, as a single
// fluent step: AddSequence(style), AddText(text), AddSequence(revert).
func (s *String) AddAndRevert(style, text, revert string) *String {
	return s.AddSequence(style).AddText(text).AddSequence(revert)
}

// Tokens returns the builder's tokens in order.
func (s *String) Tokens() []Token {
	return s.tokens
}

// Length returns the total visible width, ignoring control tokens.
func (s *String) Length() int {
	total := 0
	for _, t := range s.tokens {
		if t.Kind == KindText {
			total += runewidth.StringWidth(t.Text)
		}
	}

	return total
}

// Lengths returns the visible width of each text token, in order, for the
// help formatter's wrapping algorithm to consume directly rather than
// re-measuring rendered output.
func (s *String) Lengths() []int {
	out := make([]int, 0, len(s.tokens))
	for _, t := range s.tokens {
		if t.Kind == KindText {
			out = append(out, runewidth.StringWidth(t.Text))
		}
	}

	return out
}

// Render concatenates the builder into its final escaped string, inserting
// a single space between consecutive text tokens unless the later one is
// flagged to merge with its predecessor.
func (s *String) Render() string {
	var b strings.Builder

	prevWasText := false

	for _, t := range s.tokens {
		switch t.Kind {
		case KindControl:
			b.WriteString(t.Text)
		case KindText:
			if prevWasText && !t.Merge {
				b.WriteByte(' ')
			}

			b.WriteString(t.Text)
			prevWasText = true
		}
	}

	return b.String()
}

func (s *String) String() string { return s.Render() }

// placeholderRe matches a %-placeholder: a bare "%x" or an indexed form
// like "%x1"/"%x2" used to pick between alternatives in [SplitText].
var placeholderRe = regexp.MustCompile(`%[a-zA-Z](\d*)`)

// altGroupRe matches a parenthesized "(a|b|c)" alternation group.
var altGroupRe = regexp.MustCompile(`\(([^()]+)\)`)

// SplitText resolves a description phrase against one alternative index:
// each "(a|b|c)" group is replaced by its altIndex-th member (falling back
// to the first when altIndex is out of range), and each "%x"-style
// placeholder is replaced by calling onPlaceholder with its matched text.
// It does not append anything to the builder; callers feed the result into
// [String.AddText].
func SplitText(phrase string, altIndex int, onPlaceholder func(spec string) string) string {
	resolved := altGroupRe.ReplaceAllStringFunc(phrase, func(group string) string {
		inner := group[1 : len(group)-1]
		alts := strings.Split(inner, "|")

		idx := altIndex
		if idx < 0 || idx >= len(alts) {
			idx = 0
		}

		return alts[idx]
	})

	if onPlaceholder == nil {
		return resolved
	}

	return placeholderRe.ReplaceAllStringFunc(resolved, onPlaceholder)
}
