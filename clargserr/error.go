package clargserr

import "fmt"

// Error is the concrete error type returned by every clargs package. Option
// is the name of the option involved, if any; Err, when set, is the
// underlying cause (e.g. a custom parse callback's error) and is exposed via
// Unwrap so callers can errors.As/errors.Is through it.
type Error struct {
	Kind    Kind
	Option  string
	Message string
	Err     error
}

// New builds an *Error with a literal message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithOption returns a copy of e with Option set, for error sites that learn
// the option name after construction (e.g. a wrapped normalizer error).
func (e *Error) WithOption(name string) *Error {
	clone := *e
	clone.Option = name

	return &clone
}

// Wrap sets Err on e and returns e, so Unwrap exposes the underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Err = err

	return e
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, clargserr.New(clargserr.MissingParameter, "")) works without
// requiring an exact message match.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return other.Kind == e.Kind
}

// ControlKind discriminates a [Control] payload.
type ControlKind int

const (
	// Help indicates Text is a fully rendered help message.
	Help ControlKind = iota
	// Version indicates Text is the resolved version string.
	Version
	// Completion indicates Text is a newline-joined list of candidate words.
	Completion
)

// Control is raised through the same channel as [Error] (both implement
// error) but carries a successful "stop and show this" result rather than a
// failure: a rendered help message, a resolved version string, or a
// shell-completion candidate list. Callers distinguish it from a genuine
// failure with errors.As(err, &ctrl).
type Control struct {
	Kind ControlKind
	Text string
}

func (c *Control) Error() string {
	return c.Text
}
