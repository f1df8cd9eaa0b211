package clargs

import (
	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/help"
	"go.jacobcolvin.com/clargs/parse"
	"go.jacobcolvin.com/clargs/schema"
	"go.jacobcolvin.com/clargs/validate"
)

// Option is a single CLI argument definition. Build one with a constructor
// such as [NewString] or [NewFlag], then compose it with its fluent With*
// setters.
type Option = schema.Option

// Values is the resolved bag an option's key maps into after a parse.
type Values = schema.Values

// Requirement is a boolean expression over option specification, built with
// [Req], [All], [One], and [Not], and attached to an option with
// [Option.WithRequires].
type Requirement = schema.Requirement

// Kind discriminates the option union (flag, string, strings, command, ...).
type Kind = schema.Kind

// Error is the concrete error type returned by schema validation, parsing,
// and value normalization.
type Error = clargserr.Error

// Control is raised through the same channel as [Error] but carries a
// successful stop-and-show-this result: rendered help, a version string, or
// shell-completion candidates. Distinguish it from a genuine failure with
// errors.As(err, &ctrl).
type Control = clargserr.Control

// FormatConfig controls how [Parser.WithHelpConfig] renders help text.
type FormatConfig = help.FormatConfig

// OptionInfo is a read-only introspection projection of one option, returned
// by [Parser.Describe].
type OptionInfo = validate.OptionInfo

// Kind-discriminating option constructors, re-exported from schema.
var (
	NewFlag        = schema.NewFlag
	NewFunction    = schema.NewFunction
	NewCommand     = schema.NewCommand
	NewHelp        = schema.NewHelp
	NewVersion     = schema.NewVersion
	NewBoolean     = schema.NewBoolean
	NewString      = schema.NewString
	NewNumber      = schema.NewNumber
	NewStrings     = schema.NewStrings
	NewNumbers     = schema.NewNumbers
	Req            = schema.Req
	ReqAbsent      = schema.ReqAbsent
	ReqEquals      = schema.ReqEquals
	All            = schema.All
	One            = schema.One
	Not            = schema.Not
	DefaultFormat  = help.DefaultFormatConfig
)

// Parser validates an option schema and runs the argument loop against a
// command line. It wraps [parse.Parser]; construct one with [New].
type Parser struct {
	inner *parse.Parser
}

// New validates options and returns a ready-to-use [Parser]. It runs the
// same deep structural checks as [Parser.Validate] up front, so a schema
// construction mistake (duplicate names, a self-referential requirement,
// a zero-length enum) surfaces immediately rather than on first parse.
func New(options []*Option) (*Parser, error) {
	p, err := parse.New(options)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Parser{inner: p}, nil
}

// WithHelpConfig overrides the layout and phrasing used to render help
// text.
func (p *Parser) WithHelpConfig(cfg *FormatConfig) *Parser {
	p.inner = p.inner.WithHelpConfig(cfg)

	return p
}

// WithManifestPath sets the path passed to a version option's resolver.
func (p *Parser) WithManifestPath(path string) *Parser {
	p.inner = p.inner.WithManifestPath(path)

	return p
}

// Describe returns a read-only projection of every option in the schema.
func (p *Parser) Describe() []OptionInfo {
	return p.inner.Describe()
}

// Parse tokenizes command and runs it to completion, blocking on every
// pending future before returning. With no command given, it falls back to
// COMP_LINE/COMP_POINT (shell completion) or os.Args.
//
// A help or version option short-circuits the parse: the returned error is
// a *[Control], not a failure, and its Text is the rendered response.
func (p *Parser) Parse(command ...string) (Values, error) {
	return p.inner.Parse(command...)
}

// ParseAsync behaves like [Parser.Parse] but returns immediately, handing
// back any array or function options still resolving as pending futures
// for the caller to await.
func (p *Parser) ParseAsync(command ...string) (parse.Result, error) {
	return p.inner.ParseAsync(command...)
}

// ParseTokens runs the argument loop over args exactly as given, with no
// raw-line-vs-pre-tokenized guessing: use this when args is already split
// (e.g. os.Args[1:], or a cobra command's trailing args) and a single
// leftover element must not be re-split by the shell-aware tokenizer.
// [Parser.Parse] and [Parser.ParseAsync] disambiguate a one-element command
// from a raw line by treating it as a line to tokenize; ParseTokens never
// does, at any length, including zero or one.
func (p *Parser) ParseTokens(args []string) (Values, error) {
	res, err := p.inner.ParseInto(schema.Values{}, args, parse.Config{})
	if err != nil {
		return nil, err
	}

	for _, f := range res.Futures {
		r := <-f.Done
		if r.Err != nil {
			return nil, r.Err
		}

		res.Values[f.Key] = r.Value
	}

	return res.Values, nil
}
