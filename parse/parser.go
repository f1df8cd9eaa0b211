package parse

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/help"
	"go.jacobcolvin.com/clargs/schema"
	"go.jacobcolvin.com/clargs/validate"
)

// Parser runs the argument loop of spec.md §4.2 against a validated
// schema. It is safe to reuse across many parses: the schema it wraps is
// read-only, and every parse operates on its own fresh [schema.Values].
type Parser struct {
	v            *validate.Validator
	helpConfig   *help.FormatConfig
	manifestPath string
}

// New constructs a [Parser], building a [validate.Validator] over options.
// Call [Parser.Validate] afterward to run the deeper schema checks of
// spec.md §4.1 before the first parse.
func New(options []*schema.Option) (*Parser, error) {
	v, err := validate.New(options)
	if err != nil {
		return nil, err
	}

	return &Parser{v: v}, nil
}

// Validate runs the validator's deep structural checks.
func (p *Parser) Validate() error {
	return p.v.Validate()
}

// Describe returns a read-only projection of every option in the schema, for
// callers that want schema metadata (e.g. to drive a "--list-options" flag)
// without constructing a help formatter.
func (p *Parser) Describe() []validate.OptionInfo {
	return p.v.Describe()
}

// WithHelpConfig overrides the [help.FormatConfig] used to render a help
// response.
func (p *Parser) WithHelpConfig(cfg *help.FormatConfig) *Parser {
	p.helpConfig = cfg

	return p
}

// WithManifestPath sets the path passed to a version option's
// [schema.ResolveFunc]. Resolving the manifest itself is out of scope for
// this library; callers that want a filesystem-discovered manifest path
// locate it themselves and pass it here.
func (p *Parser) WithManifestPath(path string) *Parser {
	p.manifestPath = path

	return p
}

// Parse tokenizes command and runs it to completion, blocking on every
// pending future before returning. With no command given, it falls back to
// COMP_LINE/COMP_POINT or os.Args. Use [Parser.ParseAsync] to get futures
// back uncollected.
func (p *Parser) Parse(command ...string) (schema.Values, error) {
	args, cfg := p.resolveArgs(command)

	res, err := p.ParseInto(schema.Values{}, args, cfg)
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

// ParseAsync behaves like [Parser.Parse] but returns immediately, handing
// back any pending futures for the caller to await itself.
func (p *Parser) ParseAsync(command ...string) (Result, error) {
	args, cfg := p.resolveArgs(command)

	return p.ParseInto(schema.Values{}, args, cfg)
}

// resolveArgs resolves an explicitly given command (present means the
// caller supplied it, even if it's the empty string) into a token sequence:
// a single element is a raw line run through the shell-aware tokenizer, more
// than one element is already a pre-tokenized sequence and is used as-is.
// With no command given, it consults COMP_LINE/COMP_POINT for shell-
// completion mode, falling back to os.Args.
func (p *Parser) resolveArgs(command []string) ([]string, Config) {
	if len(command) == 1 {
		tokens, _ := Tokenize(command[0], -1)

		return tokens, Config{}
	}

	if len(command) > 1 {
		return command, Config{}
	}

	if line, ok := os.LookupEnv("COMP_LINE"); ok {
		point := len(line)
		if raw, ok := os.LookupEnv("COMP_POINT"); ok {
			if n, err := strconv.Atoi(raw); err == nil {
				point = n
			}
		}

		tokens, idx := Tokenize(line, point)
		if len(tokens) > 0 {
			tokens = tokens[1:] // drop the program name
			idx--
		}

		return tokens, Config{Completing: true, CompIndex: idx}
	}

	if len(os.Args) > 1 {
		return append([]string{}, os.Args[1:]...), Config{}
	}

	return nil, Config{}
}

// ParseInto runs the 4-state argument loop over args, mutating values in
// place and returning it alongside any pending futures.
//
// In completion mode (cfg.Completing), a parse error never reaches the
// caller: completion candidates take precedence over correctness feedback.
// The loop still runs to build up context (which options were already
// specified, their values so far), but ParseInto always resolves to either
// a nested help/version/completion [clargserr.Control] raised during the
// run, or a freshly computed completion candidate list — never a plain
// error, and never the parsed values themselves.
func (p *Parser) ParseInto(values schema.Values, args []string, cfg Config) (Result, error) {
	st := &loopState{
		p:         p,
		values:    values,
		specified: map[string]bool{},
		futures:   map[string]<-chan schema.FutureResult{},
		cfg:       cfg,
	}

	ctrl, err := st.run(args)

	if cfg.Completing {
		if existing := asControl(ctrl, err); existing != nil {
			return Result{}, existing
		}

		return Result{}, st.completionControl(args)
	}

	if err != nil {
		return Result{}, err
	}

	if ctrl != nil {
		return Result{}, ctrl
	}

	if err := st.finalize(); err != nil {
		return Result{}, err
	}

	return Result{Values: st.values, Futures: st.collectFutures()}, nil
}

// asControl returns whichever of ctrl or the control wrapped in err (if
// any) should take precedence — a help/version/completion result reached
// mid-parse (possibly from a nested command) outranks a fresh completion
// candidate list computed from where the top-level loop stopped.
func asControl(ctrl *controlErr, err error) *controlErr {
	if ctrl != nil {
		return ctrl
	}

	var existing *controlErr
	if err != nil && errors.As(err, &existing) {
		return existing
	}

	return nil
}

// loopState holds the mutable state threaded through one ParseInto call.
type loopState struct {
	p          *Parser
	values     schema.Values
	specified  map[string]bool
	futures    map[string]<-chan schema.FutureResult
	cfg        Config
	markerMode bool
	finalized  bool

	// pendingArray/pendingRaw track a variadic, separator-less array
	// option that is greedily consuming subsequent bare tokens.
	pendingArray *schema.Option
	pendingRaw   []string
}

func (st *loopState) collectFutures() []schema.PendingFuture {
	out := make([]schema.PendingFuture, 0, len(st.futures))
	for key, ch := range st.futures {
		out = append(out, schema.PendingFuture{Key: key, Done: ch})
	}

	return out
}

// chainFuture records ch as the new resolution point for key, chaining
// behind any future already pending for that key so earlier writes settle
// before later ones (spec.md §5's left-to-right ordering guarantee).
func (st *loopState) chainFuture(key string, ch <-chan schema.FutureResult) {
	prior, exists := st.futures[key]
	if !exists {
		st.futures[key] = ch

		return
	}

	merged := make(chan schema.FutureResult, 1)

	go func() {
		r := <-prior
		if r.Err != nil {
			merged <- r

			return
		}

		merged <- <-ch
	}()

	st.futures[key] = merged
}

func splitInline(tok string) (name, value string, hasValue bool) {
	if idx := strings.IndexByte(tok, '='); idx >= 0 {
		return tok[:idx], tok[idx+1:], true
	}

	return tok, "", false
}

// controlErr lets run() signal a help/version/completion stop without
// treating it as a failure.
type controlErr = clargserr.Control

func (st *loopState) run(args []string) (*controlErr, error) {
	i := 0

	for i < len(args) {
		tok := args[i]

		if st.markerMode {
			if err := st.recordPositional(tok); err != nil {
				return nil, err
			}

			i++

			continue
		}

		left, inlineVal, hasInline := splitInline(tok)

		if opt, negation, isMarker, ok := st.p.v.Lookup(left); ok {
			if err := st.flushPendingArray(); err != nil {
				return nil, err
			}

			if isMarker {
				if hasInline {
					return nil, clargserr.New(clargserr.PositionalInlineValue,
						"positional marker cannot carry an inline value").WithOption(left)
				}

				st.markerMode = true
				i++

				continue
			}

			i++

			// A command option hands rest to a nested Parser whose local
			// token indices start over at 0; shift CompIndex to match
			// while dispatching, so nested completion lands on the right
			// token instead of one still counted from the outer stream.
			savedCompIndex := st.cfg.CompIndex
			if st.cfg.Completing {
				st.cfg.CompIndex = savedCompIndex - i
			}

			ctrl, stop, consumed, err := st.dispatch(opt, negation, hasInline, inlineVal, args[i:])
			st.cfg.CompIndex = savedCompIndex

			if err != nil {
				return nil, err
			}

			if ctrl != nil {
				return ctrl, nil
			}

			i += consumed

			if stop || opt.Kind == schema.KindCommand {
				return nil, nil // loop ends here; ParseInto's finalize runs next
			}

			continue
		}

		if st.pendingArray != nil {
			st.pendingRaw = append(st.pendingRaw, tok)
			i++

			continue
		}

		if positional := st.p.v.Positional(); positional != nil {
			if err := st.recordPositional(tok); err != nil {
				return nil, err
			}

			i++

			continue
		}

		similar := similarNames(left, st.p.v.Names())
		if len(similar) > 0 {
			return nil, clargserr.Newf(clargserr.UnknownOptionWithSimilar,
				"unknown option %q, did you mean %s?", left, strings.Join(similar, ", "))
		}

		return nil, clargserr.Newf(clargserr.UnknownOption, "unknown option %q", left)
	}

	if err := st.flushPendingArray(); err != nil {
		return nil, err
	}

	return nil, nil
}

func (st *loopState) recordPositional(raw string) error {
	opt := st.p.v.Positional()
	if opt == nil {
		return clargserr.New(clargserr.UnknownOption, "no positional parameter accepted")
	}

	st.specified[opt.Key()] = true

	if opt.Kind.Array() {
		return st.appendArrayRaw(opt, []string{raw})
	}

	return st.storeScalar(opt, raw)
}

func (st *loopState) storeScalar(opt *schema.Option, raw string) error {
	converted, err := convertScalar(opt.Key(), opt.Kind, raw)
	if err != nil {
		return err
	}

	normalized, err := validate.NormalizeValue(opt, converted)
	if err != nil {
		return wrapOption(err, opt.Key())
	}

	st.values[opt.Key()] = normalized

	return nil
}

// flushPendingArray finalizes a greedily-collected variadic array, run
// whenever another name token or the end of the stream ends its run.
func (st *loopState) flushPendingArray() error {
	if st.pendingArray == nil {
		return nil
	}

	opt := st.pendingArray
	raw := st.pendingRaw
	st.pendingArray = nil
	st.pendingRaw = nil

	return st.appendArrayRaw(opt, raw)
}
