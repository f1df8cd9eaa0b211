package parse

import (
	"strings"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/schema"
)

// completionControl computes the candidate list for cfg.CompIndex in args
// and wraps it as the newline-joined result spec.md §6 says completion mode
// throws.
func (st *loopState) completionControl(args []string) *clargserr.Control {
	return &clargserr.Control{
		Kind: clargserr.Completion,
		Text: strings.Join(st.completionCandidates(args), "\n"),
	}
}

// completionCandidates resolves the word under the completion cursor: when
// the preceding token names a parametric option, its own [schema.Option.Complete]
// callback (or, lacking one, its enum values) supplies candidates; otherwise
// every option name is offered. Either way, results are filtered to those
// sharing partial's prefix.
func (st *loopState) completionCandidates(args []string) []string {
	idx := st.cfg.CompIndex

	partial := ""
	if idx >= 0 && idx < len(args) {
		partial = args[idx]
	}

	if idx > 0 && idx-1 < len(args) {
		left, _, _ := splitInline(args[idx-1])

		if opt, _, isMarker, ok := st.p.v.Lookup(left); ok && !isMarker && !opt.Kind.Niladic() {
			if opt.Complete != nil {
				return filterPrefix(opt.Complete(st.values, partial), partial)
			}

			return filterPrefix(enumCandidates(opt), partial)
		}
	}

	return filterPrefix(st.p.v.Names(), partial)
}

// enumCandidates returns opt's fixed value set, when it has one, as
// completion candidates.
func enumCandidates(opt *schema.Option) []string {
	if len(opt.Enums) > 0 {
		return opt.Enums
	}

	return nil
}

func filterPrefix(candidates []string, partial string) []string {
	out := make([]string, 0, len(candidates))

	for _, c := range candidates {
		if strings.HasPrefix(c, partial) {
			out = append(out, c)
		}
	}

	return out
}
