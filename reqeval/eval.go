package reqeval

import (
	"fmt"
	"strings"

	"go.jacobcolvin.com/clargs/normalize"
	"go.jacobcolvin.com/clargs/schema"
)

// Lookup resolves an option by the key a requirement leaf names.
type Lookup func(key string) *schema.Option

// Evaluate walks tree against values/specified and returns (ok, reason).
// reason describes the condition that was (or, on failure, was not) met —
// composites of more than one item are parenthesized, and a leaf whose
// effective (negate-applied) polarity demands absence is prefixed with "no".
func Evaluate(tree schema.Requirement, values schema.Values, specified map[string]bool, lookup Lookup) (bool, string) {
	ok, reason := evalNode(tree, false, values, specified, lookup)

	return ok, reason
}

func evalNode(node schema.Requirement, negate bool, values schema.Values, specified map[string]bool, lookup Lookup) (bool, string) {
	switch n := node.(type) {
	case nil:
		return true, ""
	case *schema.ReqLeaf:
		return evalLeaf(n, negate, values, specified, lookup)
	case *schema.ReqAll:
		return evalComposite(n.Items, negate, true, values, specified, lookup)
	case *schema.ReqOne:
		return evalComposite(n.Items, negate, false, values, specified, lookup)
	case *schema.ReqNot:
		return evalNode(n.Item, !negate, values, specified, lookup)
	default:
		return true, ""
	}
}

// evalComposite evaluates items as an All (conjunctive=true) or One
// (conjunctive=false) node. Under negate, All becomes One and vice versa
// (De Morgan); each item is evaluated with the same negate threaded through,
// which already folds the flip into each leaf's own verdict.
func evalComposite(items []schema.Requirement, negate, conjunctive bool, values schema.Values, specified map[string]bool, lookup Lookup) (bool, string) {
	useAnd := conjunctive != negate

	reasons := make([]string, 0, len(items))

	ok := useAnd

	for _, item := range items {
		itemOK, itemReason := evalNode(item, negate, values, specified, lookup)
		reasons = append(reasons, itemReason)

		if useAnd {
			ok = ok && itemOK
		} else if itemOK {
			ok = true
		}

		if ok != useAnd {
			break
		}
	}

	sep := " or "
	if useAnd {
		sep = " and "
	}

	reason := strings.Join(reasons, sep)
	if len(items) > 1 {
		reason = "(" + reason + ")"
	}

	return ok, reason
}

func evalLeaf(leaf *schema.ReqLeaf, negate bool, values schema.Values, specified map[string]bool, lookup Lookup) (bool, string) {
	isSpecified := specified[leaf.Key]

	var base bool

	var reason string

	switch leaf.Mode {
	case schema.LeafAbsent:
		base = !isSpecified
		reason = leafName(leaf.Key, !negate)
	case schema.LeafPresent:
		base = isSpecified
		reason = leafName(leaf.Key, negate)
	case schema.LeafEquals:
		opt := lookup(leaf.Key)
		equal := isSpecified && valuesEqual(opt, values[leaf.Key], leaf.Expected)
		base = equal
		reason = leafEqualsReason(leaf, negate, isSpecified, values[leaf.Key])
	}

	return base != negate, reason
}

// leafName renders a present/absent leaf's name, prefixed with "no" when its
// effective (negate-applied) polarity demands absence.
func leafName(key string, negate bool) string {
	if negate {
		return "no " + key
	}

	return key
}

func leafEqualsReason(leaf *schema.ReqLeaf, negate, specified bool, actual any) string {
	base := fmt.Sprintf("%s=%v", leaf.Key, leaf.Expected)
	if negate {
		base = "no " + base
	}

	if specified && !negate {
		base = fmt.Sprintf("%s (was %v)", base, actual)
	}

	return base
}

func valuesEqual(opt *schema.Option, actual, expected any) bool {
	if opt == nil {
		return actual == expected
	}

	switch opt.Kind {
	case schema.KindString:
		as, _ := actual.(string)
		es, _ := expected.(string)
		normalized, err := normalize.String(opt, es)

		if err != nil {
			normalized = es
		}

		return as == normalized
	case schema.KindNumber:
		an, _ := actual.(float64)
		en, _ := expected.(float64)
		normalized, err := normalize.Number(opt, en)

		if err != nil {
			normalized = en
		}

		return an == normalized
	case schema.KindStrings:
		return arrayEqual(actual, expected, opt.Unique)
	case schema.KindNumbers:
		return arrayEqual(actual, expected, opt.Unique)
	default:
		return actual == expected
	}
}

func arrayEqual(actual, expected any, unique bool) bool {
	aStrings, aok := actual.([]string)
	eStrings, eok := expected.([]string)

	if aok && eok {
		return stringSlicesEqual(aStrings, eStrings, unique)
	}

	aNums, aok := actual.([]float64)
	eNums, eok := expected.([]float64)

	if aok && eok {
		return numberSlicesEqual(aNums, eNums, unique)
	}

	return false
}

func stringSlicesEqual(a, b []string, orderInsensitive bool) bool {
	if len(a) != len(b) {
		return false
	}

	if !orderInsensitive {
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	}

	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[v]++
	}

	for _, v := range b {
		counts[v]--
	}

	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}

func numberSlicesEqual(a, b []float64, orderInsensitive bool) bool {
	if len(a) != len(b) {
		return false
	}

	if !orderInsensitive {
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	}

	counts := make(map[float64]int, len(a))
	for _, v := range a {
		counts[v]++
	}

	for _, v := range b {
		counts[v]--
	}

	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}
