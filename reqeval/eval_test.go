package reqeval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/clargs/reqeval"
	"go.jacobcolvin.com/clargs/schema"
)

func noLookup(string) *schema.Option { return nil }

// And("a", Not(Or("b","c"))) — spec.md §8 scenario 6.
func andNotOrTree() schema.Requirement {
	return schema.All(
		schema.Req("a"),
		schema.Not(schema.One(schema.Req("b"), schema.Req("c"))),
	)
}

func TestEvaluateAndNotOrSatisfied(t *testing.T) {
	tree := andNotOrTree()
	specified := map[string]bool{"a": true}

	ok, _ := reqeval.Evaluate(tree, schema.Values{}, specified, noLookup)
	assert.True(t, ok)
}

func TestEvaluateAndNotOrFailsAndNamesNegatedLeaf(t *testing.T) {
	tree := andNotOrTree()
	specified := map[string]bool{"a": true, "b": true}

	ok, reason := reqeval.Evaluate(tree, schema.Values{}, specified, noLookup)
	assert.False(t, ok)
	assert.Contains(t, reason, "no")
	assert.True(t, strings.Contains(reason, "b") || strings.Contains(reason, "c"))
}

// Negation duality: a tree satisfied on some values must have its Not(tree)
// fail on those same values, and vice versa.
func TestEvaluateNegationDuality(t *testing.T) {
	tree := andNotOrTree()
	negated := schema.Not(tree)

	cases := []map[string]bool{
		{"a": true},
		{"a": true, "b": true},
		{},
		{"b": true, "c": true},
	}

	for _, specified := range cases {
		ok, _ := reqeval.Evaluate(tree, schema.Values{}, specified, noLookup)
		negOK, _ := reqeval.Evaluate(negated, schema.Values{}, specified, noLookup)

		assert.Equal(t, ok, !negOK, "tree and its negation must disagree for %v", specified)
	}
}

func TestEvaluateLeafEqualsComparesNormalizedValue(t *testing.T) {
	opt := schema.NewString("-e").WithTrim()
	lookup := func(key string) *schema.Option {
		if key == "-e" {
			return opt
		}

		return nil
	}

	tree := schema.ReqEquals("-e", "  prod  ")
	values := schema.Values{"-e": "prod"}
	specified := map[string]bool{"-e": true}

	ok, reason := reqeval.Evaluate(tree, values, specified, lookup)
	assert.True(t, ok)
	assert.Contains(t, reason, "-e")
}

func TestEvaluateAbsentLeaf(t *testing.T) {
	tree := schema.ReqAbsent("-x")

	ok, _ := reqeval.Evaluate(tree, schema.Values{}, map[string]bool{}, noLookup)
	assert.True(t, ok)

	ok, _ = reqeval.Evaluate(tree, schema.Values{}, map[string]bool{"-x": true}, noLookup)
	assert.False(t, ok)
}
