package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/normalize"
)

// spec.md §8 scenario 3: separator=",", unique=true, limit=2.
func TestArrayDedupesPreservingFirstOccurrence(t *testing.T) {
	out, err := normalize.Array(true, 2, []string{"a", "a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestArrayLimitRejectsAfterDedup(t *testing.T) {
	_, err := normalize.Array(true, 2, []string{"a", "b", "c"})
	var cerr *clargserr.Error
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, clargserr.ArrayOptionLimit, cerr.Kind)
}

func TestArrayNoLimitAllowsAnyCount(t *testing.T) {
	out, err := normalize.Array(false, 0, []string{"a", "b", "c", "c"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "c"}, out)
}

func TestArrayNumbersUnique(t *testing.T) {
	out, err := normalize.Array(true, 0, []float64{1, 1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, out)
}
