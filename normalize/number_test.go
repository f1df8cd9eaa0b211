package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/normalize"
	"go.jacobcolvin.com/clargs/schema"
)

// spec.md §8 scenario 4: range=[0,10], round="floor".
func TestNumberFloorsThenChecksRange(t *testing.T) {
	opt := schema.NewNumber("-n").WithRange(0, 10).WithRound(schema.RoundFloor)

	out, err := normalize.Number(opt, 3.7)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, out)

	_, err = normalize.Number(opt, 11)
	var cerr *clargserr.Error
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, clargserr.NumberOptionRange, cerr.Kind)
}

func TestNumberEnumRejectsOutOfSet(t *testing.T) {
	opt := schema.NewNumber("-p").WithNumberEnums(1, 2, 4, 8)

	_, err := normalize.Number(opt, 3)
	var cerr *clargserr.Error
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, clargserr.NumberOptionEnums, cerr.Kind)

	out, err := normalize.Number(opt, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, out)
}

func TestNumberRangeRejectsNaN(t *testing.T) {
	opt := schema.NewNumber("-n").WithRange(0, 10)

	_, err := normalize.Number(opt, nan())
	var cerr *clargserr.Error
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, clargserr.NumberOptionRange, cerr.Kind)
}

func nan() float64 {
	var zero float64

	return zero / zero
}

func TestNumberRoundingIsIdempotent(t *testing.T) {
	opt := schema.NewNumber("-n").WithRound(schema.RoundCeil)

	once, err := normalize.Number(opt, 2.1)
	assert.NoError(t, err)

	twice, err := normalize.Number(opt, once)
	assert.NoError(t, err)

	assert.Equal(t, once, twice)
}
