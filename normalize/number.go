package normalize

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/schema"
)

// Number applies rounding, then the enum/range constraint (mutually
// exclusive per spec.md §3) to n. A NaN input always fails whichever
// constraint is configured, since NaN compares unequal to everything and
// sits outside any range. The returned error, when non-nil, is a
// *clargserr.Error of kind NumberOptionEnums or NumberOptionRange.
func Number(opt *schema.Option, n float64) (float64, error) {
	switch opt.Round {
	case schema.RoundTrunc:
		n = math.Trunc(n)
	case schema.RoundFloor:
		n = math.Floor(n)
	case schema.RoundCeil:
		n = math.Ceil(n)
	case schema.RoundRound:
		n = math.Round(n)
	case schema.RoundNone:
	}

	switch {
	case len(opt.NumberEnums) > 0:
		if !slices.Contains(opt.NumberEnums, n) {
			return n, clargserr.Newf(clargserr.NumberOptionEnums,
				"invalid parameter %s: expected one of %s",
				formatNumber(n), formatNumbers(opt.NumberEnums))
		}
	case opt.NumRange != nil:
		if math.IsNaN(n) || n < opt.NumRange.Lo || n > opt.NumRange.Hi {
			return n, clargserr.Newf(clargserr.NumberOptionRange,
				"invalid parameter %s: expected a value in the range [%s, %s]",
				formatNumber(n), formatNumber(opt.NumRange.Lo), formatNumber(opt.NumRange.Hi))
		}
	}

	return n, nil
}

func formatNumber(n float64) string {
	return fmt.Sprintf("%g", n)
}

func formatNumbers(ns []float64) string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = formatNumber(n)
	}

	return strings.Join(out, ", ")
}
