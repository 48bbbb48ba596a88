// Package enumerate — tabulated exact walk counts.
package enumerate

import "math"

// exactCL holds the exact number of self-avoiding walks c_L on the
// square lattice for L = 0..71, from the published enumeration series.
// Values are stored as float64 because from L = 37 on they exceed 2^53
// (and from L = 44 on, int64); the rounding is far below any Monte
// Carlo error they are compared against.
var exactCL = [...]float64{
	1,
	4,
	12,
	36,
	100,
	284,
	780,
	2172,
	5916,
	16268,
	44100,
	120292,
	324932,
	881500,
	2374444,
	6416596,
	17245332,
	46466676,
	124658732,
	335116620,
	897697164,
	2408806028,
	6444560484,
	17266613812,
	46146397316,
	123481354908,
	329712786220,
	881317491628,
	2351378582244,
	6279396229332,
	16741957935348,
	44673816630956,
	119034997913020,
	317406598267076,
	845279074648708,
	2252534077759844,
	5995740499124412,
	15968852281708724,
	42486750758210044,
	113101676587853932,
	300798249248474268,
	800381032599158340,
	2127870238872271828,
	5659667057165209612,
	15041631638016155884,
	39992704986620915140,
	106255762193816523332,
	282417882500511560972,
	750139547395987948108,
	1993185460468062845836,
	5292794668724837206644,
	14059415980606050644844,
	37325046962536847970116,
	99121668912462180162908,
	263090298246050489804708,
	698501700277581954674604,
	1853589151789474253830500,
	4920146075313000860596140,
	13053884641516572778155044,
	34642792634590824499672196,
	91895836025056214634047716,
	243828023293849420839513468,
	646684752476890688940276172,
	1715538780705298093042635884,
	4549252727304405545665901684,
	12066271136346725726547810652,
	31992427160420423715150496804,
	84841788997462209800131419244,
	224916973773967421352838735684,
	596373847126147985434982575724,
	1580784678250571882017480243636,
	4190893020903935054619120005916,
}

// MaxExactLength is the largest length with a tabulated exact value.
const MaxExactLength = len(exactCL) - 1

// Exact returns the tabulated exact walk count c_L.
// Returns ErrUnknownLength when L is negative or beyond the table —
// the one place in this module where a missing answer must fail
// loudly rather than degrade to an estimate.
// Complexity: O(1).
func Exact(L int) (float64, error) {
	if L < 0 || L > MaxExactLength {
		return 0, ErrUnknownLength
	}

	return exactCL[L], nil
}

// Deviation returns the relative deviation |estimate − c_L| / c_L of
// an estimate against the exact table.
// Returns ErrUnknownLength when L has no tabulated value.
// Complexity: O(1).
func Deviation(estimate float64, L int) (float64, error) {
	reference, err := Exact(L)
	if err != nil {
		return 0, err
	}

	return math.Abs(estimate-reference) / reference, nil
}
