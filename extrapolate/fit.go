// Package extrapolate — ordinary least squares.
package extrapolate

// Fit computes the least-squares line y = slope·x + intercept through
// the given points.
//
// Returns ErrLengthMismatch, ErrFewPoints, or ErrDegenerateFit on
// contract violations.
//
// Complexity: O(k) time, O(1) memory.
func Fit(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return 0, 0, ErrFewPoints
	}

	var (
		k     = float64(len(xs))
		sumX  float64
		sumY  float64
		sumXX float64
		sumXY float64
		i     int
	)
	for i = range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}

	denom := k*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, ErrDegenerateFit
	}

	slope = (k*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / k

	return slope, intercept, nil
}
