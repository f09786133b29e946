package score

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// OneDimKmeans performs k-means clustering on one-dimensional data with k=2.
// It classifies input values into two clusters (high and low) using an iterative
// algorithm that finds optimal cluster centers.
//
// The algorithm initializes cluster centers to min and max values, then iteratively
// assigns points to clusters based on distance to centers and updates cluster centers
// to the mean of assigned points. It continues until convergence when centers stabilize
// within tolerance, or until one cluster runs empty.
//
// The returned slice contains classification results where true indicates the high
// cluster and false indicates the low cluster. A mark whose bits are all equal has
// no second cluster, so callers that cannot rule that out should prefer Midpoint.
func OneDimKmeans(averages []float64) []bool {
	if len(averages) == 0 {
		return nil
	}
	center := [2]float64{floats.Min(averages), floats.Max(averages)}
	isClass01 := make([]bool, len(averages))
	etol := math.Pow10(-6)
	for range 300 {
		threshold := (center[0] + center[1]) / 2.
		var highs, lows []float64
		for i, avr := range averages {
			isClass01[i] = threshold <= avr
			if isClass01[i] {
				highs = append(highs, avr)
			} else {
				lows = append(lows, avr)
			}
		}
		if len(highs) == 0 || len(lows) == 0 {
			break
		}
		center = [2]float64{stat.Mean(lows, nil), stat.Mean(highs, nil)}
		if diff := math.Abs((center[0]+center[1])/2. - threshold); diff < etol {
			break
		}
	}
	return isClass01
}
