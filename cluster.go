package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Functions for clustering similar histograms together. */

type HistogramPair struct {
	idx1       int
	idx2       int
	cost_combo float64
	cost_diff  float64
}

func HistogramPairIsLess(p1 *HistogramPair, p2 *HistogramPair) bool {
	if p1.cost_diff != p2.cost_diff {
		return p1.cost_diff > p2.cost_diff
	}

	return (p1.idx2 - p1.idx1) > (p2.idx2 - p2.idx1)
}

/* Returns entropy reduction of the context map when we combine two clusters. */
func ClusterCostDiff(size_a int, size_b int) float64 {
	var size_c int = size_a + size_b
	return float64(size_a)*FastLog2(uint(size_a)) + float64(size_b)*FastLog2(uint(size_b)) - float64(size_c)*FastLog2(uint(size_c))
}
