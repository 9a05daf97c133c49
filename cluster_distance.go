package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Computes the bit cost reduction by combining out[idx1] and out[idx2] and
   if it is below a threshold, stores the pair (idx1, idx2) in the *pairs
   queue. */
func CompareAndPushToQueueDistance(out []HistogramDistance, cluster_size []int, idx1 int, idx2 int, max_num_pairs int, pairs []HistogramPair, num_pairs *int) {
	var is_good_pair bool = false
	var p HistogramPair
	if idx1 == idx2 {
		return
	}

	if idx2 < idx1 {
		var t int = idx2
		idx2 = idx1
		idx1 = t
	}

	p.idx1 = idx1
	p.idx2 = idx2
	p.cost_diff = 0.5 * ClusterCostDiff(cluster_size[idx1], cluster_size[idx2])
	p.cost_diff -= out[idx1].bit_cost_
	p.cost_diff -= out[idx2].bit_cost_

	if out[idx1].total_count_ == 0 {
		p.cost_combo = out[idx2].bit_cost_
		is_good_pair = true
	} else if out[idx2].total_count_ == 0 {
		p.cost_combo = out[idx1].bit_cost_
		is_good_pair = true
	} else {
		var threshold float64
		if *num_pairs == 0 {
			threshold = 1e99
		} else {
			threshold = brotli_max_double(0.0, pairs[0].cost_diff)
		}

		var combo HistogramDistance = out[idx1]
		combo.AddHistogram(&out[idx2])
		var cost_combo float64 = PopulationCostDistance(&combo)
		if cost_combo < threshold-p.cost_diff {
			p.cost_combo = cost_combo
			is_good_pair = true
		}
	}

	if is_good_pair {
		p.cost_diff += p.cost_combo
		if *num_pairs > 0 && HistogramPairIsLess(&pairs[0], &p) {
			/* Replace the top of the queue if needed. */
			if *num_pairs < max_num_pairs {
				pairs[*num_pairs] = pairs[0]
				(*num_pairs)++
			}

			pairs[0] = p
		} else if *num_pairs < max_num_pairs {
			pairs[*num_pairs] = p
			(*num_pairs)++
		}
	}
}

func HistogramCombineDistance(out []HistogramDistance, cluster_size []int, symbols []int, clusters []int, pairs []HistogramPair, num_clusters int, symbols_size int, max_clusters int, max_num_pairs int) int {
	var cost_diff_threshold float64 = 0.0
	var min_cluster_size int = 1
	var num_pairs int = 0
	{
		/* We maintain a vector of histogram pairs, with the property that
		   the pair with the maximum bit cost reduction is the first. */
		var idx1 int
		for idx1 = 0; idx1 < num_clusters; idx1++ {
			var idx2 int
			for idx2 = idx1 + 1; idx2 < num_clusters; idx2++ {
				CompareAndPushToQueueDistance(out, cluster_size, clusters[idx1], clusters[idx2], max_num_pairs, pairs, &num_pairs)
			}
		}
	}

	for num_clusters > min_cluster_size {
		var best_idx1 int
		var best_idx2 int
		var i int
		if pairs[0].cost_diff >= cost_diff_threshold {
			cost_diff_threshold = 1e99
			min_cluster_size = max_clusters
			continue
		}

		/* Take the best pair from the top of the queue. */
		best_idx1 = pairs[0].idx1

		best_idx2 = pairs[0].idx2
		out[best_idx1].AddHistogram(&out[best_idx2])
		out[best_idx1].bit_cost_ = pairs[0].cost_combo
		cluster_size[best_idx1] += cluster_size[best_idx2]
		for i = 0; i < symbols_size; i++ {
			if symbols[i] == best_idx2 {
				symbols[i] = best_idx1
			}
		}

		for i = 0; i < num_clusters; i++ {
			if clusters[i] == best_idx2 {
				copy(clusters[i:], clusters[i+1:num_clusters])
				break
			}
		}

		num_clusters--
		{
			/* Remove pairs intersecting the just combined best pair. */
			var copy_to_idx int = 0
			for i = 0; i < num_pairs; i++ {
				var p *HistogramPair = &pairs[i]
				if p.idx1 == best_idx1 || p.idx2 == best_idx1 || p.idx1 == best_idx2 || p.idx2 == best_idx2 {
					/* Remove invalid pair from the queue. */
					continue
				}

				if HistogramPairIsLess(&pairs[0], p) {
					/* Replace the top of the queue if needed. */
					var front HistogramPair = pairs[0]
					pairs[0] = *p
					pairs[copy_to_idx] = front
				} else {
					pairs[copy_to_idx] = *p
				}

				copy_to_idx++
			}

			num_pairs = copy_to_idx
		}

		/* Push new pairs formed with the combined histogram to the queue. */
		for i = 0; i < num_clusters; i++ {
			CompareAndPushToQueueDistance(out, cluster_size, best_idx1, clusters[i], max_num_pairs, pairs, &num_pairs)
		}
	}

	return num_clusters
}

/* What is the bit cost of moving histogram from cur_symbol to candidate. */
func HistogramBitCostDistanceDistance(histogram *HistogramDistance, candidate *HistogramDistance) float64 {
	if histogram.total_count_ == 0 {
		return 0.0
	}

	var tmp HistogramDistance = *histogram
	tmp.AddHistogram(candidate)
	return PopulationCostDistance(&tmp) - candidate.bit_cost_
}

/* Find the best 'out' histogram for each of the 'in' histograms.
   When called, clusters[0..num_clusters) contains the unique values from
   symbols[0..in_size), but this property is not preserved in this function. */
func HistogramRemapDistance(in []HistogramDistance, in_size int, clusters []int, num_clusters int, out []HistogramDistance, symbols []int) {
	var i int
	for i = 0; i < in_size; i++ {
		var best_out int
		if i == 0 {
			best_out = symbols[0]
		} else {
			best_out = symbols[i-1]
		}

		var best_bits float64 = HistogramBitCostDistanceDistance(&in[i], &out[best_out])
		var j int
		for j = 0; j < num_clusters; j++ {
			var cur_bits float64 = HistogramBitCostDistanceDistance(&in[i], &out[clusters[j]])
			if cur_bits < best_bits {
				best_bits = cur_bits
				best_out = clusters[j]
			}
		}

		symbols[i] = best_out
	}

	/* Recompute each out based on raw and symbols. */
	for i = 0; i < num_clusters; i++ {
		out[clusters[i]].Clear()
	}

	for i = 0; i < in_size; i++ {
		out[symbols[i]].AddHistogram(&in[i])
	}
}

/* Reorders elements of the out[0..length) array and changes values in
   symbols[0..length) array in the following way:
     * when called, symbols[] contains indexes into out[], and has N unique
       values (possibly N < length)
     * on return, symbols'[i] = f(symbols[i]) and
                  out'[symbols'[i]] = out[symbols[i]], for each 0 <= i < length,
       where f is a bijection between the range of symbols[] and [0..N), and
       the first occurrences of values in symbols'[i] come in consecutive
       increasing order.
   Returns N, the number of unique values in symbols[]. */
func HistogramReindexDistance(out *[]HistogramDistance, symbols []int, length int) int {
	var kInvalidIndex int = -1
	var new_index []int = make([]int, length)
	var next_index int
	var tmp []HistogramDistance
	var i int
	for i = 0; i < length; i++ {
		new_index[i] = kInvalidIndex
	}

	next_index = 0
	for i = 0; i < length; i++ {
		if new_index[symbols[i]] == kInvalidIndex {
			new_index[symbols[i]] = next_index
			next_index++
		}
	}

	tmp = make([]HistogramDistance, next_index)
	next_index = 0
	for i = 0; i < length; i++ {
		if new_index[symbols[i]] == next_index {
			tmp[next_index] = (*out)[symbols[i]]
			next_index++
		}

		symbols[i] = new_index[symbols[i]]
	}

	*out = tmp
	return next_index
}

/* Clusters similar histograms in 'in' together, the selected histograms are
   put into 'out', and for each index in 'in', histogram_symbols[i] is filled
   with the index of the histogram in 'out' that it got clustered to. */
func ClusterHistogramsDistance(in []HistogramDistance, num_contexts int, num_blocks int, max_histograms int, out *[]HistogramDistance, histogram_symbols *[]int) {
	var in_size int = num_contexts * num_blocks
	var cluster_size []int = make([]int, in_size)
	var clusters []int = make([]int, in_size)
	var num_clusters int = 0
	var max_input_histograms int = 64
	var pairs_capacity int = max_input_histograms * max_input_histograms / 2
	var pairs []HistogramPair = make([]HistogramPair, pairs_capacity+1)
	var i int

	assert(in_size == len(in))
	*out = make([]HistogramDistance, in_size)
	*histogram_symbols = make([]int, in_size)
	for i = 0; i < in_size; i++ {
		cluster_size[i] = 1
	}

	for i = 0; i < in_size; i++ {
		(*out)[i] = in[i]
		(*out)[i].bit_cost_ = PopulationCostDistance(&in[i])
		(*histogram_symbols)[i] = i
	}

	for i = 0; i < in_size; i += max_input_histograms {
		var num_to_combine int = brotli_min_int(in_size-i, max_input_histograms)
		var num_new_clusters int
		var j int
		for j = 0; j < num_to_combine; j++ {
			clusters[num_clusters+j] = i + j
		}

		num_new_clusters = HistogramCombineDistance(*out, cluster_size, (*histogram_symbols)[i:], clusters[num_clusters:], pairs, num_to_combine, num_to_combine, max_histograms, pairs_capacity)
		num_clusters += num_new_clusters
	}
	{
		/* For the second pass, we limit the total number of histogram pairs. */
		var max_num_pairs int = brotli_min_int(64*num_clusters, (num_clusters/2)*num_clusters)
		if max_num_pairs+1 > len(pairs) {
			pairs = make([]HistogramPair, max_num_pairs+1)
		}

		/* Collapse similar histograms. */
		num_clusters = HistogramCombineDistance(*out, cluster_size, *histogram_symbols, clusters, pairs, num_clusters, in_size, max_histograms, max_num_pairs)
	}

	/* Find the optimal map from original histograms to the final ones. */
	HistogramRemapDistance(in, in_size, clusters, num_clusters, *out, *histogram_symbols)

	/* Convert the context map to a canonical form. */
	HistogramReindexDistance(out, *histogram_symbols, in_size)
}
