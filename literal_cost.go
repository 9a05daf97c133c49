package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Literal cost model to allow backward reference replacement to be efficient. */

/* Estimates how many bits the literals in the interval [pos, pos + len) in
   the ring buffer (data, mask) will take entropy coded and writes these
   estimates to the cost[0..mask] array, indexed by the masked position. */
func EstimateBitCostsForLiterals(pos uint, length uint, mask uint, data []byte, cost []float32) {
	var histogram [256]int
	var window_half int = 2000
	var in_window int = brotli_min_int(window_half, int(length))
	var i int

	/* Bootstrap histogram. */
	for i = 0; i < in_window; i++ {
		histogram[data[(pos+uint(i))&mask]]++
	}

	/* Compute bit costs with sliding window. */
	for i = 0; i < int(length); i++ {
		if i-window_half >= 0 {
			/* Remove a byte in the past. */
			histogram[data[(pos+uint(i-window_half))&mask]]--
			in_window--
		}

		if i+window_half < int(length) {
			/* Add a byte in the future. */
			histogram[data[(pos+uint(i+window_half))&mask]]++
			in_window++
		}

		var histo int = histogram[data[(pos+uint(i))&mask]]
		if histo == 0 {
			histo = 1
		}

		var lit_cost float64 = FastLog2(uint(in_window)) - FastLog2(uint(histo))
		lit_cost += 0.029
		if lit_cost < 1.0 {
			lit_cost *= 0.5
			lit_cost += 0.5
		}

		cost[(pos+uint(i))&mask] = float32(lit_cost)
	}
}
