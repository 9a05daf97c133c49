package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Function to find backward reference copies. */

func CreateBackwardReferences(num_bytes uint, position uint, ringbuffer []byte, literal_cost []float32, ringbuffer_mask uint, max_backward_limit uint, hasher *Hasher, commands *[]Command) {
	/* Length heuristic that seems to help probably by better selection of
	   lazy matches of similar lengths. */
	var insert_length uint = 0
	var i uint = position & ringbuffer_mask
	var i_diff uint = position - i
	var i_end uint = i + num_bytes

	var average_cost float64 = 0
	var k uint
	for k = position; k < position+num_bytes; k++ {
		average_cost += float64(literal_cost[k&ringbuffer_mask])
	}

	average_cost /= float64(num_bytes)
	hasher.average_cost_ = average_cost

	for i+3 < i_end {
		var max_length uint = i_end - i
		var max_distance uint = brotli_min_size_t(i+i_diff, max_backward_limit)
		var best_len uint = 0
		var best_dist uint = 0
		var best_score float64 = 0
		var match_found bool = hasher.FindLongestMatch(ringbuffer, literal_cost, ringbuffer_mask, i+i_diff, max_length, max_distance, &best_len, &best_dist, &best_score)
		if match_found {
			/* Found a match. Let's look for something even better ahead. */
			var delayed_backward_references_in_row int = 0
			for i+4 < i_end && delayed_backward_references_in_row < 4 {
				var best_len_2 uint = 0
				var best_dist_2 uint = 0
				var best_score_2 float64 = 0
				hasher.Store(ringbuffer[i:], uint32(i+i_diff))
				match_found = hasher.FindLongestMatch(ringbuffer, literal_cost, ringbuffer_mask, i+i_diff+1, i_end-i-1, brotli_min_size_t(i+i_diff+1, max_backward_limit), &best_len_2, &best_dist_2, &best_score_2)
				var cost_diff_lazy float64 = 7.0
				if match_found && best_score_2 >= best_score+cost_diff_lazy {
					/* Ok, let's just write one byte for now and consider the
					   next byte as the beginning of the copy. */
					i++

					insert_length++
					best_len = best_len_2
					best_dist = best_dist_2
					best_score = best_score_2
					delayed_backward_references_in_row++
				} else {
					break
				}
			}

			var cmd Command
			cmd.insert_length_ = uint32(insert_length)
			cmd.copy_length_ = uint32(best_len)
			cmd.copy_length_code_ = uint32(best_len)
			cmd.copy_distance_ = uint32(best_dist)
			*commands = append(*commands, cmd)
			insert_length = 0

			/* Put the hash keys into the table, if there are enough
			   bytes left. */
			var j uint
			for j = 1; j < best_len && i+j+3 < i_end; j++ {
				hasher.Store(ringbuffer[i+j:], uint32(i+i_diff+j))
			}

			i += best_len
		} else {
			insert_length++
			hasher.Store(ringbuffer[i:], uint32(i+i_diff))
			i++
		}
	}

	insert_length += i_end - i
	if insert_length > 0 {
		var cmd Command
		cmd.insert_length_ = uint32(insert_length)
		cmd.copy_length_ = 0
		cmd.copy_length_code_ = 0
		cmd.copy_distance_ = 0
		*commands = append(*commands, cmd)
	}
}
