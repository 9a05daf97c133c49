package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Algorithms for distributing the literals and commands of a metablock
   between block types and context buckets. */

/* Histogram ids need to fit in one byte and there are 16 ids reserved for
   run length codes, which leaves a maximum number of 240 histograms. */
const kMaxNumberOfHistograms = 240

/* Tries to represent the distance of each command as one of the 16 short
   codes over the four-deep distance history. Candidate k looks the command
   up at an offset into the history and adds a small delta:
     candidate(k) = dist_ringbuffer[(idx + kIndexOffset[k]) & 3] + kValueOffset[k]
   Codes above 1 push the actual distance into the history. */
func ComputeDistanceShortCodes(cmds []Command, dist_ringbuffer []int, ringbuffer_idx *uint) {
	var kIndexOffset = [16]uint{3, 2, 1, 0, 3, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2}

	var kValueOffset = [16]int{0, 0, 0, 0, -1, 1, -2, 2, -3, 3, -1, 1, -2, 2, -3, 3}

	var i int
	for i = 0; i < len(cmds); i++ {
		var cur_dist int = int(cmds[i].copy_distance_)
		if cur_dist == 0 {
			break
		}

		var dist_code int = cur_dist + 16
		var k int
		for k = 0; k < 16; k++ {
			/* Only accept more popular choices. */
			if cur_dist < 11 && ((k >= 2 && k < 4) || k >= 6) {
				/* Typically unpopular ranges, don't replace a short distance
				   with them. */
				continue
			}

			var comp int = dist_ringbuffer[(*ringbuffer_idx+kIndexOffset[k])&3] + kValueOffset[k]
			if cur_dist == comp {
				dist_code = k + 1
				break
			}
		}

		if dist_code > 1 {
			dist_ringbuffer[*ringbuffer_idx&3] = cur_dist
			(*ringbuffer_idx)++
		}

		cmds[i].distance_code_ = uint32(dist_code)
	}
}

func ComputeCommandPrefixes(cmds []Command, num_direct_distance_codes int, distance_postfix_bits uint) {
	var i int
	for i = 0; i < len(cmds); i++ {
		var cmd *Command = &cmds[i]
		cmd.command_prefix_ = uint16(CommandPrefix(int(cmd.insert_length_), int(cmd.copy_length_code_)))
		if cmd.copy_length_code_ > 0 {
			PrefixEncodeCopyDistance(int(cmd.distance_code_), num_direct_distance_codes, distance_postfix_bits, &cmd.distance_prefix_, &cmd.distance_extra_bits_, &cmd.distance_extra_bits_value_)
		}

		if cmd.command_prefix_ < 128 && cmd.distance_prefix_ == 0 {
			cmd.distance_prefix_ = 0xffff
		} else {
			cmd.command_prefix_ += 128
		}
	}
}

type EncodingParams struct {
	num_direct_distance_codes int
	distance_postfix_bits     uint
	literal_context_mode      int
}

type MetaBlock struct {
	cmds                  []Command
	params                EncodingParams
	literal_split         BlockSplit
	command_split         BlockSplit
	distance_split        BlockSplit
	literal_context_modes []int
	literal_context_map   []int
	distance_context_map  []int
	literal_histograms    []HistogramLiteral
	command_histograms    []HistogramCommand
	distance_histograms   []HistogramDistance
}

func BuildMetaBlock(params *EncodingParams, cmds []Command, ringbuffer []byte, pos uint, mask uint, mb *MetaBlock) {
	mb.cmds = make([]Command, len(cmds))
	copy(mb.cmds, cmds)
	mb.params = *params
	ComputeCommandPrefixes(mb.cmds, mb.params.num_direct_distance_codes, mb.params.distance_postfix_bits)
	SplitBlock(mb.cmds, ringbuffer[pos&mask:], &mb.literal_split, &mb.command_split, &mb.distance_split)
	ComputeBlockTypeShortCodes(&mb.literal_split)
	ComputeBlockTypeShortCodes(&mb.command_split)
	ComputeBlockTypeShortCodes(&mb.distance_split)

	mb.literal_context_modes = make([]int, mb.literal_split.num_types_)
	var i int
	for i = 0; i < len(mb.literal_context_modes); i++ {
		mb.literal_context_modes[i] = mb.params.literal_context_mode
	}

	var num_literal_contexts int = mb.literal_split.num_types_ << kLiteralContextBits
	var num_distance_contexts int = mb.distance_split.num_types_ << kDistanceContextBits
	var literal_histograms []HistogramLiteral = make([]HistogramLiteral, num_literal_contexts)
	var distance_histograms []HistogramDistance = make([]HistogramDistance, num_distance_contexts)
	for i = 0; i < num_literal_contexts; i++ {
		literal_histograms[i].Clear()
	}

	mb.command_histograms = make([]HistogramCommand, mb.command_split.num_types_)
	for i = 0; i < len(mb.command_histograms); i++ {
		mb.command_histograms[i].Clear()
	}

	for i = 0; i < num_distance_contexts; i++ {
		distance_histograms[i].Clear()
	}

	BuildHistograms(mb.cmds, &mb.literal_split, &mb.command_split, &mb.distance_split, ringbuffer, pos, mask, mb.literal_context_modes, literal_histograms, mb.command_histograms, distance_histograms)

	ClusterHistogramsLiteral(literal_histograms, 1<<kLiteralContextBits, mb.literal_split.num_types_, kMaxNumberOfHistograms, &mb.literal_histograms, &mb.literal_context_map)

	ClusterHistogramsDistance(distance_histograms, 1<<kDistanceContextBits, mb.distance_split.num_types_, kMaxNumberOfHistograms, &mb.distance_histograms, &mb.distance_context_map)
}
