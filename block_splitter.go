package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Block split point selection utilities. */

type BlockSplit struct {
	num_types_  int
	types_      []int
	type_codes_ []int
	lengths_    []int
}

const (
	kMaxLiteralHistograms        = 100
	kMaxCommandHistograms        = 50
	kLiteralBlockSwitchCost      = 28.1
	kCommandBlockSwitchCost      = 13.5
	kDistanceBlockSwitchCost     = 14.6
	kLiteralStrideLength         = 70
	kCommandStrideLength         = 40
	kSymbolsPerLiteralHistogram  = 544
	kSymbolsPerCommandHistogram  = 530
	kSymbolsPerDistanceHistogram = 544
	kMinLengthForBlockSplitting  = 128
	kIterMulForRefining          = 2
	kMinItersForRefining         = 100

	/* Block ids need to fit in one byte. */
	kMaxNumberOfBlockTypes = 256
)

func MyRand(seed *uint32) uint32 {
	*seed *= 16807

	/* Testing shows that this case is not needed, but part of the spirit of
	   a multiplicative congruential generator. */
	if *seed == 0 {
		*seed = 1
	}

	return *seed
}

func BitCost(count int) float64 {
	if count == 0 {
		return -2.0
	}

	return FastLog2(uint(count))
}

func CopyLiteralsToByteArray(cmds []Command, data []byte) []byte {
	var total_length uint = 0
	var i int

	/* Count how many we have. */
	for i = 0; i < len(cmds); i++ {
		total_length += uint(cmds[i].insert_length_)
	}

	/* Gather the literals data. */
	var literals []byte = make([]byte, total_length)
	var pos uint = 0
	var from_pos uint = 0
	for i = 0; i < len(cmds); i++ {
		copy(literals[pos:], data[from_pos:from_pos+uint(cmds[i].insert_length_)])
		pos += uint(cmds[i].insert_length_)
		from_pos += uint(cmds[i].insert_length_ + cmds[i].copy_length_)
	}

	return literals
}

func CopyCommandsToStaticArray(cmds []Command, insert_and_copy_codes *[]uint16, distance_prefixes *[]uint16) {
	var i int
	for i = 0; i < len(cmds); i++ {
		*insert_and_copy_codes = append(*insert_and_copy_codes, cmds[i].command_prefix_)
		if cmds[i].copy_length_code_ > 0 && cmds[i].distance_prefix_ != 0xffff {
			*distance_prefixes = append(*distance_prefixes, cmds[i].distance_prefix_)
		}
	}
}

func BuildBlockSplit(block_ids []byte, split *BlockSplit) {
	var cur_id int = int(block_ids[0])
	var cur_length int = 1
	var i int
	split.num_types_ = -1
	for i = 1; i < len(block_ids); i++ {
		if int(block_ids[i]) != cur_id {
			split.types_ = append(split.types_, cur_id)
			split.lengths_ = append(split.lengths_, cur_length)
			split.num_types_ = brotli_max_int(split.num_types_, cur_id)
			cur_id = int(block_ids[i])
			cur_length = 0
		}

		cur_length++
	}

	split.types_ = append(split.types_, cur_id)
	split.lengths_ = append(split.lengths_, cur_length)
	split.num_types_ = brotli_max_int(split.num_types_, cur_id) + 1
}

/* Splits the commands of one meta-block into independent literal, command
   and distance streams and computes a block split for each of them. */
func SplitBlock(cmds []Command, data []byte, literal_split *BlockSplit, insert_and_copy_split *BlockSplit, dist_split *BlockSplit) {
	/* Create a vector of literals. */
	var literals []byte = CopyLiteralsToByteArray(cmds, data)

	/* Compute prefix codes for commands. */
	var insert_and_copy_codes []uint16
	var distance_prefixes []uint16
	CopyCommandsToStaticArray(cmds, &insert_and_copy_codes, &distance_prefixes)

	SplitByteVectorLiteral(literals, kSymbolsPerLiteralHistogram, kMaxLiteralHistograms, kLiteralStrideLength, kLiteralBlockSwitchCost, literal_split)
	SplitByteVectorCommand(insert_and_copy_codes, kSymbolsPerCommandHistogram, kMaxCommandHistograms, kCommandStrideLength, kCommandBlockSwitchCost, insert_and_copy_split)
	SplitByteVectorDistance(distance_prefixes, kSymbolsPerDistanceHistogram, kMaxCommandHistograms, kCommandStrideLength, kDistanceBlockSwitchCost, dist_split)
}
