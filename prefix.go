package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Functions for encoding of integers into prefix codes, the amount of extra
   bits, and the actual values of the extra bits. */

const kNumInsertLenPrefixes = 24

const kNumCopyLenPrefixes = 24

const kNumCommandPrefixes = 704

const kNumBlockLenPrefixes = 26

const kNumDistanceShortCodes = 16

/* Represents the range of values belonging to a prefix code:
   [offset, offset + 2^nbits) */
type PrefixCodeRange struct {
	offset int
	nbits  int
}

var kBlockLengthPrefixCode = [kNumBlockLenPrefixes]PrefixCodeRange{
	{1, 2}, {5, 2}, {9, 2}, {13, 2},
	{17, 3}, {25, 3}, {33, 3}, {41, 3},
	{49, 4}, {65, 4}, {81, 4}, {97, 4},
	{113, 5}, {145, 5}, {177, 5}, {209, 5},
	{241, 6}, {305, 6}, {369, 7}, {497, 8},
	{753, 9}, {1265, 10}, {2289, 11}, {4337, 12},
	{8433, 13}, {16625, 24},
}

var kInsertLengthPrefixCode = [kNumInsertLenPrefixes]PrefixCodeRange{
	{0, 0}, {1, 0}, {2, 0}, {3, 0},
	{4, 0}, {5, 0}, {6, 1}, {8, 1},
	{10, 2}, {14, 2}, {18, 3}, {26, 3},
	{34, 4}, {50, 4}, {66, 5}, {98, 5},
	{130, 6}, {194, 7}, {322, 8}, {578, 9},
	{1090, 10}, {2114, 12}, {6210, 14}, {22594, 24},
}

var kCopyLengthPrefixCode = [kNumCopyLenPrefixes]PrefixCodeRange{
	{2, 0}, {3, 0}, {4, 0}, {5, 0},
	{6, 0}, {7, 0}, {8, 0}, {9, 0},
	{10, 1}, {12, 1}, {14, 2}, {18, 2},
	{22, 3}, {30, 3}, {38, 4}, {54, 4},
	{70, 5}, {102, 5}, {134, 6}, {198, 7},
	{326, 8}, {582, 9}, {1094, 10}, {2118, 24},
}

/* The insert and copy code ranges are broken into groups of eight codes;
   the command prefix packs one insert group and one copy group selector
   into the high bits and the low three bits of each code below. */
var kInsertAndCopyRangeLut = [9]int{0, 1, 4, 2, 3, 6, 5, 7, 8}

var kInsertRangeLut = [9]int{0, 0, 1, 1, 0, 2, 1, 2, 2}

var kCopyRangeLut = [9]int{0, 1, 0, 1, 2, 0, 2, 1, 2}

func InsertLengthPrefix(length int) int {
	var i int
	for i = 0; i < kNumInsertLenPrefixes; i++ {
		var re *PrefixCodeRange = &kInsertLengthPrefixCode[i]
		if length >= re.offset && length < re.offset+(1<<uint(re.nbits)) {
			return i
		}
	}

	assert(false)
	return -1
}

func CopyLengthPrefix(length int) int {
	var i int
	for i = 0; i < kNumCopyLenPrefixes; i++ {
		var re *PrefixCodeRange = &kCopyLengthPrefixCode[i]
		if length >= re.offset && length < re.offset+(1<<uint(re.nbits)) {
			return i
		}
	}

	assert(false)
	return -1
}

/* Returns the combined insert-and-copy prefix in [0, 576). Codes below 128
   are exactly those with insert code < 8 and copy code < 16; only those may
   omit the distance symbol. A zero copy length marks an insert-only command
   and is coded with the copy code of length 4. */
func CommandPrefix(insert_length int, copy_length int) int {
	if copy_length == 0 {
		copy_length = 4
	}

	var insert_prefix int = InsertLengthPrefix(insert_length)
	var copy_prefix int = CopyLengthPrefix(copy_length)
	var range_idx int = 3*(insert_prefix>>3) + (copy_prefix >> 3)
	return (kInsertAndCopyRangeLut[range_idx] << 6) + ((insert_prefix & 7) << 3) + (copy_prefix & 7)
}

func InsertLengthExtraBits(command_prefix int) int {
	var insert_code int = (kInsertRangeLut[command_prefix>>6] << 3) + ((command_prefix >> 3) & 7)
	return kInsertLengthPrefixCode[insert_code].nbits
}

func InsertLengthOffset(command_prefix int) int {
	var insert_code int = (kInsertRangeLut[command_prefix>>6] << 3) + ((command_prefix >> 3) & 7)
	return kInsertLengthPrefixCode[insert_code].offset
}

func CopyLengthExtraBits(command_prefix int) int {
	var copy_code int = (kCopyRangeLut[command_prefix>>6] << 3) + (command_prefix & 7)
	return kCopyLengthPrefixCode[copy_code].nbits
}

func CopyLengthOffset(command_prefix int) int {
	var copy_code int = (kCopyRangeLut[command_prefix>>6] << 3) + (command_prefix & 7)
	return kCopyLengthPrefixCode[copy_code].offset
}

/* Here distance_code is the intermediate code produced by
   ComputeDistanceShortCodes: 1..16 for the short codes, or the actual
   distance increased by 16. */
func PrefixEncodeCopyDistance(distance_code int, num_direct_codes int, postfix_bits uint, code *uint16, nbits *int, extra_bits *uint32) {
	distance_code--
	if distance_code < kNumDistanceShortCodes+num_direct_codes {
		*code = uint16(distance_code)
		*nbits = 0
		*extra_bits = 0
		return
	}

	var dist uint = (uint(1) << (postfix_bits + 2)) + uint(distance_code-kNumDistanceShortCodes-num_direct_codes)
	var bucket uint = Log2FloorNonZero(dist) - 1
	var postfix_mask uint = (1 << postfix_bits) - 1
	var postfix uint = dist & postfix_mask
	var prefix uint = (dist >> bucket) & 1
	var offset uint = (2 + prefix) << bucket
	*nbits = int(bucket - postfix_bits)
	*code = uint16(uint(kNumDistanceShortCodes+num_direct_codes) + ((2*(uint(*nbits)-1) + prefix) << postfix_bits) + postfix)
	*extra_bits = uint32((dist - offset) >> postfix_bits)
}

func BlockLengthPrefix(length int) int {
	var i int
	for i = 0; i < kNumBlockLenPrefixes; i++ {
		var re *PrefixCodeRange = &kBlockLengthPrefixCode[i]
		if length >= re.offset && length < re.offset+(1<<uint(re.nbits)) {
			return i
		}
	}

	assert(false)
	return -1
}

func BlockLengthExtraBits(length_prefix int) int {
	return kBlockLengthPrefixCode[length_prefix].nbits
}

func BlockLengthOffset(length_prefix int) int {
	return kBlockLengthPrefixCode[length_prefix].offset
}
