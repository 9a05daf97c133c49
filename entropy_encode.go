package brotli

/* Copyright 2010 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

import "sort"

/* Entropy encoding (Huffman) utilities. */

/* The code-length alphabet: lengths 0..15 plus the three repeat codes. */
const kCodeLengthCodes = 19

/* A node of a Huffman tree. */
type HuffmanTree struct {
	total_count_          uint32
	index_left_           int16
	index_right_or_value_ int16
}

func InitHuffmanTree(self *HuffmanTree, count uint32, left int16, right int16) {
	self.total_count_ = count
	self.index_left_ = left
	self.index_right_or_value_ = right
}

func SetDepth(p int, pool []HuffmanTree, depth []byte, level int) {
	if pool[p].index_left_ >= 0 {
		level++
		SetDepth(int(pool[p].index_left_), pool, depth, level)
		SetDepth(int(pool[p].index_right_or_value_), pool, depth, level)
	} else {
		depth[pool[p].index_right_or_value_] = byte(level)
	}
}

/* Sort the root nodes, least popular first; ties are broken by the symbol
   value so that the output does not depend on the sort implementation. */
func SortHuffmanTree(v0 *HuffmanTree, v1 *HuffmanTree) bool {
	if v0.total_count_ != v1.total_count_ {
		return v0.total_count_ < v1.total_count_
	}

	return v0.index_right_or_value_ > v1.index_right_or_value_
}

/* This function will create a Huffman tree.

   The (data, length) contains the population counts.
   The tree_limit is the maximum bit depth of the Huffman codes.

   The depth contains the tree, i.e., how many bits are used for
   the symbol.

   See http://en.wikipedia.org/wiki/Huffman_coding

   Below is an example of the famous better-than-Katajainen trick: if the
   initial Huffman tree is deeper than tree_limit, we raise all small counts
   to a limit and try again, doubling the limit until the tree fits. */
func CreateHuffmanTree(data []uint32, length int, tree_limit int, depth []byte) {
	var count_limit uint32
	for count_limit = 1; ; count_limit *= 2 {
		var tree []HuffmanTree = make([]HuffmanTree, 0, 2*length+1)
		var i int
		for i = 0; i < length; i++ {
			if data[i] != 0 {
				var count uint32 = brotli_max_uint32_t(data[i], count_limit)
				var node HuffmanTree
				InitHuffmanTree(&node, count, -1, int16(i))
				tree = append(tree, node)
			}
		}

		var n int = len(tree)
		if n == 0 {
			return
		}

		if n == 1 {
			depth[tree[0].index_right_or_value_] = 1
			return
		}

		sort.Slice(tree, func(a, b int) bool {
			return SortHuffmanTree(&tree[a], &tree[b])
		})

		/* The nodes are:
		   [0, n): the sorted leaf nodes that we start with.
		   [n]: we add a sentinel here.
		   [n + 1, 2n): new parent nodes are added here, starting from
		                (n+1). These are naturally in ascending order.
		   [2n]: we add a sentinel at the end as well. */
		var sentinel HuffmanTree
		InitHuffmanTree(&sentinel, BROTLI_UINT32_MAX, -1, -1)
		tree = append(tree, sentinel, sentinel)
		var next_leaf int = 0
		var next_node int = n + 1
		var k int
		for k = n - 1; k > 0; k-- {
			var left int
			var right int
			if tree[next_leaf].total_count_ <= tree[next_node].total_count_ {
				left = next_leaf
				next_leaf++
			} else {
				left = next_node
				next_node++
			}

			if tree[next_leaf].total_count_ <= tree[next_node].total_count_ {
				right = next_leaf
				next_leaf++
			} else {
				right = next_node
				next_node++
			}

			var j_end int = len(tree) - 1
			tree[j_end].total_count_ = tree[left].total_count_ + tree[right].total_count_
			tree[j_end].index_left_ = int16(left)
			tree[j_end].index_right_or_value_ = int16(right)
			tree = append(tree, sentinel)
		}

		SetDepth(2*n-1, tree, depth, 0)

		/* We need to pack the Huffman tree in tree_limit bits.
		   If this was not successful, add fake entities to the lowest values
		   and retry. */
		var max_depth byte = 0
		for i = 0; i < length; i++ {
			if depth[i] > max_depth {
				max_depth = depth[i]
			}
		}

		if int(max_depth) <= tree_limit {
			return
		}
	}
}

/* Get the actual bit values for a tree of bit depths. */
func ConvertBitDepthsToSymbols(depth []byte, length int, bits []uint16) {
	/* In Brotli, all bit depths are [1..15]
	   0 bit depth means that the symbol does not exist. */
	const kMaxBits = 16

	var bl_count [kMaxBits]uint16
	var next_code [kMaxBits]uint16
	var i int
	var code uint16 = 0
	for i = 0; i < length; i++ {
		bl_count[depth[i]]++
	}

	bl_count[0] = 0
	next_code[0] = 0
	for i = 1; i < kMaxBits; i++ {
		code = (code + bl_count[i-1]) << 1
		next_code[i] = code
	}

	for i = 0; i < length; i++ {
		if depth[i] != 0 {
			bits[i] = ReverseBits(int(depth[i]), next_code[depth[i]])
			next_code[depth[i]]++
		}
	}
}

func ReverseBits(num_bits int, bits uint16) uint16 {
	var retval uint16 = 0
	var i int
	for i = 0; i < num_bits; i++ {
		retval = (retval << 1) | (bits & 1)
		bits >>= 1
	}

	return retval
}

func WriteHuffmanTreeRepetitions(previous_value int, value int, repetitions int, tree []byte, extra_bits_data []byte, tree_size *int) {
	if previous_value != value {
		tree[*tree_size] = byte(value)
		extra_bits_data[*tree_size] = 0
		(*tree_size)++
		repetitions--
	}

	for repetitions >= 1 {
		if repetitions < 3 {
			var i int
			for i = 0; i < repetitions; i++ {
				tree[*tree_size] = byte(value)
				extra_bits_data[*tree_size] = 0
				(*tree_size)++
			}

			break
		} else if repetitions < 7 {
			tree[*tree_size] = 16
			extra_bits_data[*tree_size] = byte(repetitions - 3)
			(*tree_size)++
			break
		} else {
			tree[*tree_size] = 16
			extra_bits_data[*tree_size] = 3
			(*tree_size)++
			repetitions -= 6
		}
	}
}

func WriteHuffmanTreeRepetitionsZeros(repetitions int, tree []byte, extra_bits_data []byte, tree_size *int) {
	for repetitions >= 1 {
		if repetitions < 3 {
			var i int
			for i = 0; i < repetitions; i++ {
				tree[*tree_size] = 0
				extra_bits_data[*tree_size] = 0
				(*tree_size)++
			}

			break
		} else if repetitions < 11 {
			tree[*tree_size] = 17
			extra_bits_data[*tree_size] = byte(repetitions - 3)
			(*tree_size)++
			break
		} else if repetitions < 139 {
			tree[*tree_size] = 18
			extra_bits_data[*tree_size] = byte(repetitions - 11)
			(*tree_size)++
			break
		} else {
			tree[*tree_size] = 18
			extra_bits_data[*tree_size] = 0x7f /* 138 repeated zeros */
			(*tree_size)++
			repetitions -= 138
		}
	}
}

/* Run-length encodes a sequence of code lengths into the code-length
   alphabet: symbol 16 repeats the previous non-zero length 3..6 times with
   2 extra bits, 17 codes 3..10 zeros with 3 extra bits and 18 codes 11..138
   zeros with 7 extra bits. */
func WriteHuffmanTree(depth []byte, length int, tree []byte, extra_bits_data []byte, tree_size *int) {
	var previous_value int = 8
	var i int
	for i = 0; i < length; {
		var value int = int(depth[i])
		var reps int = 1
		var k int
		for k = i + 1; k < length && int(depth[k]) == value; k++ {
			reps++
		}

		if value == 0 {
			WriteHuffmanTreeRepetitionsZeros(reps, tree, extra_bits_data, tree_size)
		} else {
			WriteHuffmanTreeRepetitions(previous_value, value, reps, tree, extra_bits_data, tree_size)
			previous_value = value
		}

		i += reps
	}
}

/* A prefix code for one alphabet: bit depths, the canonical bit values and,
   for codes with at most four symbols, the list of populated symbols. */
type EntropyCode struct {
	depth_   []byte
	bits_    []uint16
	symbols_ [4]int
	count_   int
}

func BuildEntropyCode(histogram []uint32, tree_limit int, alphabet_size int, code *EntropyCode) {
	assert(alphabet_size <= len(histogram))
	code.depth_ = make([]byte, alphabet_size)
	code.bits_ = make([]uint16, alphabet_size)
	code.symbols_ = [4]int{}
	code.count_ = 0
	var i int
	for i = 0; i < alphabet_size; i++ {
		if histogram[i] > 0 {
			if code.count_ < 4 {
				code.symbols_[code.count_] = i
			}

			code.count_++
		}
	}

	for i = alphabet_size; i < len(histogram); i++ {
		/* A populated symbol outside the alphabet cannot be encoded. */
		assert(histogram[i] == 0)
	}

	if code.count_ == 0 {
		return
	}

	CreateHuffmanTree(histogram, alphabet_size, tree_limit, code.depth_)
	ConvertBitDepthsToSymbols(code.depth_, alphabet_size, code.bits_)
}
