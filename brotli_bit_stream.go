package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Functions for writing the fully parameterized meta-block onto the bit
   stream. All Store and Encode functions here use a storage_ix, which is
   always the bit position for the current storage. */

/* A meta-block length header: bit 0 (not the final empty meta-block), the
   number of nibbles it takes to write meta_block_size, then the nibbles,
   least significant first. */
func EncodeMetaBlockLength(meta_block_size uint, storage_ix *int, storage []byte) {
	WriteBits(1, 0, storage_ix, storage)
	var num_bits int = Log2Floor(uint32(meta_block_size)) + 1
	WriteBits(3, uint64((num_bits+3)>>2), storage_ix, storage)
	for num_bits > 0 {
		WriteBits(4, uint64(meta_block_size&0xf), storage_ix, storage)
		meta_block_size >>= 4
		num_bits -= 4
	}
}

func EntropyEncode(val int, code *EntropyCode, storage_ix *int, storage []byte) {
	if code.count_ <= 1 {
		return
	}

	WriteBits(uint(code.depth_[val]), uint64(code.bits_[val]), storage_ix, storage)
}

func StoreHuffmanTreeOfHuffmanTreeToBitMask(code_length_bitdepth []byte, storage_ix *int, storage []byte) {
	var kStorageOrder = [kCodeLengthCodes]byte{1, 2, 3, 4, 0, 17, 18, 5, 6, 16, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	/* Throw away trailing zeros: */
	var codes_to_store int = kCodeLengthCodes

	for ; codes_to_store > 4; codes_to_store-- {
		if code_length_bitdepth[kStorageOrder[codes_to_store-1]] != 0 {
			break
		}
	}

	WriteBits(4, uint64(codes_to_store-4), storage_ix, storage)
	var skip_two_first bool = code_length_bitdepth[kStorageOrder[0]] == 0 && code_length_bitdepth[kStorageOrder[1]] == 0
	WriteBitSingle(skip_two_first, storage_ix, storage)
	var i int = 0
	if skip_two_first {
		i = 2
	}

	for ; i < codes_to_store; i++ {
		var length = [6]byte{2, 4, 3, 2, 2, 4}
		var bits = [6]byte{0, 7, 3, 1, 2, 15}
		var v byte = code_length_bitdepth[kStorageOrder[i]]
		WriteBits(uint(length[v]), uint64(bits[v]), storage_ix, storage)
	}
}

func WriteBitSingle(bit bool, storage_ix *int, storage []byte) {
	if bit {
		WriteBits(1, 1, storage_ix, storage)
	} else {
		WriteBits(1, 0, storage_ix, storage)
	}
}

func StoreHuffmanTreeToBitMask(huffman_tree []byte, huffman_tree_extra_bits []byte, huffman_tree_size int, entropy *EntropyCode, storage_ix *int, storage []byte) {
	var i int
	for i = 0; i < huffman_tree_size; i++ {
		var ix int = int(huffman_tree[i])
		var extra_bits int = int(huffman_tree_extra_bits[i])
		EntropyEncode(ix, entropy, storage_ix, storage)
		switch ix {
		case 16:
			WriteBits(2, uint64(extra_bits), storage_ix, storage)

		case 17:
			WriteBits(3, uint64(extra_bits), storage_ix, storage)

		case 18:
			WriteBits(7, uint64(extra_bits), storage_ix, storage)
		}
	}
}

/* Stores a prefix code so that the decoder can rebuild it knowing only the
   alphabet size: either as an explicit list of at most four symbols or as a
   full code-length sequence coded with the secondary code-length alphabet. */
func StoreHuffmanCode(code *EntropyCode, alphabet_size int, storage_ix *int, storage []byte) {
	var depth []byte = code.depth_
	var max_bits int = 0
	var max_bits_counter int = alphabet_size - 1
	for max_bits_counter != 0 {
		max_bits_counter >>= 1
		max_bits++
	}

	if code.count_ == 0 {
		/* Emit a minimal tree for empty cases. */
		/* bits: small tree marker: 1, count-1: 0, max_bits-sized encoding
		   for a phantom symbol 0. */
		WriteBits(uint(3+max_bits), 0x01, storage_ix, storage)
		return
	}

	if code.count_ <= 4 {
		var symbols [4]int
		var k int
		for k = 0; k < code.count_; k++ {
			symbols[k] = code.symbols_[k]
		}

		/* Sort by code length, ties keep the symbol order. */
		for k = 1; k < code.count_; k++ {
			var j int = k
			for j > 0 && depth[symbols[j]] < depth[symbols[j-1]] {
				var t int = symbols[j]
				symbols[j] = symbols[j-1]
				symbols[j-1] = t
				j--
			}
		}

		/* Small tree marker to encode 1-4 symbols. */
		WriteBits(1, 1, storage_ix, storage)

		WriteBits(2, uint64(code.count_-1), storage_ix, storage)
		var i int
		for i = 0; i < code.count_; i++ {
			WriteBits(uint(max_bits), uint64(symbols[i]), storage_ix, storage)
		}

		if code.count_ == 4 {
			if depth[symbols[0]] == 2 && depth[symbols[1]] == 2 && depth[symbols[2]] == 2 && depth[symbols[3]] == 2 {
				WriteBits(1, 0, storage_ix, storage)
			} else {
				WriteBits(1, 1, storage_ix, storage)
			}
		}

		return
	}

	WriteBits(1, 0, storage_ix, storage)

	var huffman_tree []byte = make([]byte, alphabet_size)
	var huffman_tree_extra_bits []byte = make([]byte, alphabet_size)
	var huffman_tree_size int = 0
	WriteHuffmanTree(depth, alphabet_size, huffman_tree, huffman_tree_extra_bits, &huffman_tree_size)
	var huffman_tree_histogram HistogramCodeLength
	huffman_tree_histogram.Clear()
	var i int
	for i = 0; i < huffman_tree_size; i++ {
		huffman_tree_histogram.Add(int(huffman_tree[i]))
	}

	var huffman_tree_entropy EntropyCode
	BuildEntropyCode(huffman_tree_histogram.data_[:], 5, kCodeLengthCodes, &huffman_tree_entropy)

	/* If the sequence ends in zeros or zero repeats, the decoder can infer
	   them from an explicit length, which sometimes comes out cheaper. */
	var trimmed_histogram HistogramCodeLength = huffman_tree_histogram
	var last_code int = huffman_tree_size - 1
	for huffman_tree[last_code] == 0 || huffman_tree[last_code] >= 17 {
		trimmed_histogram.Remove(int(huffman_tree[last_code]))
		last_code--
	}

	var trimmed_size int = trimmed_histogram.total_count_
	var write_length bool = false
	if trimmed_size > 1 && trimmed_size < huffman_tree_size {
		var trimmed_entropy EntropyCode
		BuildEntropyCode(trimmed_histogram.data_[:], 5, kCodeLengthCodes, &trimmed_entropy)
		var huffman_bit_cost int = HuffmanTreeBitCost(&huffman_tree_histogram, &huffman_tree_entropy)
		var trimmed_bit_cost int = HuffmanTreeBitCost(&trimmed_histogram, &trimmed_entropy)
		var nbits int = Log2Ceiling(uint32(trimmed_size - 1))
		var nbitpairs int = 1
		if nbits != 0 {
			nbitpairs = (nbits + 1) / 2
		}

		if trimmed_bit_cost+3+2*nbitpairs < huffman_bit_cost {
			write_length = true
			huffman_tree_size = trimmed_size
			huffman_tree_entropy = trimmed_entropy
		}
	}

	StoreHuffmanTreeOfHuffmanTreeToBitMask(huffman_tree_entropy.depth_, storage_ix, storage)
	WriteBitSingle(write_length, storage_ix, storage)
	if write_length {
		var nbits int = Log2Ceiling(uint32(huffman_tree_size - 1))
		var nbitpairs int = 1
		if nbits != 0 {
			nbitpairs = (nbits + 1) / 2
		}

		WriteBits(3, uint64(nbitpairs-1), storage_ix, storage)
		WriteBits(uint(nbitpairs*2), uint64(huffman_tree_size-2), storage_ix, storage)
	}

	StoreHuffmanTreeToBitMask(huffman_tree, huffman_tree_extra_bits, huffman_tree_size, &huffman_tree_entropy, storage_ix, storage)
}

func EncodeCommand(cmd *Command, entropy *EntropyCode, storage_ix *int, storage []byte) {
	var code int = int(cmd.command_prefix_)
	EntropyEncode(code, entropy, storage_ix, storage)
	if code >= 128 {
		code -= 128
	}

	var insert_extra_bits int = InsertLengthExtraBits(code)
	var copy_extra_bits int = CopyLengthExtraBits(code)
	if insert_extra_bits > 0 {
		var insert_extra_bits_val uint64 = uint64(int(cmd.insert_length_) - InsertLengthOffset(code))
		WriteBits(uint(insert_extra_bits), insert_extra_bits_val, storage_ix, storage)
	}

	if copy_extra_bits > 0 {
		var copy_extra_bits_val uint64 = uint64(int(cmd.copy_length_code_) - CopyLengthOffset(code))
		WriteBits(uint(copy_extra_bits), copy_extra_bits_val, storage_ix, storage)
	}
}

func EncodeCopyDistance(cmd *Command, entropy *EntropyCode, storage_ix *int, storage []byte) {
	EntropyEncode(int(cmd.distance_prefix_), entropy, storage_ix, storage)
	if cmd.distance_extra_bits_ > 0 {
		WriteBits(uint(cmd.distance_extra_bits_), uint64(cmd.distance_extra_bits_value_), storage_ix, storage)
	}
}

func IndexOf(v []int, value int) int {
	var i int
	for i = 0; i < len(v); i++ {
		if v[i] == value {
			return i
		}
	}

	return -1
}

func MoveToFront(v []int, index int) {
	var value int = v[index]
	var i int
	for i = index; i > 0; i-- {
		v[i] = v[i-1]
	}

	v[0] = value
}

func MoveToFrontTransform(v []int) []int {
	if len(v) == 0 {
		return nil
	}

	var max_value int = v[0]
	var i int
	for i = 1; i < len(v); i++ {
		if v[i] > max_value {
			max_value = v[i]
		}
	}

	var mtf []int = make([]int, max_value+1)
	for i = 0; i <= max_value; i++ {
		mtf[i] = i
	}

	var result []int = make([]int, len(v))
	for i = 0; i < len(v); i++ {
		var index int = IndexOf(mtf, v[i])
		assert(index >= 0)
		result[i] = index
		MoveToFront(mtf, index)
	}

	return result
}

/* Finds runs of zeros in v_in and replaces them with a prefix code of the
   run length plus extra bits in *v_out and *extra_bits. Non-zero values in
   v_in are shifted by *max_run_length_prefix. Will not create prefix codes
   bigger than the initial value of *max_run_length_prefix. The prefix code
   of run length L is simply Log2Floor(L) and the number of extra bits is
   the same as the prefix code. */
func RunLengthCodeZeros(v_in []int, max_run_length_prefix *int, v_out *[]int, extra_bits *[]int) {
	var max_reps int = 0
	var i int
	for i = 0; i < len(v_in); {
		for i < len(v_in) && v_in[i] != 0 {
			i++
		}

		var reps int = 0
		for i < len(v_in) && v_in[i] == 0 {
			reps++
			i++
		}

		max_reps = brotli_max_int(reps, max_reps)
	}

	var max_prefix int = 0
	if max_reps > 0 {
		max_prefix = Log2Floor(uint32(max_reps))
	}

	*max_run_length_prefix = brotli_min_int(max_prefix, *max_run_length_prefix)
	for i = 0; i < len(v_in); {
		if v_in[i] != 0 {
			*v_out = append(*v_out, v_in[i]+*max_run_length_prefix)
			*extra_bits = append(*extra_bits, 0)
			i++
		} else {
			var reps int = 1
			var k int
			for k = i + 1; k < len(v_in) && v_in[k] == 0; k++ {
				reps++
			}

			i += reps
			for reps != 0 {
				if reps < 2<<uint(*max_run_length_prefix) {
					var run_length_prefix int = Log2Floor(uint32(reps))
					*v_out = append(*v_out, run_length_prefix)
					*extra_bits = append(*extra_bits, reps-(1<<uint(run_length_prefix)))
					break
				} else {
					*v_out = append(*v_out, *max_run_length_prefix)
					*extra_bits = append(*extra_bits, (1<<uint(*max_run_length_prefix))-1)
					reps -= (2 << uint(*max_run_length_prefix)) - 1
				}
			}
		}
	}
}

/* Returns a maximum zero-run-length-prefix value such that run-length coding
   zeros in v with this maximum prefix value and then encoding the resulting
   histogram and entropy-coding v produces the least amount of bits. */
func BestMaxZeroRunLengthPrefix(v []int) int {
	var min_cost int = 1 << 30
	var best_max_prefix int = 0
	var max_prefix int
	for max_prefix = 0; max_prefix <= 16; max_prefix++ {
		var rle_symbols []int
		var extra_bits []int
		var max_run_length_prefix int = max_prefix
		RunLengthCodeZeros(v, &max_run_length_prefix, &rle_symbols, &extra_bits)
		if max_run_length_prefix < max_prefix {
			break
		}

		var histogram HistogramLiteral
		histogram.Clear()
		var i int
		for i = 0; i < len(rle_symbols); i++ {
			histogram.Add(rle_symbols[i])
		}

		var bit_cost int = int(PopulationCostLiteral(&histogram))
		if max_prefix > 0 {
			bit_cost += 4
		}

		for i = 1; i <= max_prefix; i++ {
			/* Pay the extra bits of every emitted run symbol. */
			bit_cost += int(histogram.data_[i]) * i
		}

		if bit_cost < min_cost {
			min_cost = bit_cost
			best_max_prefix = max_prefix
		}
	}

	return best_max_prefix
}

func EncodeContextMap(context_map []int, num_clusters int, storage_ix *int, storage []byte) {
	WriteBits(8, uint64(num_clusters-1), storage_ix, storage)

	if num_clusters == 1 {
		return
	}

	var transformed_symbols []int = MoveToFrontTransform(context_map)
	var rle_symbols []int
	var extra_bits []int
	var max_run_length_prefix int = BestMaxZeroRunLengthPrefix(transformed_symbols)
	RunLengthCodeZeros(transformed_symbols, &max_run_length_prefix, &rle_symbols, &extra_bits)
	var symbol_histogram HistogramLiteral
	symbol_histogram.Clear()
	var i int
	for i = 0; i < len(rle_symbols); i++ {
		symbol_histogram.Add(rle_symbols[i])
	}

	var symbol_code EntropyCode
	BuildEntropyCode(symbol_histogram.data_[:], 15, num_clusters+max_run_length_prefix, &symbol_code)
	var use_rle bool = max_run_length_prefix > 0
	WriteBitSingle(use_rle, storage_ix, storage)
	if use_rle {
		WriteBits(4, uint64(max_run_length_prefix-1), storage_ix, storage)
	}

	StoreHuffmanCode(&symbol_code, num_clusters+max_run_length_prefix, storage_ix, storage)
	for i = 0; i < len(rle_symbols); i++ {
		EntropyEncode(rle_symbols[i], &symbol_code, storage_ix, storage)
		if rle_symbols[i] > 0 && rle_symbols[i] <= max_run_length_prefix {
			WriteBits(uint(rle_symbols[i]), uint64(extra_bits[i]), storage_ix, storage)
		}
	}

	/* Use move-to-front. */
	WriteBits(1, 1, storage_ix, storage)
}

type BlockSplitCode struct {
	block_type_code EntropyCode
	block_len_code  EntropyCode
}

func EncodeBlockLength(entropy *EntropyCode, length int, storage_ix *int, storage []byte) {
	var len_code int = BlockLengthPrefix(length)
	var extra_bits int = BlockLengthExtraBits(len_code)
	var extra_bits_value int = length - BlockLengthOffset(len_code)
	EntropyEncode(len_code, entropy, storage_ix, storage)

	if extra_bits > 0 {
		WriteBits(uint(extra_bits), uint64(extra_bits_value), storage_ix, storage)
	}
}

/* Repeated and incrementing block types are common; a two-slot ring of the
   most recent types turns them into the short codes 0 and 1. */
func ComputeBlockTypeShortCodes(split *BlockSplit) {
	if split.num_types_ <= 1 {
		split.num_types_ = 1
		return
	}

	var ringbuffer = [2]int{0, 1}
	var index uint = 0
	var i int
	for i = 0; i < len(split.types_); i++ {
		var block_type int = split.types_[i]
		var type_code int
		if block_type == ringbuffer[index&1] {
			type_code = 0
		} else if block_type == ringbuffer[(index-1)&1]+1 {
			type_code = 1
		} else {
			type_code = block_type + 2
		}

		ringbuffer[index&1] = block_type
		index++
		split.type_codes_ = append(split.type_codes_, type_code)
	}
}

func BuildAndEncodeBlockSplitCode(split *BlockSplit, code *BlockSplitCode, storage_ix *int, storage []byte) {
	if split.num_types_ <= 1 {
		WriteBits(1, 0, storage_ix, storage)
		return
	}

	WriteBits(1, 1, storage_ix, storage)
	var type_histo HistogramLiteral
	type_histo.Clear()
	var i int
	for i = 0; i < len(split.type_codes_); i++ {
		type_histo.Add(split.type_codes_[i])
	}

	BuildEntropyCode(type_histo.data_[:], 15, split.num_types_+2, &code.block_type_code)
	var length_histo HistogramBlockLength
	length_histo.Clear()
	for i = 0; i < len(split.lengths_); i++ {
		length_histo.Add(BlockLengthPrefix(split.lengths_[i]))
	}

	BuildEntropyCode(length_histo.data_[:], 15, kNumBlockLenPrefixes, &code.block_len_code)
	WriteBits(8, uint64(split.num_types_-1), storage_ix, storage)
	StoreHuffmanCode(&code.block_type_code, split.num_types_+2, storage_ix, storage)
	StoreHuffmanCode(&code.block_len_code, kNumBlockLenPrefixes, storage_ix, storage)
	EncodeBlockLength(&code.block_len_code, split.lengths_[0], storage_ix, storage)
}

func MoveAndEncode(code *BlockSplitCode, it *BlockSplitIterator, storage_ix *int, storage []byte) {
	if it.length_ == 0 {
		it.idx_++
		it.type_ = it.split_.types_[it.idx_]
		it.length_ = it.split_.lengths_[it.idx_]
		var type_code int = it.split_.type_codes_[it.idx_]
		EntropyEncode(type_code, &code.block_type_code, storage_ix, storage)
		EncodeBlockLength(&code.block_len_code, it.length_, storage_ix, storage)
	}

	it.length_--
}

func StoreMetaBlock(mb *MetaBlock, ringbuffer []byte, mask uint, pos *uint, storage_ix *int, storage []byte) {
	var length uint = MetaBlockLength(mb.cmds)
	var end_pos uint = *pos + length
	EncodeMetaBlockLength(length-1, storage_ix, storage)

	var literal_split_code BlockSplitCode
	var command_split_code BlockSplitCode
	var distance_split_code BlockSplitCode
	BuildAndEncodeBlockSplitCode(&mb.literal_split, &literal_split_code, storage_ix, storage)
	BuildAndEncodeBlockSplitCode(&mb.command_split, &command_split_code, storage_ix, storage)
	BuildAndEncodeBlockSplitCode(&mb.distance_split, &distance_split_code, storage_ix, storage)
	WriteBits(2, uint64(mb.params.distance_postfix_bits), storage_ix, storage)
	WriteBits(4, uint64(mb.params.num_direct_distance_codes>>mb.params.distance_postfix_bits), storage_ix, storage)
	var num_distance_codes int = kNumDistanceShortCodes + mb.params.num_direct_distance_codes + (48 << mb.params.distance_postfix_bits)
	var i int
	for i = 0; i < mb.literal_split.num_types_; i++ {
		WriteBits(2, uint64(mb.literal_context_modes[i]), storage_ix, storage)
	}

	EncodeContextMap(mb.literal_context_map, len(mb.literal_histograms), storage_ix, storage)
	EncodeContextMap(mb.distance_context_map, len(mb.distance_histograms), storage_ix, storage)
	var literal_codes []EntropyCode = make([]EntropyCode, len(mb.literal_histograms))
	var command_codes []EntropyCode = make([]EntropyCode, len(mb.command_histograms))
	var distance_codes []EntropyCode = make([]EntropyCode, len(mb.distance_histograms))
	for i = 0; i < len(literal_codes); i++ {
		BuildEntropyCode(mb.literal_histograms[i].data_[:], 15, kNumLiteralSymbols, &literal_codes[i])
	}

	for i = 0; i < len(command_codes); i++ {
		BuildEntropyCode(mb.command_histograms[i].data_[:], 15, kNumCommandPrefixes, &command_codes[i])
	}

	for i = 0; i < len(distance_codes); i++ {
		BuildEntropyCode(mb.distance_histograms[i].data_[:], 15, num_distance_codes, &distance_codes[i])
	}

	for i = 0; i < len(literal_codes); i++ {
		StoreHuffmanCode(&literal_codes[i], kNumLiteralSymbols, storage_ix, storage)
	}

	for i = 0; i < len(command_codes); i++ {
		StoreHuffmanCode(&command_codes[i], kNumCommandPrefixes, storage_ix, storage)
	}

	for i = 0; i < len(distance_codes); i++ {
		StoreHuffmanCode(&distance_codes[i], num_distance_codes, storage_ix, storage)
	}

	var literal_it BlockSplitIterator
	var command_it BlockSplitIterator
	var distance_it BlockSplitIterator
	InitBlockSplitIterator(&literal_it, &mb.literal_split)
	InitBlockSplitIterator(&command_it, &mb.command_split)
	InitBlockSplitIterator(&distance_it, &mb.distance_split)
	for i = 0; i < len(mb.cmds); i++ {
		var cmd *Command = &mb.cmds[i]
		MoveAndEncode(&command_split_code, &command_it, storage_ix, storage)
		EncodeCommand(cmd, &command_codes[command_it.type_], storage_ix, storage)
		var j uint32
		for j = 0; j < cmd.insert_length_; j++ {
			MoveAndEncode(&literal_split_code, &literal_it, storage_ix, storage)
			var prev_byte byte = 0
			var prev_byte2 byte = 0
			if *pos > 0 {
				prev_byte = ringbuffer[(*pos-1)&mask]
			}

			if *pos > 1 {
				prev_byte2 = ringbuffer[(*pos-2)&mask]
			}

			var context int = (literal_it.type_ << kLiteralContextBits) + int(Context(prev_byte, prev_byte2, mb.literal_context_modes[literal_it.type_]))
			var histogram_idx int = mb.literal_context_map[context]
			EntropyEncode(int(ringbuffer[*pos&mask]), &literal_codes[histogram_idx], storage_ix, storage)
			(*pos)++
		}

		if *pos < end_pos && cmd.distance_prefix_ != 0xffff {
			MoveAndEncode(&distance_split_code, &distance_it, storage_ix, storage)
			var context int = (distance_it.type_ << kDistanceContextBits) + DistanceContext(cmd)
			var histogram_index int = mb.distance_context_map[context]
			EncodeCopyDistance(cmd, &distance_codes[histogram_index], storage_ix, storage)
		}

		*pos += uint(cmd.copy_length_)
	}

	assert(*pos == end_pos)
}
