package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

func InitialEntropyCodesCommand(data []uint16, length int, stride int, num_histograms int, histograms []HistogramCommand) {
	var seed uint32 = 7
	var block_length int = length / num_histograms
	var i int
	for i = 0; i < num_histograms; i++ {
		histograms[i].Clear()
	}

	for i = 0; i < num_histograms; i++ {
		var pos int = length * i / num_histograms
		if i != 0 {
			pos += int(MyRand(&seed) % uint32(block_length))
		}

		if pos+stride >= length {
			pos = length - stride - 1
		}

		var j int
		for j = 0; j < stride; j++ {
			histograms[i].Add(int(data[pos+j]))
		}
	}
}

func RandomSampleCommand(seed *uint32, data []uint16, length int, stride int, sample *HistogramCommand) {
	var pos int = 0
	if stride >= length {
		stride = length
	} else {
		pos = int(MyRand(seed) % uint32(length-stride+1))
	}

	var j int
	for j = 0; j < stride; j++ {
		sample.Add(int(data[pos+j]))
	}
}

func RefineEntropyCodesCommand(data []uint16, length int, stride int, num_histograms int, histograms []HistogramCommand) {
	var iters int = kIterMulForRefining*length/stride + kMinItersForRefining
	var seed uint32 = 7
	var iter int
	iters = ((iters + num_histograms - 1) / num_histograms) * num_histograms
	for iter = 0; iter < iters; iter++ {
		var sample HistogramCommand
		sample.Clear()
		RandomSampleCommand(&seed, data, length, stride, &sample)
		histograms[iter%num_histograms].AddHistogram(&sample)
	}
}

/* Assigns a block id from the range [0, num_histograms) to each data element
   in data[0..length) and fills in block_id[0..length) with the assigned
   values. Returns the number of blocks, i.e. one plus the number of block
   switch points. */
func FindBlocksCommand(data []uint16, length int, block_switch_bitcost float64, num_histograms int, histograms []HistogramCommand, insert_cost []float64, cost []float64, switch_signal []byte, block_id []byte) int {
	var data_size int = kNumCommandPrefixes
	var bitmaplen int = (num_histograms + 7) >> 3
	var num_blocks int = 1
	var i int
	var j int
	if num_histograms <= 1 {
		for i = 0; i < length; i++ {
			block_id[i] = 0
		}

		return 1
	}

	for i = 0; i < data_size*num_histograms; i++ {
		insert_cost[i] = 0
	}

	for i = 0; i < num_histograms; i++ {
		insert_cost[i] = FastLog2(uint(histograms[i].total_count_))
	}

	for i = data_size; i != 0; {
		i--
		for j = 0; j < num_histograms; j++ {
			insert_cost[i*num_histograms+j] = insert_cost[j] - BitCost(int(histograms[j].data_[i]))
		}
	}

	for i = 0; i < num_histograms; i++ {
		cost[i] = 0
	}

	for i = 0; i < length*bitmaplen; i++ {
		switch_signal[i] = 0
	}

	/* After each iteration of this loop, cost[k] will contain the difference
	   between the minimum cost of arriving at the current byte position using
	   entropy code k, and the minimum cost of arriving at the current byte
	   position. This difference is capped at the block switch cost, and if it
	   reaches block switch cost, it means that when we trace back from the
	   last position, we need to switch here. */
	var byte_ix int
	for byte_ix = 0; byte_ix < length; byte_ix++ {
		var ix int = byte_ix * bitmaplen
		var insert_cost_ix int = int(data[byte_ix]) * num_histograms
		var min_cost float64 = 1e99
		var block_switch_cost float64 = block_switch_bitcost
		var k int
		for k = 0; k < num_histograms; k++ {
			/* We are coding the symbol in data[byte_ix] with entropy code k. */
			cost[k] += insert_cost[insert_cost_ix+k]

			if cost[k] < min_cost {
				min_cost = cost[k]
				block_id[byte_ix] = byte(k)
			}
		}

		/* More blocks for the beginning. */
		if byte_ix < 2000 {
			block_switch_cost *= 0.77 + 0.07*float64(byte_ix)/2000
		}

		for k = 0; k < num_histograms; k++ {
			cost[k] -= min_cost
			if cost[k] >= block_switch_cost {
				cost[k] = block_switch_cost
				switch_signal[ix+(k>>3)] |= 1 << uint(k&7)
			}
		}
	}

	/* Trace back from the last position and switch at the marked places. */
	byte_ix = length - 1

	var cur_id byte = block_id[byte_ix]
	for byte_ix > 0 {
		byte_ix--
		if switch_signal[byte_ix*bitmaplen+int(cur_id>>3)]&(1<<uint(cur_id&7)) != 0 {
			if cur_id != block_id[byte_ix] {
				cur_id = block_id[byte_ix]
				num_blocks++
			}
		}

		block_id[byte_ix] = cur_id
	}

	return num_blocks
}

func RemapBlockIdsCommand(block_ids []byte, length int, num_histograms int) int {
	var kInvalidId int = 256
	var new_id []int = make([]int, num_histograms)
	var next_id int = 0
	var i int
	for i = 0; i < num_histograms; i++ {
		new_id[i] = kInvalidId
	}

	for i = 0; i < length; i++ {
		if new_id[block_ids[i]] == kInvalidId {
			new_id[block_ids[i]] = next_id
			next_id++
		}
	}

	for i = 0; i < length; i++ {
		block_ids[i] = byte(new_id[block_ids[i]])
	}

	return next_id
}

func BuildBlockHistogramsCommand(data []uint16, length int, block_ids []byte, num_histograms int, histograms []HistogramCommand) {
	var i int
	for i = 0; i < num_histograms; i++ {
		histograms[i].Clear()
	}

	for i = 0; i < length; i++ {
		histograms[block_ids[i]].Add(int(data[i]))
	}
}

/* Collapses the block ids to a histogram-clustered alphabet so that ids of
   similar blocks coincide. */
func ClusterBlocksCommand(data []uint16, length int, block_ids []byte) {
	var histograms []HistogramCommand
	var block_index []int = make([]int, length)
	var cur_idx int = 0
	var cur_histogram HistogramCommand
	var i int
	cur_histogram.Clear()
	for i = 0; i < length; i++ {
		var block_boundary bool = i+1 == length || block_ids[i] != block_ids[i+1]
		block_index[i] = cur_idx
		cur_histogram.Add(int(data[i]))
		if block_boundary {
			histograms = append(histograms, cur_histogram)
			cur_histogram.Clear()
			cur_idx++
		}
	}

	var clustered_histograms []HistogramCommand
	var histogram_symbols []int
	ClusterHistogramsCommand(histograms, 1, len(histograms), kMaxNumberOfBlockTypes, &clustered_histograms, &histogram_symbols)

	for i = 0; i < length; i++ {
		block_ids[i] = byte(histogram_symbols[block_index[i]])
	}
}

func SplitByteVectorCommand(data []uint16, literals_per_histogram int, max_histograms int, sampling_stride_length int, block_switch_cost float64, split *BlockSplit) {
	if len(data) == 0 {
		split.num_types_ = 1
		return
	} else if len(data) < kMinLengthForBlockSplitting {
		split.num_types_ = 1
		split.types_ = append(split.types_, 0)
		split.lengths_ = append(split.lengths_, len(data))
		return
	}

	var length int = len(data)
	var num_histograms int = length/literals_per_histogram + 1
	if num_histograms > max_histograms {
		num_histograms = max_histograms
	}

	var histograms []HistogramCommand = make([]HistogramCommand, num_histograms)

	/* Find good entropy codes. */
	InitialEntropyCodesCommand(data, length, sampling_stride_length, num_histograms, histograms)

	RefineEntropyCodesCommand(data, length, sampling_stride_length, num_histograms, histograms)
	{
		/* Find a good path through literals with the good entropy codes. */
		var block_ids []byte = make([]byte, length)
		var bitmaplen int = (num_histograms + 7) >> 3
		var insert_cost []float64 = make([]float64, kNumCommandPrefixes*num_histograms)
		var cost []float64 = make([]float64, num_histograms)
		var switch_signal []byte = make([]byte, length*bitmaplen)
		var i int
		for i = 0; i < 10; i++ {
			FindBlocksCommand(data, length, block_switch_cost, num_histograms, histograms, insert_cost, cost, switch_signal, block_ids)
			num_histograms = RemapBlockIdsCommand(block_ids, length, num_histograms)
			BuildBlockHistogramsCommand(data, length, block_ids, num_histograms, histograms)
		}

		ClusterBlocksCommand(data, length, block_ids)
		BuildBlockSplit(block_ids, split)
	}
}
