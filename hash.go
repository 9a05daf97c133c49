package brotli

/* Copyright 2010 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* A (forgetful) hash table to the data seen by the compressor, to help
   create backward references to previous data. */

const kBucketBits = 13

const kBlockBits = 8

const kMinMatchLength = 4

const kBucketSize = 1 << kBucketBits

const kBlockSize = 1 << kBlockBits

const kBlockMask = kBlockSize - 1

/* kHashMul32 multiplier has these properties:
   * The multiplier must be odd. Otherwise we may lose the highest bit.
   * No long streaks of 1s or 0s.
   * Is not unfortunate (see the unittest) for the English language.
   * There is no effort to ensure that it is a prime, the oddity is enough
     for this use. */
const kHashMul32 = 0x1e35a7bd

type Hasher struct {
	/* Candidate positions for each bucket, oldest to newest. */
	buckets_ []uint32

	/* Total number of positions stored per bucket; the low bits index the
	   circular candidate block. */
	num_ []int

	average_cost_ float64
}

func NewHasher() *Hasher {
	var h *Hasher = new(Hasher)
	h.buckets_ = make([]uint32, kBucketSize*kBlockSize)
	h.num_ = make([]int, kBucketSize)
	h.average_cost_ = 5.4
	return h
}

func (h *Hasher) Reset() {
	var i int
	for i = 0; i < kBucketSize; i++ {
		h.num_[i] = 0
	}
}

func HashBytes(data []byte) uint32 {
	/* The higher bits contain more mixture from the multiplication,
	   so we take our results from there. */
	return (BROTLI_UNALIGNED_LOAD32LE(data) * kHashMul32) >> (32 - kBucketBits)
}

func (h *Hasher) Store(data []byte, ix uint32) {
	var key uint32 = HashBytes(data)
	var minor_ix int = h.num_[key] & kBlockMask
	h.buckets_[int(key)<<kBlockBits+minor_ix] = ix
	h.num_[key]++
}

/* Finds the backward reference with the highest score among the candidates
   stored for the current four-byte hash. The score of a reference is the
   estimated entropy-coded size of the literals it replaces minus the size
   of the copy, both in bits. */
func (h *Hasher) FindLongestMatch(data []byte, literal_cost []float32, ring_buffer_mask uint, cur_ix uint, max_length uint, max_backward uint, best_len_out *uint, best_distance_out *uint, best_score_out *float64) bool {
	var cur_ix_masked uint = cur_ix & ring_buffer_mask
	var match_found bool = false
	if max_length < kMinMatchLength {
		return false
	}

	var start_cost4 float64 = 20
	if literal_cost != nil {
		start_cost4 = float64(literal_cost[cur_ix_masked]) +
			float64(literal_cost[(cur_ix+1)&ring_buffer_mask]) +
			float64(literal_cost[(cur_ix+2)&ring_buffer_mask]) +
			float64(literal_cost[(cur_ix+3)&ring_buffer_mask])
	}

	/* Don't accept a short copy from far away. */
	var best_score float64 = 8.115

	var best_len uint = 0
	var best_distance uint = 0
	var key uint32 = HashBytes(data[cur_ix_masked:])
	var bucket []uint32 = h.buckets_[int(key)<<kBlockBits:]
	var down int = 0
	if h.num_[key] > kBlockSize {
		down = h.num_[key] - kBlockSize
	}

	var i int
	for i = h.num_[key] - 1; i >= down; i-- {
		var prev_ix uint = uint(bucket[i&kBlockMask])
		var backward uint = cur_ix - prev_ix
		if backward == 0 || backward > max_backward {
			continue
		}

		var prev_ix_masked uint = prev_ix & ring_buffer_mask
		var l uint = FindMatchLengthWithLimit(data[prev_ix_masked:], data[cur_ix_masked:], max_length)
		if l >= kMinMatchLength {
			var score float64 = start_cost4 + h.average_cost_*float64(l-4) - 1.20*FastLog2(backward)
			if score > best_score {
				best_score = score
				best_len = l
				best_distance = backward
				match_found = true
			}
		}
	}

	if match_found {
		*best_len_out = best_len
		*best_distance_out = best_distance
		*best_score_out = best_score
	}

	return match_found
}
