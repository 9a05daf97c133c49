package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Implementation of the Brotli compressor. */

import "errors"

const kWindowBits = 22

/* To make decoding faster, we allow the decoder to write 16 bytes ahead in
   its ringbuffer, therefore the encoder has to decrease max distance by this
   amount. */
const kDecoderRingBufferWriteAheadSlack = 16

const kMetaBlockSizeBits = 21

const kRingBufferBits = 23

const kRingBufferMask = (1 << kRingBufferBits) - 1

var errWindowSize = errors.New("brotli: window size out of range [16, 24]")

type BrotliCompressor struct {
	window_bits_           int
	max_backward_distance_ uint
	hasher_                *Hasher
	dist_ringbuffer_       [4]int
	dist_ringbuffer_idx_   uint
	input_pos_             uint
	ringbuffer_            *RingBuffer
	literal_cost_          []float32
	storage_ix_            int
	storage_               []byte
}

func NewBrotliCompressor(window_bits int) (*BrotliCompressor, error) {
	if window_bits < 16 || window_bits > 24 {
		return nil, errWindowSize
	}

	var c *BrotliCompressor = new(BrotliCompressor)
	c.window_bits_ = window_bits
	c.max_backward_distance_ = (1 << uint(window_bits)) - kDecoderRingBufferWriteAheadSlack
	c.hasher_ = NewHasher()
	c.dist_ringbuffer_ = [4]int{4, 11, 15, 16}
	c.dist_ringbuffer_idx_ = 0
	c.input_pos_ = 0
	c.ringbuffer_ = NewRingBuffer(kRingBufferBits, kMetaBlockSizeBits)
	c.literal_cost_ = make([]float32, 1<<kRingBufferBits)
	c.storage_ix_ = 0
	c.storage_ = make([]byte, 2<<kMetaBlockSizeBits)
	return c, nil
}

func (c *BrotliCompressor) WriteStreamHeader() {
	/* Don't encode input size. */
	WriteBits(3, 0, &c.storage_ix_, c.storage_)

	/* Encode window size. */
	if c.window_bits_ == 16 {
		WriteBits(1, 0, &c.storage_ix_, c.storage_)
	} else {
		WriteBits(1, 1, &c.storage_ix_, c.storage_)
		WriteBits(3, uint64(c.window_bits_-17), &c.storage_ix_, c.storage_)
	}
}

/* Encodes input_buffer as one meta-block and returns the newly complete
   bytes of the compressed stream. Up to seven trailing bits stay behind in
   the bit sink for the next meta-block. */
func (c *BrotliCompressor) WriteMetaBlock(input_buffer []byte) []byte {
	var input_size uint = uint(len(input_buffer))
	assert(input_size > 0)
	assert(input_size <= 1<<kMetaBlockSizeBits)
	c.ringbuffer_.Write(input_buffer)
	EstimateBitCostsForLiterals(c.input_pos_, input_size, kRingBufferMask, c.ringbuffer_.Start(), c.literal_cost_)
	var commands []Command
	CreateBackwardReferences(input_size, c.input_pos_, c.ringbuffer_.Start(), c.literal_cost_, kRingBufferMask, c.max_backward_distance_, c.hasher_, &commands)
	ComputeDistanceShortCodes(commands, c.dist_ringbuffer_[:], &c.dist_ringbuffer_idx_)
	var params EncodingParams
	params.num_direct_distance_codes = 12
	params.distance_postfix_bits = 1
	params.literal_context_mode = CONTEXT_SIGNED
	var mb MetaBlock
	BuildMetaBlock(&params, commands, c.ringbuffer_.Start(), c.input_pos_, kRingBufferMask, &mb)
	StoreMetaBlock(&mb, c.ringbuffer_.Start(), kRingBufferMask, &c.input_pos_, &c.storage_ix_, c.storage_)

	/* Flush the complete bytes; preserve the fractional byte. */
	var output_size int = c.storage_ix_ >> 3
	var encoded_buffer []byte = make([]byte, output_size)
	copy(encoded_buffer, c.storage_[:output_size])
	c.storage_ix_ -= output_size << 3
	c.storage_[0] = c.storage_[output_size]
	return encoded_buffer
}

/* Seals the stream with an empty last meta-block and returns the remaining
   bytes, the trailing partial byte included. */
func (c *BrotliCompressor) FinishStream() []byte {
	WriteBits(1, 1, &c.storage_ix_, c.storage_)
	var output_size int = (c.storage_ix_ + 7) >> 3
	var encoded_buffer []byte = make([]byte, output_size)
	copy(encoded_buffer, c.storage_[:output_size])
	return encoded_buffer
}

/* One-shot compression of a whole buffer with the default window size. */
func CompressBuffer(input_buffer []byte) []byte {
	if len(input_buffer) == 0 {
		/* The shortest valid stream: a lone empty last meta-block. */
		return []byte{0x01, 0x00}
	}

	var compressor *BrotliCompressor
	compressor, _ = NewBrotliCompressor(kWindowBits)
	compressor.WriteStreamHeader()

	var encoded_buffer []byte
	var max_block_size int = 1 << kMetaBlockSizeBits
	var pos int
	for pos = 0; pos < len(input_buffer); pos += max_block_size {
		var block_size int = brotli_min_int(max_block_size, len(input_buffer)-pos)
		encoded_buffer = append(encoded_buffer, compressor.WriteMetaBlock(input_buffer[pos:pos+block_size])...)
	}

	encoded_buffer = append(encoded_buffer, compressor.FinishStream()...)
	return encoded_buffer
}
