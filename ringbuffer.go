package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Sliding window over the input data. */

/* A RingBuffer(window_bits, tail_bits) contains `1 << window_bits' bytes of
   data in a circular manner: writing a byte writes it to:
     `pos_ % (1 << window_bits)'.
   For convenience, the RingBuffer array contains another copy of the
   first `1 << tail_bits' bytes:
     buffer_[i] == buffer_[i + (1 << window_bits)], if i < (1 << tail_bits),
   so that a slice of at most `1 << tail_bits' bytes never has to wrap. */
type RingBuffer struct {
	size_      uint
	mask_      uint
	tail_size_ uint
	pos_       uint
	buffer_    []byte
}

/* Extra bytes past the logical end so that four-byte hashes can be read at
   every position. */
const kSlackForFourByteHashingEverywhere = 3

func NewRingBuffer(window_bits int, tail_bits int) *RingBuffer {
	var rb *RingBuffer = new(RingBuffer)
	rb.size_ = 1 << uint(window_bits)
	rb.mask_ = rb.size_ - 1
	rb.tail_size_ = 1 << uint(tail_bits)
	rb.pos_ = 0
	rb.buffer_ = make([]byte, rb.size_+rb.tail_size_+kSlackForFourByteHashingEverywhere)
	return rb
}

/* Push bytes into the ring buffer. */
func (rb *RingBuffer) Write(bytes []byte) {
	var masked_pos uint = rb.pos_ & rb.mask_
	var n uint = uint(len(bytes))

	if masked_pos+n <= rb.size_ {
		/* A single write fits. */
		copy(rb.buffer_[masked_pos:], bytes)
	} else {
		/* Split into two writes. */
		var head_size uint = rb.size_ - masked_pos
		copy(rb.buffer_[masked_pos:], bytes[:head_size])
		copy(rb.buffer_[0:], bytes[head_size:])
	}

	/* Keep the tail mirror of the beginning in sync. */
	if masked_pos < rb.tail_size_ {
		copy(rb.buffer_[rb.size_+masked_pos:], bytes[:brotli_min_size_t(n, rb.tail_size_-masked_pos)])
	}

	if masked_pos+n > rb.size_ {
		var wrapped uint = brotli_min_size_t(masked_pos+n-rb.size_, rb.tail_size_)
		copy(rb.buffer_[rb.size_:rb.size_+wrapped], rb.buffer_[:wrapped])
	}

	rb.pos_ += n
}

func (rb *RingBuffer) Start() []byte {
	return rb.buffer_
}
