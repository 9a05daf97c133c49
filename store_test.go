package brotli

import (
	"bytes"
	"testing"
)

func TestStoreMetaBlockAdvancesPosition(t *testing.T) {
	input := testInput(20000)
	mb, _ := splitsFor(t, input)

	storage := make([]byte, 2<<kMetaBlockSizeBits)
	storage_ix := 0
	var pos uint = 0
	rb := NewRingBuffer(kRingBufferBits, kMetaBlockSizeBits)
	rb.Write(input)
	StoreMetaBlock(mb, rb.Start(), kRingBufferMask, &pos, &storage_ix, storage)

	if pos != uint(len(input)) {
		t.Fatalf("position after store = %d, want %d", pos, len(input))
	}
	if storage_ix == 0 {
		t.Fatal("nothing written")
	}

	/* The meta-block leads with its length header. */
	br := &bitReader{data: storage}
	if br.readBit(t) != 0 {
		t.Fatal("meta-block marked as the last one")
	}
	nibbles := br.readBits(t, 3)
	size := 0
	for i := 0; i < nibbles; i++ {
		size |= br.readBits(t, 4) << uint(4*i)
	}
	if size != len(input)-1 {
		t.Errorf("length header = %d, want %d", size, len(input)-1)
	}
}

func TestStoreMetaBlockSyntheticCommands(t *testing.T) {
	/* Drive the builder and writer with a hand-made command stream, off the
	   reference-search path. */
	input := append([]byte("abcabcabc"), bytes.Repeat([]byte("zw"), 50)...)
	cmds := []Command{
		{insert_length_: 3, copy_length_: 6, copy_length_code_: 6, copy_distance_: 3},
		{insert_length_: 2, copy_length_: 98, copy_length_code_: 98, copy_distance_: 2},
	}
	if got := MetaBlockLength(cmds); got != uint(len(input)) {
		t.Fatalf("commands cover %d bytes, want %d", got, len(input))
	}

	c, err := NewBrotliCompressor(kWindowBits)
	if err != nil {
		t.Fatal(err)
	}
	c.ringbuffer_.Write(input)
	ComputeDistanceShortCodes(cmds, c.dist_ringbuffer_[:], &c.dist_ringbuffer_idx_)

	var params EncodingParams
	params.num_direct_distance_codes = 12
	params.distance_postfix_bits = 1
	params.literal_context_mode = CONTEXT_SIGNED
	var mb MetaBlock
	BuildMetaBlock(&params, cmds, c.ringbuffer_.Start(), 0, kRingBufferMask, &mb)

	storage := make([]byte, 1<<16)
	storage_ix := 0
	var pos uint = 0
	StoreMetaBlock(&mb, c.ringbuffer_.Start(), kRingBufferMask, &pos, &storage_ix, storage)

	if pos != uint(len(input)) {
		t.Fatalf("position after store = %d, want %d", pos, len(input))
	}

	/* The same input must replay through the commands. */
	out := executeCommands(t, cmds, c.ringbuffer_.Start(), 0, kRingBufferMask)
	if !bytes.Equal(out, input) {
		t.Fatalf("synthetic commands do not reproduce the input")
	}
}
