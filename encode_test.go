package brotli

import (
	"bytes"
	"math/rand"
	"testing"
)

func testInput(n int) []byte {
	rnd := rand.New(rand.NewSource(42))
	input := make([]byte, n)
	words := []string{"the ", "quick ", "brown ", "fox ", "jumps ", "over ", "lazy ", "dog ", "0123456789 "}
	pos := 0
	for pos < n {
		w := words[rnd.Intn(len(words))]
		pos += copy(input[pos:], w)
	}
	return input
}

func TestCompressEmptyInput(t *testing.T) {
	out := CompressBuffer(nil)
	if !bytes.Equal(out, []byte{0x01, 0x00}) {
		t.Errorf("CompressBuffer(empty) = %x, want 0100", out)
	}
	out = CompressBuffer([]byte{})
	if !bytes.Equal(out, []byte{0x01, 0x00}) {
		t.Errorf("CompressBuffer([]byte{}) = %x, want 0100", out)
	}
}

func TestNewBrotliCompressorWindowBits(t *testing.T) {
	for _, bits := range []int{16, 20, 22, 24} {
		if _, err := NewBrotliCompressor(bits); err != nil {
			t.Errorf("NewBrotliCompressor(%d): unexpected error %v", bits, err)
		}
	}
	for _, bits := range []int{-1, 0, 15, 25} {
		if _, err := NewBrotliCompressor(bits); err == nil {
			t.Errorf("NewBrotliCompressor(%d): expected an error", bits)
		}
	}
}

func TestStreamHeaderBits(t *testing.T) {
	for _, window_bits := range []int{16, 17, 20, 22, 24} {
		c, err := NewBrotliCompressor(window_bits)
		if err != nil {
			t.Fatal(err)
		}
		c.WriteStreamHeader()
		out := c.FinishStream()
		br := &bitReader{data: out}
		if v := br.readBits(t, 3); v != 0 {
			t.Errorf("window_bits %d: first three bits = %d, want 0", window_bits, v)
		}
		if window_bits == 16 {
			if br.readBit(t) != 0 {
				t.Errorf("window_bits 16: want single 0 bit")
			}
		} else {
			if br.readBit(t) != 1 {
				t.Errorf("window_bits %d: want leading 1 bit", window_bits)
			}
			if v := br.readBits(t, 3); v != window_bits-17 {
				t.Errorf("window_bits %d: encoded %d, want %d", window_bits, v, window_bits-17)
			}
		}
		/* The empty last meta-block marker follows. */
		if br.readBit(t) != 1 {
			t.Errorf("window_bits %d: missing last meta-block bit", window_bits)
		}
	}
}

func TestCompressDeterministic(t *testing.T) {
	input := testInput(100000)
	out1 := CompressBuffer(input)
	out2 := CompressBuffer(input)
	if !bytes.Equal(out1, out2) {
		t.Errorf("output differs between runs: %d vs %d bytes", len(out1), len(out2))
	}
}

func TestCompressBufferMatchesStreaming(t *testing.T) {
	input := testInput(300000)
	c, err := NewBrotliCompressor(kWindowBits)
	if err != nil {
		t.Fatal(err)
	}
	c.WriteStreamHeader()
	var streamed []byte
	streamed = append(streamed, c.WriteMetaBlock(input)...)
	streamed = append(streamed, c.FinishStream()...)

	oneshot := CompressBuffer(input)
	if !bytes.Equal(streamed, oneshot) {
		t.Errorf("streaming and one-shot outputs differ: %d vs %d bytes", len(streamed), len(oneshot))
	}
}

func TestMetaBlockLengthHeader(t *testing.T) {
	const n = 1000
	input := testInput(n)
	out := CompressBuffer(input)
	br := &bitReader{data: out}
	/* Skip the stream header for the default window size. */
	br.readBits(t, 3)
	br.readBit(t)
	br.readBits(t, 3)

	if br.readBit(t) != 0 {
		t.Fatalf("first meta-block marked as the last one")
	}
	num_nibbles := br.readBits(t, 3)
	size := 0
	for i := 0; i < num_nibbles; i++ {
		size |= br.readBits(t, 4) << uint(4*i)
	}
	if size != n-1 {
		t.Errorf("meta-block length header = %d, want %d", size, n-1)
	}
}

func TestCompressHighlyRepetitive(t *testing.T) {
	input := bytes.Repeat([]byte{0x41}, 65536)
	out := CompressBuffer(input)
	if len(out) > 128 {
		t.Errorf("compressed 64k of 'A' to %d bytes, want <= 128", len(out))
	}
}

func TestCompressIncompressibleBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	input := make([]byte, 100000)
	rnd.Read(input)
	out := CompressBuffer(input)
	bound := len(input) + len(input)/5 + 16
	if len(out) > bound {
		t.Errorf("compressed %d random bytes to %d, want <= %d", len(input), len(out), bound)
	}
	out2 := CompressBuffer(input)
	if !bytes.Equal(out, out2) {
		t.Errorf("random input not compressed deterministically")
	}
}

func TestTwoMetaBlocks(t *testing.T) {
	if testing.Short() {
		t.Skip("large input")
	}
	n := (1 << kMetaBlockSizeBits) + 123
	input := bytes.Repeat([]byte("abcdefgh"), n/8+1)[:n]

	c, err := NewBrotliCompressor(kWindowBits)
	if err != nil {
		t.Fatal(err)
	}
	c.WriteStreamHeader()
	blocks := 0
	var out []byte
	for pos := 0; pos < n; pos += 1 << kMetaBlockSizeBits {
		end := pos + (1 << kMetaBlockSizeBits)
		if end > n {
			end = n
		}
		out = append(out, c.WriteMetaBlock(input[pos:end])...)
		blocks++
	}
	out = append(out, c.FinishStream()...)
	if blocks != 2 {
		t.Fatalf("wrote %d meta-blocks, want 2", blocks)
	}
	if len(out) == 0 {
		t.Fatal("no output")
	}

	oneshot := CompressBuffer(input)
	if !bytes.Equal(out, oneshot) {
		t.Errorf("chunked and one-shot outputs differ")
	}

	/* The first meta-block must declare exactly 1<<21 bytes. */
	br := &bitReader{data: out}
	br.readBits(t, 7)
	if br.readBit(t) != 0 {
		t.Fatalf("first meta-block marked as the last one")
	}
	num_nibbles := br.readBits(t, 3)
	size := 0
	for i := 0; i < num_nibbles; i++ {
		size |= br.readBits(t, 4) << uint(4*i)
	}
	if size != 1<<kMetaBlockSizeBits-1 {
		t.Errorf("first meta-block length header = %d, want %d", size, 1<<kMetaBlockSizeBits-1)
	}
}
