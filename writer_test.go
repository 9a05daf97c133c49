package brotli

import (
	"bytes"
	"testing"

	"github.com/xyproto/randomstring"
)

func TestWriterMatchesCompressBuffer(t *testing.T) {
	input := testInput(150000)
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{})
	n, err := w.Write(input)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(input) {
		t.Fatalf("wrote %d bytes, want %d", n, len(input))
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(buf.Bytes(), CompressBuffer(input)) {
		t.Errorf("Writer output differs from CompressBuffer")
	}
}

func TestWriterRandomStrings(t *testing.T) {
	var input []byte
	for i := 0; i < 200; i++ {
		input = append(input, randomstring.HumanFriendlyString(100)...)
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{LGWin: 18})
	if _, err := w.Write(input); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("no output")
	}

	/* Word-like data must compress. */
	if buf.Len() >= len(input) {
		t.Errorf("compressed %d bytes to %d", len(input), buf.Len())
	}

	/* Closing twice reports the closed state. */
	if err := w.Close(); err != errWriterClosed {
		t.Errorf("second Close = %v, want errWriterClosed", err)
	}
	if _, err := w.Write([]byte("x")); err != errWriterClosed {
		t.Errorf("Write after Close = %v, want errWriterClosed", err)
	}
}

func TestWriterInvalidWindow(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{LGWin: 9})
	if _, err := w.Write([]byte("hello")); err == nil {
		t.Errorf("Write with invalid window succeeded")
	}
	if err := w.Close(); err == nil {
		t.Errorf("Close with invalid window succeeded")
	}
}

func TestWriterFlushPerMetaBlock(t *testing.T) {
	part1 := testInput(3000)
	part2 := bytes.Repeat([]byte{0x42}, 3000)

	var buf bytes.Buffer
	w := NewWriter(&buf, WriterOptions{})
	w.Write(part1)
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	w.Write(part2)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	/* Two meta-blocks through the streaming API must match the driver
	   called directly. */
	c, err := NewBrotliCompressor(kWindowBits)
	if err != nil {
		t.Fatal(err)
	}
	c.WriteStreamHeader()
	var direct []byte
	direct = append(direct, c.WriteMetaBlock(part1)...)
	direct = append(direct, c.WriteMetaBlock(part2)...)
	direct = append(direct, c.FinishStream()...)

	if !bytes.Equal(buf.Bytes(), direct) {
		t.Errorf("Writer with Flush differs from direct meta-block writes")
	}
}
