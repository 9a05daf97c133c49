package brotli

import (
	"bytes"
	"testing"
)

func TestRingBufferLinearWrite(t *testing.T) {
	rb := NewRingBuffer(10, 6)
	data := testInput(700)
	rb.Write(data[:300])
	rb.Write(data[300:700])
	if !bytes.Equal(rb.Start()[:700], data) {
		t.Errorf("linear write content differs")
	}
}

func TestRingBufferWrapAround(t *testing.T) {
	rb := NewRingBuffer(10, 6)
	size := 1 << 10
	data := testInput(size + 100)
	for pos := 0; pos < len(data); pos += 50 {
		end := pos + 50
		if end > len(data) {
			end = len(data)
		}
		rb.Write(data[pos:end])
	}

	mask := uint(size - 1)
	for i := len(data) - size; i < len(data); i++ {
		if rb.Start()[uint(i)&mask] != data[i] {
			t.Fatalf("byte at position %d differs after wrap", i)
		}
	}
}

func TestRingBufferTailMirror(t *testing.T) {
	rb := NewRingBuffer(10, 6)
	size := 1 << 10
	tail := 1 << 6
	data := testInput(size + 40)
	rb.Write(data)

	for i := 0; i < tail; i++ {
		if rb.Start()[i] != rb.Start()[size+i] {
			t.Fatalf("tail mirror differs at %d", i)
		}
	}
}
