package brotli

import (
	"bytes"
	"math/rand"
	"testing"
)

/* Replays a command stream against the ring buffer the way a decoder
   would, reproducing the meta-block bytes. */
func executeCommands(t *testing.T, cmds []Command, ringbuffer []byte, pos uint, mask uint) []byte {
	t.Helper()
	var out []byte
	for i := range cmds {
		cmd := &cmds[i]
		for j := uint32(0); j < cmd.insert_length_; j++ {
			out = append(out, ringbuffer[pos&mask])
			pos++
		}
		if cmd.copy_length_ > 0 {
			d := int(cmd.copy_distance_)
			if d <= 0 || d > len(out) {
				t.Fatalf("command %d: distance %d outside produced %d bytes", i, d, len(out))
			}
			for j := uint32(0); j < cmd.copy_length_; j++ {
				out = append(out, out[len(out)-d])
				pos++
			}
		}
	}
	return out
}

func referencesFor(t *testing.T, input []byte) ([]Command, *BrotliCompressor) {
	t.Helper()
	c, err := NewBrotliCompressor(kWindowBits)
	if err != nil {
		t.Fatal(err)
	}
	c.ringbuffer_.Write(input)
	EstimateBitCostsForLiterals(0, uint(len(input)), kRingBufferMask, c.ringbuffer_.Start(), c.literal_cost_)
	var cmds []Command
	CreateBackwardReferences(uint(len(input)), 0, c.ringbuffer_.Start(), c.literal_cost_, kRingBufferMask, c.max_backward_distance_, c.hasher_, &cmds)
	return cmds, c
}

func TestBackwardReferencesReconstruct(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	inputs := [][]byte{
		{0},
		[]byte("abcabcabcabc"),
		bytes.Repeat([]byte{0x41}, 65536),
		testInput(50000),
	}
	random := make([]byte, 10000)
	rnd.Read(random)
	inputs = append(inputs, random)

	for n, input := range inputs {
		cmds, c := referencesFor(t, input)
		if len(cmds) == 0 {
			t.Fatalf("input %d: no commands", n)
		}
		if got := MetaBlockLength(cmds); got != uint(len(input)) {
			t.Fatalf("input %d: commands cover %d bytes, want %d", n, got, len(input))
		}
		out := executeCommands(t, cmds, c.ringbuffer_.Start(), 0, kRingBufferMask)
		if !bytes.Equal(out, input) {
			t.Fatalf("input %d: reconstruction differs", n)
		}
	}
}

func TestBackwardReferencesFindRepetition(t *testing.T) {
	cmds, _ := referencesFor(t, []byte("abcabcabcabc"))
	found := false
	for i := range cmds {
		if cmds[i].copy_length_ > 0 && cmds[i].copy_distance_ == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("no copy with distance 3 in %d commands over 'abcabcabcabc'", len(cmds))
	}
}

func TestBackwardReferencesLastCommandInsertOnly(t *testing.T) {
	/* A trailing non-repeating byte forces a final insert-only command. */
	input := append(bytes.Repeat([]byte("xyz"), 100), 'q')
	cmds, _ := referencesFor(t, input)
	last := cmds[len(cmds)-1]
	if last.copy_length_ != 0 || last.copy_distance_ != 0 {
		t.Errorf("last command: copy %d distance %d, want an insert-only command", last.copy_length_, last.copy_distance_)
	}
}

func TestBackwardReferencesRespectWindow(t *testing.T) {
	input := testInput(200000)
	cmds, c := referencesFor(t, input)
	for i := range cmds {
		if cmds[i].copy_distance_ > uint32(c.max_backward_distance_) {
			t.Fatalf("command %d: distance %d above the window limit %d", i, cmds[i].copy_distance_, c.max_backward_distance_)
		}
	}
}

func TestEstimateBitCostsForLiterals(t *testing.T) {
	input := testInput(10000)
	rb := NewRingBuffer(kRingBufferBits, kMetaBlockSizeBits)
	rb.Write(input)
	cost := make([]float32, 1<<kRingBufferBits)
	EstimateBitCostsForLiterals(0, uint(len(input)), kRingBufferMask, rb.Start(), cost)
	for i := 0; i < len(input); i++ {
		if !(cost[i] > 0) || cost[i] > 24 {
			t.Fatalf("cost[%d] = %f out of range", i, cost[i])
		}
	}
}
