package brotli

import (
	"bytes"
	"testing"
)

func checkSplit(t *testing.T, name string, split *BlockSplit, total int) {
	t.Helper()
	if split.num_types_ < 1 {
		t.Fatalf("%s: num_types = %d", name, split.num_types_)
	}
	if len(split.types_) != len(split.lengths_) {
		t.Fatalf("%s: %d types vs %d lengths", name, len(split.types_), len(split.lengths_))
	}
	sum := 0
	for i := range split.lengths_ {
		if split.lengths_[i] <= 0 {
			t.Fatalf("%s: non-positive block length %d", name, split.lengths_[i])
		}
		if split.types_[i] < 0 || split.types_[i] >= split.num_types_ {
			t.Fatalf("%s: type %d outside [0, %d)", name, split.types_[i], split.num_types_)
		}
		sum += split.lengths_[i]
	}
	if sum != total {
		t.Fatalf("%s: block lengths sum to %d, want %d", name, sum, total)
	}
	if len(split.types_) > 0 && split.types_[0] != 0 {
		t.Fatalf("%s: first block type = %d, want 0", name, split.types_[0])
	}
}

func splitsFor(t *testing.T, input []byte) (*MetaBlock, []Command) {
	t.Helper()
	cmds, c := referencesFor(t, input)
	ComputeDistanceShortCodes(cmds, c.dist_ringbuffer_[:], &c.dist_ringbuffer_idx_)
	var params EncodingParams
	params.num_direct_distance_codes = 12
	params.distance_postfix_bits = 1
	params.literal_context_mode = CONTEXT_SIGNED
	var mb MetaBlock
	BuildMetaBlock(&params, cmds, c.ringbuffer_.Start(), 0, kRingBufferMask, &mb)
	return &mb, mb.cmds
}

func TestSplitBlockAccounting(t *testing.T) {
	/* Two very different halves give the splitter something to find. */
	input := append(testInput(40000), bytes.Repeat([]byte{0, 1, 2, 3}, 10000)...)
	mb, cmds := splitsFor(t, input)

	literals := 0
	distances := 0
	for i := range cmds {
		literals += int(cmds[i].insert_length_)
		if cmds[i].copy_length_code_ > 0 && cmds[i].distance_prefix_ != 0xffff {
			distances++
		}
	}

	checkSplit(t, "literal", &mb.literal_split, literals)
	checkSplit(t, "command", &mb.command_split, len(cmds))
	checkSplit(t, "distance", &mb.distance_split, distances)
}

func TestSplitShortInput(t *testing.T) {
	var split BlockSplit
	SplitByteVectorLiteral([]byte("short input"), kSymbolsPerLiteralHistogram, kMaxLiteralHistograms, kLiteralStrideLength, kLiteralBlockSwitchCost, &split)
	if split.num_types_ != 1 {
		t.Errorf("short input split into %d types", split.num_types_)
	}
	if len(split.lengths_) != 1 || split.lengths_[0] != len("short input") {
		t.Errorf("short input lengths = %v", split.lengths_)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	var split BlockSplit
	SplitByteVectorLiteral(nil, kSymbolsPerLiteralHistogram, kMaxLiteralHistograms, kLiteralStrideLength, kLiteralBlockSwitchCost, &split)
	if split.num_types_ != 1 {
		t.Errorf("empty input split into %d types", split.num_types_)
	}
	if len(split.lengths_) != 0 {
		t.Errorf("empty input produced lengths %v", split.lengths_)
	}
}

func TestCopyLiteralsToByteArray(t *testing.T) {
	data := []byte("aaaaabbbbbccccc")
	cmds := []Command{
		{insert_length_: 5, copy_length_: 5},
		{insert_length_: 3, copy_length_: 0},
	}
	literals := CopyLiteralsToByteArray(cmds, data)
	if !bytes.Equal(literals, []byte("aaaaaccc")) {
		t.Errorf("literals = %q, want %q", literals, "aaaaaccc")
	}
}

func TestBuildBlockSplit(t *testing.T) {
	ids := []byte{0, 0, 0, 1, 1, 0, 2, 2, 2, 2}
	var split BlockSplit
	BuildBlockSplit(ids, &split)
	if split.num_types_ != 3 {
		t.Errorf("num_types = %d, want 3", split.num_types_)
	}
	wantTypes := []int{0, 1, 0, 2}
	wantLengths := []int{3, 2, 1, 4}
	for i := range wantTypes {
		if split.types_[i] != wantTypes[i] || split.lengths_[i] != wantLengths[i] {
			t.Errorf("run %d = (%d, %d), want (%d, %d)", i, split.types_[i], split.lengths_[i], wantTypes[i], wantLengths[i])
		}
	}
}
