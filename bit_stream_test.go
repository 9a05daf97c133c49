package brotli

import (
	"math/rand"
	"testing"
)

func TestEncodeMetaBlockLengthBits(t *testing.T) {
	for _, tc := range []struct {
		size    int
		nibbles int
	}{
		{0, 0},
		{1, 1},
		{15, 1},
		{16, 2},
		{255, 2},
		{4095, 3},
		{1<<21 - 1, 6},
	} {
		storage := make([]byte, 16)
		storage_ix := 0
		EncodeMetaBlockLength(uint(tc.size), &storage_ix, storage)
		br := &bitReader{data: storage}
		if br.readBit(t) != 0 {
			t.Errorf("size %d: last-block bit set", tc.size)
		}
		nibbles := br.readBits(t, 3)
		if nibbles != tc.nibbles {
			t.Errorf("size %d: %d nibbles, want %d", tc.size, nibbles, tc.nibbles)
		}
		v := 0
		for i := 0; i < nibbles; i++ {
			v |= br.readBits(t, 4) << uint(4*i)
		}
		if v != tc.size {
			t.Errorf("decoded size %d, want %d", v, tc.size)
		}
		if storage_ix != 1+3+4*nibbles {
			t.Errorf("size %d: wrote %d bits, want %d", tc.size, storage_ix, 1+3+4*nibbles)
		}
	}
}

func TestStoreHuffmanCodeEmpty(t *testing.T) {
	var code EntropyCode
	histogram := make([]uint32, 26)
	BuildEntropyCode(histogram, 15, 26, &code)

	storage := make([]byte, 16)
	storage_ix := 0
	StoreHuffmanCode(&code, 26, &storage_ix, storage)

	/* 1 marker bit, 2 count bits and max_bits zeros for the phantom
	   symbol. */
	if storage_ix != 3+5 {
		t.Errorf("wrote %d bits, want %d", storage_ix, 3+5)
	}
	br := &bitReader{data: storage}
	if br.readBit(t) != 1 {
		t.Errorf("missing simple-tree marker")
	}
	if br.readBits(t, 2) != 0 {
		t.Errorf("count field not zero")
	}
	if br.readBits(t, 5) != 0 {
		t.Errorf("phantom symbol not zero")
	}
}

func TestStoreHuffmanCodeSimple(t *testing.T) {
	histogram := make([]uint32, 256)
	histogram[10] = 1
	histogram[20] = 10
	histogram[30] = 1
	var code EntropyCode
	BuildEntropyCode(histogram, 15, 256, &code)

	storage := make([]byte, 16)
	storage_ix := 0
	StoreHuffmanCode(&code, 256, &storage_ix, storage)

	br := &bitReader{data: storage}
	if br.readBit(t) != 1 {
		t.Fatalf("missing simple-tree marker")
	}
	if count := br.readBits(t, 2) + 1; count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	/* Symbols ordered by ascending code length: the frequent one first. */
	if sym := br.readBits(t, 8); sym != 20 {
		t.Errorf("first symbol = %d, want 20", sym)
	}
	if sym := br.readBits(t, 8); sym != 10 {
		t.Errorf("second symbol = %d, want 10", sym)
	}
	if sym := br.readBits(t, 8); sym != 30 {
		t.Errorf("third symbol = %d, want 30", sym)
	}
}

func TestStoreHuffmanCodeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 60; trial++ {
		alphabet := 5 + rnd.Intn(700)
		histogram := make([]uint32, alphabet)
		populated := 0
		for i := range histogram {
			if rnd.Intn(4) == 0 {
				histogram[i] = uint32(1 + rnd.Intn(1000))
				populated++
			}
		}
		if populated == 0 {
			continue
		}
		var code EntropyCode
		BuildEntropyCode(histogram, 15, alphabet, &code)

		storage := make([]byte, 4096)
		storage_ix := 0
		StoreHuffmanCode(&code, alphabet, &storage_ix, storage)

		br := &bitReader{data: storage}
		depth := readHuffmanCode(t, br, alphabet)
		if br.pos > storage_ix {
			t.Fatalf("trial %d: reader consumed %d bits of %d written", trial, br.pos, storage_ix)
		}

		if populated <= 4 {
			/* Simple codes re-derive the depths; only the populated set is
			   preserved exactly. */
			for i := range histogram {
				if (histogram[i] > 0) != (depth[i] > 0) {
					t.Fatalf("trial %d: symbol %d populated mismatch", trial, i)
				}
			}
			continue
		}
		for i := range histogram {
			if depth[i] != code.depth_[i] {
				t.Fatalf("trial %d: depth[%d] = %d, want %d", trial, i, depth[i], code.depth_[i])
			}
		}
	}
}

func TestMoveToFrontTransformRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for trial := 0; trial < 50; trial++ {
		v := make([]int, 1+rnd.Intn(500))
		max := 1 + rnd.Intn(30)
		for i := range v {
			v[i] = rnd.Intn(max)
		}
		transformed := MoveToFrontTransform(v)

		/* Inverse transform. */
		maxv := 0
		for _, x := range v {
			if x > maxv {
				maxv = x
			}
		}
		mtf := make([]int, maxv+1)
		for i := range mtf {
			mtf[i] = i
		}
		for i, idx := range transformed {
			value := mtf[idx]
			if value != v[i] {
				t.Fatalf("trial %d: inverse mtf differs at %d: %d vs %d", trial, i, value, v[i])
			}
			MoveToFront(mtf, idx)
		}
	}
}

func TestRunLengthCodeZerosRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		v := make([]int, 1+rnd.Intn(600))
		for i := 0; i < len(v); {
			if rnd.Intn(2) == 0 {
				run := 1 + rnd.Intn(200)
				for j := 0; j < run && i < len(v); j++ {
					v[i] = 0
					i++
				}
			} else {
				v[i] = 1 + rnd.Intn(50)
				i++
			}
		}
		for _, limit := range []int{0, 1, 3, 7, 16} {
			var out []int
			var extra []int
			prefix := limit
			RunLengthCodeZeros(v, &prefix, &out, &extra)
			if prefix > limit {
				t.Fatalf("prefix %d grew above limit %d", prefix, limit)
			}

			var decoded []int
			for i := range out {
				if out[i] > prefix {
					decoded = append(decoded, out[i]-prefix)
				} else if out[i] == 0 && prefix == 0 {
					decoded = append(decoded, 0)
				} else {
					reps := (1 << uint(out[i])) + extra[i]
					for j := 0; j < reps; j++ {
						decoded = append(decoded, 0)
					}
				}
			}
			if len(decoded) != len(v) {
				t.Fatalf("trial %d limit %d: decoded %d symbols, want %d", trial, limit, len(decoded), len(v))
			}
			for i := range v {
				if decoded[i] != v[i] {
					t.Fatalf("trial %d limit %d: decoded[%d] = %d, want %d", trial, limit, i, decoded[i], v[i])
				}
			}
		}
	}
}

func TestComputeBlockTypeShortCodes(t *testing.T) {
	split := &BlockSplit{
		num_types_: 3,
		types_:     []int{0, 1, 2, 1, 1},
		lengths_:   []int{10, 10, 10, 10, 10},
	}
	ComputeBlockTypeShortCodes(split)
	want := []int{0, 0, 1, 0, 3}
	if len(split.type_codes_) != len(want) {
		t.Fatalf("type codes length = %d, want %d", len(split.type_codes_), len(want))
	}
	for i := range want {
		if split.type_codes_[i] != want[i] {
			t.Errorf("type_codes[%d] = %d, want %d", i, split.type_codes_[i], want[i])
		}
	}
}

func TestComputeBlockTypeShortCodesSingleType(t *testing.T) {
	split := &BlockSplit{num_types_: 0}
	ComputeBlockTypeShortCodes(split)
	if split.num_types_ != 1 {
		t.Errorf("num_types = %d, want 1", split.num_types_)
	}
	if len(split.type_codes_) != 0 {
		t.Errorf("single-type split received type codes")
	}
}

func TestEncodeContextMapRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for trial := 0; trial < 60; trial++ {
		num_clusters := 1 + rnd.Intn(20)
		size := 64 * (1 + rnd.Intn(4))
		context_map := make([]int, size)
		/* Every cluster id must occur at least once. */
		for i := 0; i < num_clusters; i++ {
			context_map[i] = i
		}
		for i := num_clusters; i < size; i++ {
			if rnd.Intn(3) == 0 {
				context_map[i] = rnd.Intn(num_clusters)
			}
		}

		storage := make([]byte, 4096)
		storage_ix := 0
		EncodeContextMap(context_map, num_clusters, &storage_ix, storage)

		br := &bitReader{data: storage}
		if got := br.readBits(t, 8) + 1; got != num_clusters {
			t.Fatalf("trial %d: num_clusters = %d, want %d", trial, got, num_clusters)
		}
		if num_clusters == 1 {
			for i := range context_map {
				if context_map[i] != 0 {
					t.Fatalf("single cluster map must be all zero")
				}
			}
			continue
		}

		max_prefix := 0
		if br.readBit(t) == 1 {
			max_prefix = br.readBits(t, 4) + 1
		}
		alphabet := num_clusters + max_prefix
		depth := readHuffmanCode(t, br, alphabet)
		bits := make([]uint16, alphabet)
		ConvertBitDepthsToSymbols(depth, alphabet, bits)

		count := 0
		for i := range depth {
			if depth[i] != 0 {
				count++
			}
		}

		/* Read the run length coded, move-to-front transformed map. */
		var transformed []int
		for len(transformed) < size {
			var sym int
			if count <= 1 {
				for i := range depth {
					if depth[i] != 0 {
						sym = i
					}
				}
			} else {
				sym = br.readSymbol(t, depth, bits)
			}
			if sym == 0 {
				transformed = append(transformed, 0)
			} else if sym <= max_prefix {
				reps := (1 << uint(sym)) + br.readBits(t, sym)
				for j := 0; j < reps; j++ {
					transformed = append(transformed, 0)
				}
			} else {
				transformed = append(transformed, sym-max_prefix)
			}
		}
		if len(transformed) != size {
			t.Fatalf("trial %d: decoded %d entries, want %d", trial, len(transformed), size)
		}
		if br.readBit(t) != 1 {
			t.Fatalf("trial %d: missing move-to-front marker", trial)
		}
		if br.pos != storage_ix {
			t.Fatalf("trial %d: consumed %d bits, wrote %d", trial, br.pos, storage_ix)
		}

		/* Undo the move-to-front. */
		mtf := make([]int, num_clusters)
		for i := range mtf {
			mtf[i] = i
		}
		decoded := make([]int, size)
		for i, idx := range transformed {
			decoded[i] = mtf[idx]
			MoveToFront(mtf, idx)
		}
		for i := range context_map {
			if decoded[i] != context_map[i] {
				t.Fatalf("trial %d: map[%d] = %d, want %d", trial, i, decoded[i], context_map[i])
			}
		}
	}
}
