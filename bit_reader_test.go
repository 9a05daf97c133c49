package brotli

import "testing"

/* A minimal LSB-first bit reader used to parse encoder output in tests. */
type bitReader struct {
	data []byte
	pos  int
}

func (br *bitReader) readBit(t *testing.T) int {
	t.Helper()
	if br.pos>>3 >= len(br.data) {
		t.Fatalf("bit reader overrun at bit %d", br.pos)
	}
	bit := int(br.data[br.pos>>3]>>uint(br.pos&7)) & 1
	br.pos++
	return bit
}

func (br *bitReader) readBits(t *testing.T, n int) int {
	t.Helper()
	v := 0
	for i := 0; i < n; i++ {
		v |= br.readBit(t) << uint(i)
	}
	return v
}

/* Decodes one symbol with the prefix code given by depth[]/bits[], reading
   one bit at a time. */
func (br *bitReader) readSymbol(t *testing.T, depth []byte, bits []uint16) int {
	t.Helper()
	code := uint16(0)
	length := 0
	for length < 16 {
		code |= uint16(br.readBit(t)) << uint(length)
		length++
		for i := 0; i < len(depth); i++ {
			if int(depth[i]) == length && bits[i] == code {
				return i
			}
		}
	}
	t.Fatalf("no symbol matches code %x", code)
	return -1
}

/* Parses the output of StoreHuffmanCode and returns the code lengths of the
   alphabet, mirroring what a decoder would reconstruct. */
func readHuffmanCode(t *testing.T, br *bitReader, alphabet_size int) []byte {
	t.Helper()
	depth := make([]byte, alphabet_size)
	max_bits := 0
	for counter := alphabet_size - 1; counter != 0; counter >>= 1 {
		max_bits++
	}
	if br.readBit(t) == 1 {
		/* Simple code with 1..4 symbols. */
		count := br.readBits(t, 2) + 1
		symbols := make([]int, count)
		for i := 0; i < count; i++ {
			symbols[i] = br.readBits(t, max_bits)
			if symbols[i] >= alphabet_size {
				t.Fatalf("symbol %d outside alphabet of size %d", symbols[i], alphabet_size)
			}
		}
		switch count {
		case 1:
			depth[symbols[0]] = 1
		case 2:
			depth[symbols[0]] = 1
			depth[symbols[1]] = 1
		case 3:
			depth[symbols[0]] = 1
			depth[symbols[1]] = 2
			depth[symbols[2]] = 2
		case 4:
			if br.readBit(t) == 0 {
				for i := 0; i < 4; i++ {
					depth[symbols[i]] = 2
				}
			} else {
				depth[symbols[0]] = 1
				depth[symbols[1]] = 2
				depth[symbols[2]] = 3
				depth[symbols[3]] = 3
			}
		}
		return depth
	}

	/* Complex code: first the code lengths of the code length code. */
	storageOrder := []int{1, 2, 3, 4, 0, 17, 18, 5, 6, 16, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	codes_to_store := br.readBits(t, 4) + 4
	skip_two_first := br.readBit(t) == 1
	code_length_depth := make([]byte, kCodeLengthCodes)
	start := 0
	if skip_two_first {
		start = 2
	}
	for i := start; i < codes_to_store; i++ {
		/* The fixed code: 00->0, 10->3, 01->4, 110->2, 1110->1, 1111->5. */
		var v int
		if br.readBit(t) == 0 {
			if br.readBit(t) == 0 {
				v = 0
			} else {
				v = 4
			}
		} else {
			if br.readBit(t) == 0 {
				v = 3
			} else {
				if br.readBit(t) == 0 {
					v = 2
				} else {
					if br.readBit(t) == 0 {
						v = 1
					} else {
						v = 5
					}
				}
			}
		}
		code_length_depth[storageOrder[i]] = byte(v)
	}
	code_length_bits := make([]uint16, kCodeLengthCodes)
	ConvertBitDepthsToSymbols(code_length_depth, kCodeLengthCodes, code_length_bits)

	max_symbols := alphabet_size
	if br.readBit(t) == 1 {
		nbitpairs := br.readBits(t, 3) + 1
		max_symbols = br.readBits(t, 2*nbitpairs) + 2
	}

	/* Then the code lengths themselves, run length coded. */
	symbol := 0
	prev_nonzero := byte(8)
	read := 0
	for symbol < alphabet_size && read < max_symbols {
		v := br.readSymbol(t, code_length_depth, code_length_bits)
		read++
		switch {
		case v < 16:
			depth[symbol] = byte(v)
			symbol++
			if v != 0 {
				prev_nonzero = byte(v)
			}
		case v == 16:
			reps := br.readBits(t, 2) + 3
			for i := 0; i < reps; i++ {
				depth[symbol] = prev_nonzero
				symbol++
			}
		case v == 17:
			reps := br.readBits(t, 3) + 3
			symbol += reps
		case v == 18:
			reps := br.readBits(t, 7) + 11
			symbol += reps
		}
	}
	return depth
}
