package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Functions to estimate the bit cost of Huffman trees. */

func ShannonEntropy(population []uint32, size int, total *int) float64 {
	var sum int = 0
	var retval float64 = 0
	var i int
	var p int
	for i = 0; i < size; i++ {
		p = int(population[i])
		sum += p
		retval -= float64(p) * FastLog2(uint(p))
	}

	if sum != 0 {
		retval += float64(sum) * FastLog2(uint(sum))
	}

	*total = sum
	return retval
}

func BitsEntropy(population []uint32, size int) float64 {
	var sum int
	var retval float64 = ShannonEntropy(population, size, &sum)
	if retval < float64(sum) {
		/* At least one bit per literal is needed. */
		retval = float64(sum)
	}

	return retval
}

const kOneSymbolHistogramCost = 12

const kTwoSymbolHistogramCost = 20

const kThreeSymbolHistogramCost = 28

const kFourSymbolHistogramCost = 37

/* Estimates how many bits it takes to both store the prefix code and encode
   the histogram with it. */
func populationCost(data []uint32, size int, total_count int) float64 {
	var count int = 0
	var bits float64 = 0.0
	var i int
	if total_count == 0 {
		return kOneSymbolHistogramCost
	}

	for i = 0; i < size; i++ {
		if data[i] > 0 {
			count++
			if count > 4 {
				break
			}
		}
	}

	if count == 1 {
		return kOneSymbolHistogramCost
	}

	if count == 2 {
		return kTwoSymbolHistogramCost + float64(total_count)
	}

	if count <= 4 {
		/* For very low symbol counts we build the tree for real. */
		var depth []byte = make([]byte, size)
		CreateHuffmanTree(data, size, 15, depth)
		for i = 0; i < size; i++ {
			bits += float64(data[i]) * float64(depth[i])
		}

		if count == 3 {
			return bits + kThreeSymbolHistogramCost
		}

		return bits + kFourSymbolHistogramCost
	}
	{
		var max_depth int = 1
		var depth_histo [kCodeLengthCodes]uint32
		/* In this loop we compute the entropy of the histogram and
		   simultaneously build a simplified histogram of the code length
		   codes where we use the zero repeat code 17, but we don't use
		   the non-zero repeat code 16. */

		var log2total float64 = FastLog2(uint(total_count))
		for i = 0; i < size; {
			if data[i] > 0 {
				/* -log2(P(symbol)) = -log2(count(symbol)/total_count) =
				   = log2(total_count) - log2(count(symbol)) */
				var log2p float64 = log2total - FastLog2(uint(data[i]))

				/* Approximate the bit depth by round(-log2(P(symbol))) */
				var depth int = int(log2p + 0.5)

				bits += float64(data[i]) * log2p
				if depth > 15 {
					depth = 15
				}

				if depth > max_depth {
					max_depth = depth
				}

				depth_histo[depth]++
				i++
			} else {
				/* Compute the run length of zeros and add the appropriate
				   number of 0 and 17 code length codes to the code length
				   code histogram. */
				var reps uint32 = 1
				var k int
				for k = i + 1; k < size && data[k] == 0; k++ {
					reps++
				}

				i += int(reps)
				if i == size {
					/* Don't add any cost for the last zero run, since these
					   are encoded only implicitly. */
					break
				}

				if reps < 3 {
					depth_histo[0] += reps
				} else {
					reps -= 2
					for reps > 0 {
						depth_histo[17]++

						/* Add the 3 extra bits for the 17 code length code. */
						bits += 3

						reps >>= 3
					}
				}
			}
		}

		/* Add the estimated encoding cost of the code length code histogram. */
		bits += float64(18 + 2*max_depth)

		/* Add the entropy of the code length code histogram. */
		bits += BitsEntropy(depth_histo[:], kCodeLengthCodes)
	}

	return bits
}

func PopulationCostLiteral(histogram *HistogramLiteral) float64 {
	return populationCost(histogram.data_[:], kNumLiteralSymbols, histogram.total_count_)
}

func PopulationCostCommand(histogram *HistogramCommand) float64 {
	return populationCost(histogram.data_[:], kNumCommandPrefixes, histogram.total_count_)
}

func PopulationCostDistance(histogram *HistogramDistance) float64 {
	return populationCost(histogram.data_[:], kNumDistanceSymbols, histogram.total_count_)
}

var kHuffmanTreeExtraBits = [kCodeLengthCodes]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 3, 7,
}

/* The cost of storing the run-length coded tree symbols with the given
   code-length entropy code, extra bits included. */
func HuffmanTreeBitCost(histogram *HistogramCodeLength, entropy *EntropyCode) int {
	var cost int = 0
	var i int
	for i = 0; i < kCodeLengthCodes; i++ {
		cost += int(histogram.data_[i]) * (int(entropy.depth_[i]) + kHuffmanTreeExtraBits[i])
	}

	return cost
}
