package brotli

import (
	"math/rand"
	"testing"
)

func TestClusterHistogramsLiteral(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	num_contexts := 64
	num_blocks := 3
	in := make([]HistogramLiteral, num_contexts*num_blocks)
	for i := range in {
		in[i].Clear()
		/* Three underlying distributions, rotated across contexts. */
		base := i % 3
		for j := 0; j < 50; j++ {
			in[i].Add((base*80 + rnd.Intn(40)) % 256)
		}
	}

	var out []HistogramLiteral
	var context_map []int
	ClusterHistogramsLiteral(in, num_contexts, num_blocks, kMaxNumberOfHistograms, &out, &context_map)

	if len(context_map) != num_contexts*num_blocks {
		t.Fatalf("context map has %d entries, want %d", len(context_map), num_contexts*num_blocks)
	}
	if len(out) == 0 || len(out) > kMaxNumberOfHistograms {
		t.Fatalf("clustered into %d histograms", len(out))
	}
	seen := make([]bool, len(out))
	for i, idx := range context_map {
		if idx < 0 || idx >= len(out) {
			t.Fatalf("context_map[%d] = %d outside [0, %d)", i, idx, len(out))
		}
		seen[idx] = true
	}
	for i := range seen {
		if !seen[i] {
			t.Errorf("output histogram %d is never referenced", i)
		}
	}

	/* The map must be in canonical first-use order. */
	next := 0
	for _, idx := range context_map {
		if idx == next {
			next++
		} else if idx > next {
			t.Fatalf("context map ids do not appear in first-use order")
		}
	}

	/* Total mass is preserved. */
	total_in := 0
	for i := range in {
		total_in += in[i].total_count_
	}
	total_out := 0
	for i := range out {
		total_out += out[i].total_count_
	}
	if total_in != total_out {
		t.Errorf("clustered total count %d, want %d", total_out, total_in)
	}
}

func TestClusterHistogramsRespectsMaximum(t *testing.T) {
	rnd := rand.New(rand.NewSource(22))
	in := make([]HistogramLiteral, 64)
	for i := range in {
		in[i].Clear()
		for j := 0; j < 30; j++ {
			in[i].Add(rnd.Intn(256))
		}
	}
	var out []HistogramLiteral
	var context_map []int
	ClusterHistogramsLiteral(in, 64, 1, 4, &out, &context_map)
	if len(out) > 4 {
		t.Errorf("clustered into %d histograms, want at most 4", len(out))
	}
}

func TestClusterHistogramsEmpty(t *testing.T) {
	in := make([]HistogramDistance, 4)
	for i := range in {
		in[i].Clear()
	}
	var out []HistogramDistance
	var context_map []int
	ClusterHistogramsDistance(in, 4, 1, kMaxNumberOfHistograms, &out, &context_map)
	if len(out) < 1 {
		t.Fatalf("no output histograms")
	}
	for _, idx := range context_map {
		if idx != 0 {
			t.Errorf("empty histograms should share one cluster, got map %v", context_map)
		}
	}
}
