package brotli

import "math"

const HUGE_VAL = math.MaxFloat64

func assert(cond bool) {
	if !cond {
		panic("assertion failure")
	}
}

func brotli_max_double(a float64, b float64) float64 {
	if a > b {
		return a
	} else {
		return b
	}
}

func brotli_min_int(a int, b int) int {
	if a < b {
		return a
	} else {
		return b
	}
}

func brotli_max_int(a int, b int) int {
	if a > b {
		return a
	} else {
		return b
	}
}

func brotli_min_size_t(a uint, b uint) uint {
	if a < b {
		return a
	} else {
		return b
	}
}

func brotli_max_uint32_t(a uint32, b uint32) uint32 {
	if a > b {
		return a
	} else {
		return b
	}
}
