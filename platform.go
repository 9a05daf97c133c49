package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Macros for compiler / platform specific features and build options. */

const BROTLI_UINT32_MAX = ^(uint32(0))

/* Read values byte-wise; hopefully compiler will understand. */
func BROTLI_UNALIGNED_LOAD32LE(p []byte) uint32 {
	var in []byte = []byte(p)
	var value uint32 = uint32(in[0])
	value |= uint32(in[1]) << 8
	value |= uint32(in[2]) << 16
	value |= uint32(in[3]) << 24
	return value
}

func BROTLI_UNALIGNED_LOAD64LE(p []byte) uint64 {
	var in []byte = []byte(p)
	var value uint64 = uint64(in[0])
	value |= uint64(in[1]) << 8
	value |= uint64(in[2]) << 16
	value |= uint64(in[3]) << 24
	value |= uint64(in[4]) << 32
	value |= uint64(in[5]) << 40
	value |= uint64(in[6]) << 48
	value |= uint64(in[7]) << 56
	return value
}
