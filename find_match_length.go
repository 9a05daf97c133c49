package brotli

/* Copyright 2010 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Function to find maximal matching prefixes of strings. */
func FindMatchLengthWithLimit(s1 []byte, s2 []byte, limit uint) uint {
	var matched uint = 0

	/* Compare eight bytes at a time while we can. */
	for matched+8 <= limit {
		var x uint64 = BROTLI_UNALIGNED_LOAD64LE(s1[matched:])
		var y uint64 = BROTLI_UNALIGNED_LOAD64LE(s2[matched:])
		if x != y {
			break
		}

		matched += 8
	}

	for matched < limit && s1[matched] == s2[matched] {
		matched++
	}

	return matched
}
