package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* This struct models a sequence of literals followed by a backward reference
   copy. The first four fields come out of the reference search; the rest are
   filled by ComputeDistanceShortCodes and ComputeCommandPrefixes. */
type Command struct {
	insert_length_    uint32
	copy_length_      uint32
	copy_length_code_ uint32
	copy_distance_    uint32

	/* 1..16 for codes into the distance ring buffer, distance + 16
	   otherwise. */
	distance_code_ uint32

	/* 0xffff means the command does not emit a distance symbol. */
	distance_prefix_           uint16
	command_prefix_            uint16
	distance_extra_bits_       int
	distance_extra_bits_value_ uint32
}

func MetaBlockLength(cmds []Command) uint {
	var length uint = 0
	var i int
	for i = 0; i < len(cmds); i++ {
		length += uint(cmds[i].insert_length_ + cmds[i].copy_length_)
	}

	return length
}
