package brotli

/* Copyright 2013 Google Inc. All Rights Reserved.

   Distributed under MIT license.
   See file LICENSE for detail or copy at https://opensource.org/licenses/MIT
*/

/* Models the histograms of literals, commands and distance codes. */

const kNumLiteralSymbols = 256

/* 16 short codes, up to 120 direct codes and 48 bucket codes shifted by up
   to 3 postfix bits. */
const kNumDistanceSymbols = kNumDistanceShortCodes + 120 + (48 << 3)

type HistogramLiteral struct {
	data_        [kNumLiteralSymbols]uint32
	total_count_ int
	bit_cost_    float64
}

func (self *HistogramLiteral) Clear() {
	self.data_ = [kNumLiteralSymbols]uint32{}
	self.total_count_ = 0
	self.bit_cost_ = HUGE_VAL
}

func (self *HistogramLiteral) Add(val int) {
	self.data_[val]++
	self.total_count_++
}

func (self *HistogramLiteral) Remove(val int) {
	assert(self.data_[val] > 0)
	self.data_[val]--
	self.total_count_--
}

func (self *HistogramLiteral) AddHistogram(v *HistogramLiteral) {
	var i int
	self.total_count_ += v.total_count_
	for i = 0; i < kNumLiteralSymbols; i++ {
		self.data_[i] += v.data_[i]
	}
}

type HistogramCommand struct {
	data_        [kNumCommandPrefixes]uint32
	total_count_ int
	bit_cost_    float64
}

func (self *HistogramCommand) Clear() {
	self.data_ = [kNumCommandPrefixes]uint32{}
	self.total_count_ = 0
	self.bit_cost_ = HUGE_VAL
}

func (self *HistogramCommand) Add(val int) {
	self.data_[val]++
	self.total_count_++
}

func (self *HistogramCommand) Remove(val int) {
	assert(self.data_[val] > 0)
	self.data_[val]--
	self.total_count_--
}

func (self *HistogramCommand) AddHistogram(v *HistogramCommand) {
	var i int
	self.total_count_ += v.total_count_
	for i = 0; i < kNumCommandPrefixes; i++ {
		self.data_[i] += v.data_[i]
	}
}

type HistogramDistance struct {
	data_        [kNumDistanceSymbols]uint32
	total_count_ int
	bit_cost_    float64
}

func (self *HistogramDistance) Clear() {
	self.data_ = [kNumDistanceSymbols]uint32{}
	self.total_count_ = 0
	self.bit_cost_ = HUGE_VAL
}

func (self *HistogramDistance) Add(val int) {
	self.data_[val]++
	self.total_count_++
}

func (self *HistogramDistance) Remove(val int) {
	assert(self.data_[val] > 0)
	self.data_[val]--
	self.total_count_--
}

func (self *HistogramDistance) AddHistogram(v *HistogramDistance) {
	var i int
	self.total_count_ += v.total_count_
	for i = 0; i < kNumDistanceSymbols; i++ {
		self.data_[i] += v.data_[i]
	}
}

type HistogramBlockLength struct {
	data_        [kNumBlockLenPrefixes]uint32
	total_count_ int
	bit_cost_    float64
}

func (self *HistogramBlockLength) Clear() {
	self.data_ = [kNumBlockLenPrefixes]uint32{}
	self.total_count_ = 0
	self.bit_cost_ = HUGE_VAL
}

func (self *HistogramBlockLength) Add(val int) {
	self.data_[val]++
	self.total_count_++
}

type HistogramCodeLength struct {
	data_        [kCodeLengthCodes]uint32
	total_count_ int
}

func (self *HistogramCodeLength) Clear() {
	self.data_ = [kCodeLengthCodes]uint32{}
	self.total_count_ = 0
}

func (self *HistogramCodeLength) Add(val int) {
	self.data_[val]++
	self.total_count_++
}

func (self *HistogramCodeLength) Remove(val int) {
	assert(self.data_[val] > 0)
	self.data_[val]--
	self.total_count_--
}

type BlockSplitIterator struct {
	split_  *BlockSplit
	idx_    int
	type_   int
	length_ int
}

func InitBlockSplitIterator(self *BlockSplitIterator, split *BlockSplit) {
	self.split_ = split
	self.idx_ = 0
	self.type_ = 0
	self.length_ = 0
	if len(split.lengths_) > 0 {
		self.length_ = split.lengths_[0]
	}
}

func (self *BlockSplitIterator) Next() {
	if self.length_ == 0 {
		self.idx_++
		self.type_ = self.split_.types_[self.idx_]
		self.length_ = self.split_.lengths_[self.idx_]
	}

	self.length_--
}

/* Walks the commands over the ring buffer and fills one literal histogram
   per literal context, one command histogram per command block type and one
   distance histogram per distance context. */
func BuildHistograms(cmds []Command, literal_split *BlockSplit, insert_and_copy_split *BlockSplit, dist_split *BlockSplit, ringbuffer []byte, pos uint, mask uint, context_modes []int, literal_histograms []HistogramLiteral, insert_and_copy_histograms []HistogramCommand, copy_dist_histograms []HistogramDistance) {
	var literal_it BlockSplitIterator
	var insert_and_copy_it BlockSplitIterator
	var dist_it BlockSplitIterator
	var i int

	InitBlockSplitIterator(&literal_it, literal_split)
	InitBlockSplitIterator(&insert_and_copy_it, insert_and_copy_split)
	InitBlockSplitIterator(&dist_it, dist_split)
	for i = 0; i < len(cmds); i++ {
		var cmd *Command = &cmds[i]
		var j uint32
		insert_and_copy_it.Next()
		insert_and_copy_histograms[insert_and_copy_it.type_].Add(int(cmd.command_prefix_))
		for j = 0; j < cmd.insert_length_; j++ {
			literal_it.Next()
			var prev_byte byte = 0
			var prev_byte2 byte = 0
			if pos > 0 {
				prev_byte = ringbuffer[(pos-1)&mask]
			}
			if pos > 1 {
				prev_byte2 = ringbuffer[(pos-2)&mask]
			}
			var context int = (literal_it.type_ << kLiteralContextBits) + int(Context(prev_byte, prev_byte2, context_modes[literal_it.type_]))
			literal_histograms[context].Add(int(ringbuffer[pos&mask]))
			pos++
		}

		pos += uint(cmd.copy_length_)
		if cmd.copy_length_ > 0 && cmd.distance_prefix_ != 0xffff {
			dist_it.Next()
			var context int = (dist_it.type_ << kDistanceContextBits) + DistanceContext(cmd)
			copy_dist_histograms[context].Add(int(cmd.distance_prefix_))
		}
	}
}

/* Quantized copy length used to pick the distance histogram: copy lengths
   2, 3, 4 and longer each predict distances differently. */
func DistanceContext(cmd *Command) int {
	if cmd.copy_length_code_ > 4 {
		return 3
	}

	return int(cmd.copy_length_code_) - 2
}
