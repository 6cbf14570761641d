/*
DESCRIPTION
  level3.go implements the level 3 (L1 offset adjustment) extension
  metadata block.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rpu

import "github.com/ausocean/dovi-rpu/bits"

// Level3 carries signed offsets applied to an accompanying L1 block's
// min/max/avg PQ values.
type Level3 struct {
	MinPQOffset int8
	MaxPQOffset int8
	AvgPQOffset int8
}

func (*Level3) sealed() {}

func (b *Level3) Level() uint8 { return L3 }

func (b *Level3) BytesSize() uint64 { return 2 }

func (b *Level3) RequiredBits() uint64 { return 15 }

func (b *Level3) PossibleBytesSize() []uint64 { return []uint64{2} }

func (b *Level3) PossibleRequiredBits() []uint64 { return []uint64{15} }

func (b *Level3) SortKey() (uint8, uint16) { return b.Level(), 0 }

func parseLevel3(c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level3{
		MinPQOffset: int8(r.signed(5)),
		MaxPQOffset: int8(r.signed(5)),
		AvgPQOffset: int8(r.signed(5)),
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level3) Write(c *bits.BitCursor) {
	c.WriteN(encodeSigned(int32(b.MinPQOffset), 5), 5)
	c.WriteN(encodeSigned(int32(b.MaxPQOffset), 5), 5)
	c.WriteN(encodeSigned(int32(b.AvgPQOffset), 5), 5)
}

func (b *Level3) Validate() error {
	for name, v := range map[string]int8{
		"min_pq_offset": b.MinPQOffset,
		"max_pq_offset": b.MaxPQOffset,
		"avg_pq_offset": b.AvgPQOffset,
	} {
		if v < -16 || v > 15 {
			return fieldOutOfRange("level3: %s %d out of signed 5-bit range", name, v)
		}
	}
	return nil
}
