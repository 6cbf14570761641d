/*
DESCRIPTION
  level1.go implements the level 1 (content light level / scene min-max-avg
  PQ) extension metadata block.

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

// Level1 carries the scene's minimum, maximum and average PQ code values.
type Level1 struct {
	MinPQ uint16
	MaxPQ uint16
	AvgPQ uint16
}

func (*Level1) sealed() {}

func (b *Level1) Level() uint8 { return L1 }

func (b *Level1) BytesSize() uint64 { return 5 }

func (b *Level1) RequiredBits() uint64 { return 36 }

func (b *Level1) PossibleBytesSize() []uint64 { return []uint64{5} }

func (b *Level1) PossibleRequiredBits() []uint64 { return []uint64{36} }

func (b *Level1) SortKey() (uint8, uint16) { return b.Level(), 0 }

func parseLevel1(c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level1{
		MinPQ: uint16(r.n(12)),
		MaxPQ: uint16(r.n(12)),
		AvgPQ: uint16(r.n(12)),
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level1) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.MinPQ), 12)
	c.WriteN(uint64(b.MaxPQ), 12)
	c.WriteN(uint64(b.AvgPQ), 12)
}

func (b *Level1) Validate() error {
	if b.MinPQ > 4095 {
		return fieldOutOfRange("level1: min_pq %d exceeds 4095", b.MinPQ)
	}
	if b.MaxPQ > 4095 {
		return fieldOutOfRange("level1: max_pq %d exceeds 4095", b.MaxPQ)
	}
	if b.AvgPQ > 4095 {
		return fieldOutOfRange("level1: avg_pq %d exceeds 4095", b.AvgPQ)
	}
	if b.MinPQ > b.AvgPQ || b.AvgPQ > b.MaxPQ {
		return fieldOutOfRange("level1: expected min_pq <= avg_pq <= max_pq, got %d <= %d <= %d", b.MinPQ, b.AvgPQ, b.MaxPQ)
	}
	return nil
}
