/*
DESCRIPTION
  level4.go implements the level 4 (L2 anchor point) extension metadata
  block.

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

// Level4 carries the anchor PQ and power used by the tone-mapping curve's
// mid-tone region.
type Level4 struct {
	AnchorPQ    uint16
	AnchorPower uint16
}

func (*Level4) sealed() {}

func (b *Level4) Level() uint8 { return L4 }

func (b *Level4) BytesSize() uint64 { return 3 }

func (b *Level4) RequiredBits() uint64 { return 20 }

func (b *Level4) PossibleBytesSize() []uint64 { return []uint64{3} }

func (b *Level4) PossibleRequiredBits() []uint64 { return []uint64{20} }

func (b *Level4) SortKey() (uint8, uint16) { return b.Level(), 0 }

func parseLevel4(c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level4{
		AnchorPQ:    uint16(r.n(10)),
		AnchorPower: uint16(r.n(10)),
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level4) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.AnchorPQ), 10)
	c.WriteN(uint64(b.AnchorPower), 10)
}

func (b *Level4) Validate() error {
	if b.AnchorPQ > 1023 {
		return fieldOutOfRange("level4: anchor_pq %d exceeds 1023", b.AnchorPQ)
	}
	if b.AnchorPower > 1023 {
		return fieldOutOfRange("level4: anchor_power %d exceeds 1023", b.AnchorPower)
	}
	return nil
}
