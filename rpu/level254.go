/*
DESCRIPTION
  level254.go implements the level 254 (content mapping metadata
  generator identification) extension metadata block.

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

// Level254 identifies the tool and algorithm version that generated the
// enclosing composer metadata.
type Level254 struct {
	DmMode         uint8
	DmVersionIndex uint8
}

func (*Level254) sealed() {}

func (b *Level254) Level() uint8 { return L254 }

func (b *Level254) BytesSize() uint64 { return 5 }

func (b *Level254) RequiredBits() uint64 { return 32 }

func (b *Level254) PossibleBytesSize() []uint64 { return []uint64{5} }

func (b *Level254) PossibleRequiredBits() []uint64 { return []uint64{32} }

func (b *Level254) SortKey() (uint8, uint16) { return b.Level(), 0 }

func parseLevel254(c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level254{
		DmMode:         uint8(r.n(8)),
		DmVersionIndex: uint8(r.n(8)),
	}
	// 16 reserved bits, expected to be zero.
	reserved := r.n(16)
	if r.err() != nil {
		return nil, r.err()
	}
	if reserved != 0 {
		return nil, ErrAlignmentNonZero
	}
	return b, nil
}

func (b *Level254) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.DmMode), 8)
	c.WriteN(uint64(b.DmVersionIndex), 8)
	c.WriteN(0, 16)
}

func (b *Level254) Validate() error { return nil }
