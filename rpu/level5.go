/*
DESCRIPTION
  level5.go implements the level 5 (active area) extension metadata block.

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

// Level5 carries the letterbox/pillarbox active area offsets, in pixels,
// from each edge of the coded frame to the active picture area.
type Level5 struct {
	ActiveAreaLeftOffset   uint16
	ActiveAreaRightOffset  uint16
	ActiveAreaTopOffset    uint16
	ActiveAreaBottomOffset uint16
}

func (*Level5) sealed() {}

func (b *Level5) Level() uint8 { return L5 }

func (b *Level5) BytesSize() uint64 { return 7 }

func (b *Level5) RequiredBits() uint64 { return 52 }

func (b *Level5) PossibleBytesSize() []uint64 { return []uint64{7} }

func (b *Level5) PossibleRequiredBits() []uint64 { return []uint64{52} }

func (b *Level5) SortKey() (uint8, uint16) { return b.Level(), 0 }

func parseLevel5(c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level5{
		ActiveAreaLeftOffset:   uint16(r.n(13)),
		ActiveAreaRightOffset:  uint16(r.n(13)),
		ActiveAreaTopOffset:    uint16(r.n(13)),
		ActiveAreaBottomOffset: uint16(r.n(13)),
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level5) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.ActiveAreaLeftOffset), 13)
	c.WriteN(uint64(b.ActiveAreaRightOffset), 13)
	c.WriteN(uint64(b.ActiveAreaTopOffset), 13)
	c.WriteN(uint64(b.ActiveAreaBottomOffset), 13)
}

func (b *Level5) Validate() error {
	for name, v := range map[string]uint16{
		"active_area_left_offset":   b.ActiveAreaLeftOffset,
		"active_area_right_offset":  b.ActiveAreaRightOffset,
		"active_area_top_offset":    b.ActiveAreaTopOffset,
		"active_area_bottom_offset": b.ActiveAreaBottomOffset,
	} {
		if v > 8191 {
			return fieldOutOfRange("level5: %s %d exceeds 8191", name, v)
		}
	}
	return nil
}

// zeroOffsets reports whether all four active area offsets are zero, i.e.
// the full coded frame is the active area.
func (b *Level5) zeroOffsets() bool {
	return b.ActiveAreaLeftOffset == 0 && b.ActiveAreaRightOffset == 0 &&
		b.ActiveAreaTopOffset == 0 && b.ActiveAreaBottomOffset == 0
}
