/*
DESCRIPTION
  level2.go implements the level 2 (trim pass) extension metadata block.

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

// Level2 carries a single trim pass applied at a target display's peak
// luminance.
//
// The wire format carries no target_display_index field; a CM v4.0
// stream correlates trims to the L8 block they were derived alongside by
// array position. TargetDisplayIndex is therefore kept only as in-memory
// bookkeeping for sorting and deduplication, populated by a caller that
// derives L2 from an L8 block, and defaults to 0 on parse.
type Level2 struct {
	TargetMaxPQ        uint16
	TrimSlope          uint16
	TrimOffset         uint16
	TrimPower          uint16
	TrimChromaWeight   uint16
	TrimSaturationGain uint16
	MsWeight           int16

	TargetDisplayIndex uint16
}

func (*Level2) sealed() {}

func (b *Level2) Level() uint8 { return L2 }

func (b *Level2) BytesSize() uint64 { return 11 }

func (b *Level2) RequiredBits() uint64 { return 84 }

func (b *Level2) PossibleBytesSize() []uint64 { return []uint64{11} }

func (b *Level2) PossibleRequiredBits() []uint64 { return []uint64{84} }

func (b *Level2) SortKey() (uint8, uint16) { return b.Level(), b.TargetDisplayIndex }

func parseLevel2(c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level2{
		TargetMaxPQ:        uint16(r.n(12)),
		TrimSlope:          uint16(r.n(12)),
		TrimOffset:         uint16(r.n(12)),
		TrimPower:          uint16(r.n(12)),
		TrimChromaWeight:   uint16(r.n(12)),
		TrimSaturationGain: uint16(r.n(12)),
		MsWeight:           int16(r.signed(12)),
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level2) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.TargetMaxPQ), 12)
	c.WriteN(uint64(b.TrimSlope), 12)
	c.WriteN(uint64(b.TrimOffset), 12)
	c.WriteN(uint64(b.TrimPower), 12)
	c.WriteN(uint64(b.TrimChromaWeight), 12)
	c.WriteN(uint64(b.TrimSaturationGain), 12)
	c.WriteN(encodeSigned(int32(b.MsWeight), 12), 12)
}

func (b *Level2) Validate() error {
	for name, v := range map[string]uint16{
		"target_max_pq":        b.TargetMaxPQ,
		"trim_slope":           b.TrimSlope,
		"trim_offset":          b.TrimOffset,
		"trim_power":           b.TrimPower,
		"trim_chroma_weight":   b.TrimChromaWeight,
		"trim_saturation_gain": b.TrimSaturationGain,
	} {
		if v > 4095 {
			return fieldOutOfRange("level2: %s %d exceeds 4095", name, v)
		}
	}
	if b.MsWeight < -2048 || b.MsWeight > 2047 {
		return fieldOutOfRange("level2: ms_weight %d out of signed 12-bit range", b.MsWeight)
	}
	return nil
}
