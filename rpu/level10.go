/*
DESCRIPTION
  level10.go implements the level 10 (target display configuration)
  variable-length extension metadata block.

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

// Level10 describes a non-preset target display: its PQ range, and
// either a predefinedRealDevicePrimaries index or an inline set of raw
// chromaticity coordinates.
type Level10 struct {
	TargetDisplayIndex uint16
	TargetMaxPQ        uint16
	TargetMinPQ        uint16
	TargetPrimaryIndex uint8
	RawPrimaries       *[8]uint16
}

func (*Level10) sealed() {}

func (b *Level10) Level() uint8 { return L10 }

func (b *Level10) BytesSize() uint64 {
	if b.RawPrimaries != nil {
		return 21
	}
	return 5
}

func (b *Level10) RequiredBits() uint64 {
	if b.RawPrimaries != nil {
		return 168
	}
	return 40
}

func (b *Level10) PossibleBytesSize() []uint64 { return []uint64{5, 21} }

func (b *Level10) PossibleRequiredBits() []uint64 { return []uint64{40, 168} }

func (b *Level10) SortKey() (uint8, uint16) { return b.Level(), b.TargetDisplayIndex }

func parseLevel10(lengthBytes uint64, c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level10{
		TargetDisplayIndex: uint16(r.n(8)),
		TargetMaxPQ:        uint16(r.n(12)),
		TargetMinPQ:        uint16(r.n(12)),
		TargetPrimaryIndex: uint8(r.n(8)),
	}
	if lengthBytes >= 21 {
		var v [8]uint16
		for i := range v {
			v[i] = uint16(r.n(16))
		}
		b.RawPrimaries = &v
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level10) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.TargetDisplayIndex), 8)
	c.WriteN(uint64(b.TargetMaxPQ), 12)
	c.WriteN(uint64(b.TargetMinPQ), 12)
	c.WriteN(uint64(b.TargetPrimaryIndex), 8)
	if b.RawPrimaries != nil {
		for _, v := range *b.RawPrimaries {
			c.WriteN(uint64(v), 16)
		}
	}
}

func (b *Level10) Validate() error {
	if presetTargetDisplays[b.TargetDisplayIndex] {
		return fieldOutOfRange("level10: target_display_index %d is a reserved preset display", b.TargetDisplayIndex)
	}
	// The 12-bit 4095 bound is the only range check on the PQ fields;
	// MaxPQLuminance (nits) is not compared against them.
	if b.TargetMaxPQ > 4095 {
		return fieldOutOfRange("level10: target_max_pq %d exceeds 4095", b.TargetMaxPQ)
	}
	if b.TargetMinPQ > 4095 {
		return fieldOutOfRange("level10: target_min_pq %d exceeds 4095", b.TargetMinPQ)
	}
	if b.TargetMinPQ > b.TargetMaxPQ {
		return fieldOutOfRange("level10: target_min_pq %d exceeds target_max_pq %d", b.TargetMinPQ, b.TargetMaxPQ)
	}
	if b.RawPrimaries == nil && int(b.TargetPrimaryIndex) >= len(predefinedRealDevicePrimaries) && b.TargetPrimaryIndex != sourcePrimaryCustom {
		return fieldOutOfRange("level10: target_primary_index %d has no predefined primaries", b.TargetPrimaryIndex)
	}
	return nil
}
