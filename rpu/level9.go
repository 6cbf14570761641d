/*
DESCRIPTION
  level9.go implements the level 9 (source colorspace primaries)
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

// sourcePrimaryCustom is the source_primary_index value that selects the
// inline RawPrimaries group instead of a predefinedColorspacePrimaries
// lookup.
const sourcePrimaryCustom = 255

// Level9 identifies the source colorspace's chromaticity coordinates,
// either by index into predefinedColorspacePrimaries or, when
// SourcePrimaryIndex is 255, by an inline set of raw coordinates.
type Level9 struct {
	SourcePrimaryIndex uint8
	RawPrimaries       *[8]uint16
}

func (*Level9) sealed() {}

func (b *Level9) Level() uint8 { return L9 }

func (b *Level9) BytesSize() uint64 {
	if b.RawPrimaries != nil {
		return 17
	}
	return 1
}

func (b *Level9) RequiredBits() uint64 {
	if b.RawPrimaries != nil {
		return 136
	}
	return 8
}

func (b *Level9) PossibleBytesSize() []uint64 { return []uint64{1, 17} }

func (b *Level9) PossibleRequiredBits() []uint64 { return []uint64{8, 136} }

func (b *Level9) SortKey() (uint8, uint16) { return b.Level(), 0 }

func parseLevel9(lengthBytes uint64, c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level9{SourcePrimaryIndex: uint8(r.n(8))}
	if lengthBytes >= 17 {
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

func (b *Level9) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.SourcePrimaryIndex), 8)
	if b.RawPrimaries != nil {
		for _, v := range *b.RawPrimaries {
			c.WriteN(uint64(v), 16)
		}
	}
}

func (b *Level9) Validate() error {
	if b.RawPrimaries == nil && int(b.SourcePrimaryIndex) >= len(predefinedColorspacePrimaries) && b.SourcePrimaryIndex != sourcePrimaryCustom {
		return fieldOutOfRange("level9: source_primary_index %d has no predefined primaries", b.SourcePrimaryIndex)
	}
	return nil
}
