/*
DESCRIPTION
  level6.go implements the level 6 (mastering display / content light
  level legacy passthrough) extension metadata block.

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

// MaxPQLuminance is the maximum luminance, in nits, representable by the
// PQ transfer function this package assumes throughout (ST 2084).
const MaxPQLuminance = 10000

// Level6 carries the legacy, non-dynamic mastering display luminance and
// content light level values, mirroring the HDR10 static metadata SEI.
type Level6 struct {
	MaxDisplayMasteringLuminance uint16
	MinDisplayMasteringLuminance uint16
	MaxContentLightLevel         uint16
	MaxFrameAverageLightLevel    uint16
}

func (*Level6) sealed() {}

func (b *Level6) Level() uint8 { return L6 }

func (b *Level6) BytesSize() uint64 { return 8 }

func (b *Level6) RequiredBits() uint64 { return 64 }

func (b *Level6) PossibleBytesSize() []uint64 { return []uint64{8} }

func (b *Level6) PossibleRequiredBits() []uint64 { return []uint64{64} }

func (b *Level6) SortKey() (uint8, uint16) { return b.Level(), 0 }

func parseLevel6(c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level6{
		MaxDisplayMasteringLuminance: uint16(r.n(16)),
		MinDisplayMasteringLuminance: uint16(r.n(16)),
		MaxContentLightLevel:         uint16(r.n(16)),
		MaxFrameAverageLightLevel:    uint16(r.n(16)),
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level6) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.MaxDisplayMasteringLuminance), 16)
	c.WriteN(uint64(b.MinDisplayMasteringLuminance), 16)
	c.WriteN(uint64(b.MaxContentLightLevel), 16)
	c.WriteN(uint64(b.MaxFrameAverageLightLevel), 16)
}

func (b *Level6) Validate() error {
	for name, v := range map[string]uint16{
		"max_display_mastering_luminance": b.MaxDisplayMasteringLuminance,
		"min_display_mastering_luminance": b.MinDisplayMasteringLuminance,
		"max_content_light_level":         b.MaxContentLightLevel,
		"max_frame_average_light_level":   b.MaxFrameAverageLightLevel,
	} {
		if v > MaxPQLuminance {
			return fieldOutOfRange("level6: %s %d exceeds %d", name, v, MaxPQLuminance)
		}
	}
	if b.MinDisplayMasteringLuminance > b.MaxDisplayMasteringLuminance {
		return fieldOutOfRange("level6: min_display_mastering_luminance %d exceeds max %d",
			b.MinDisplayMasteringLuminance, b.MaxDisplayMasteringLuminance)
	}
	return nil
}
