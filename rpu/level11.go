/*
DESCRIPTION
  level11.go implements the level 11 (content intent metadata) extension
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

// Level11 carries content-type and display-intent hints that a decoder
// may use to select a processing preset.
type Level11 struct {
	ContentType         uint8
	Whitepoint          uint8
	ReferenceModeFlag   bool
	Sharpness           uint8
	NoiseReduction      uint8
	MpegNoiseReduction  uint8
	FrameRateConversion uint8
	Brightness          uint8
	Color               uint8
}

func (*Level11) sealed() {}

func (b *Level11) Level() uint8 { return L11 }

func (b *Level11) BytesSize() uint64 { return 4 }

func (b *Level11) RequiredBits() uint64 { return 32 }

func (b *Level11) PossibleBytesSize() []uint64 { return []uint64{4} }

func (b *Level11) PossibleRequiredBits() []uint64 { return []uint64{32} }

func (b *Level11) SortKey() (uint8, uint16) { return b.Level(), 0 }

func parseLevel11(c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level11{
		ContentType:         uint8(r.n(8)),
		Whitepoint:          uint8(r.n(8)),
		ReferenceModeFlag:   r.bit(),
		Sharpness:           uint8(r.n(2)),
		NoiseReduction:      uint8(r.n(2)),
		MpegNoiseReduction:  uint8(r.n(2)),
		FrameRateConversion: uint8(r.n(4)),
		Brightness:          uint8(r.n(2)),
		Color:               uint8(r.n(3)),
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level11) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.ContentType), 8)
	c.WriteN(uint64(b.Whitepoint), 8)
	c.WriteBit(b.ReferenceModeFlag)
	c.WriteN(uint64(b.Sharpness), 2)
	c.WriteN(uint64(b.NoiseReduction), 2)
	c.WriteN(uint64(b.MpegNoiseReduction), 2)
	c.WriteN(uint64(b.FrameRateConversion), 4)
	c.WriteN(uint64(b.Brightness), 2)
	c.WriteN(uint64(b.Color), 3)
}

func (b *Level11) Validate() error {
	if b.Sharpness > 3 || b.NoiseReduction > 3 || b.MpegNoiseReduction > 3 || b.Brightness > 3 {
		return fieldOutOfRange("level11: a 2-bit field exceeds 3")
	}
	if b.FrameRateConversion > 15 {
		return fieldOutOfRange("level11: frame_rate_conversion %d exceeds 15", b.FrameRateConversion)
	}
	if b.Color > 7 {
		return fieldOutOfRange("level11: color %d exceeds 7", b.Color)
	}
	return nil
}
