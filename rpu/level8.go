/*
DESCRIPTION
  level8.go implements the level 8 (per-target-display trim pass, CM v4.0)
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

// Level8 carries a trim pass for a specific target display, with an
// optional nested chain of further adjustment fields. Each optional group
// may only be present if every group before it in the chain is also
// present: target_mid_contrast, then clip_trim, then the six saturation
// vectors, then the six hue vectors.
type Level8 struct {
	TargetDisplayIndex uint16
	TrimSlope          uint16
	TrimOffset         uint16
	TrimPower          uint16
	TrimChromaWeight   uint16
	TrimSaturationGain uint16
	MsWeight           int16

	TargetMidContrast *uint16
	ClipTrim          *int16
	SaturationVectors *[6]uint8
	HueVectors        *[6]uint8
}

func (*Level8) sealed() {}

func (b *Level8) Level() uint8 { return L8 }

func (b *Level8) BytesSize() uint64 {
	switch {
	case b.HueVectors != nil:
		return 25
	case b.SaturationVectors != nil:
		return 19
	case b.ClipTrim != nil:
		return 13
	case b.TargetMidContrast != nil:
		return 12
	default:
		return 10
	}
}

func (b *Level8) RequiredBits() uint64 {
	bits := uint64(80)
	if b.TargetMidContrast != nil {
		bits += 12
	}
	if b.ClipTrim != nil {
		bits += 12
	}
	if b.SaturationVectors != nil {
		bits += 48
	}
	if b.HueVectors != nil {
		bits += 48
	}
	return bits
}

func (b *Level8) PossibleBytesSize() []uint64 { return []uint64{10, 12, 13, 19, 25} }

func (b *Level8) PossibleRequiredBits() []uint64 { return []uint64{80, 92, 104, 152, 200} }

func (b *Level8) SortKey() (uint8, uint16) { return b.Level(), b.TargetDisplayIndex }

func parseLevel8(lengthBytes uint64, c *bits.BitCursor) (ExtMetadataBlock, error) {
	r := newFieldReader(c)
	b := &Level8{
		TargetDisplayIndex: uint16(r.n(8)),
		TrimSlope:          uint16(r.n(12)),
		TrimOffset:         uint16(r.n(12)),
		TrimPower:          uint16(r.n(12)),
		TrimChromaWeight:   uint16(r.n(12)),
		TrimSaturationGain: uint16(r.n(12)),
		MsWeight:           int16(r.n(12)),
	}
	if lengthBytes >= 12 {
		v := uint16(r.n(12))
		b.TargetMidContrast = &v
	}
	if lengthBytes >= 13 {
		v := int16(r.n(12))
		b.ClipTrim = &v
	}
	if lengthBytes >= 19 {
		var v [6]uint8
		for i := range v {
			v[i] = uint8(r.n(8))
		}
		b.SaturationVectors = &v
	}
	if lengthBytes >= 25 {
		var v [6]uint8
		for i := range v {
			v[i] = uint8(r.n(8))
		}
		b.HueVectors = &v
	}
	if r.err() != nil {
		return nil, r.err()
	}
	return b, nil
}

func (b *Level8) Write(c *bits.BitCursor) {
	c.WriteN(uint64(b.TargetDisplayIndex), 8)
	c.WriteN(uint64(b.TrimSlope), 12)
	c.WriteN(uint64(b.TrimOffset), 12)
	c.WriteN(uint64(b.TrimPower), 12)
	c.WriteN(uint64(b.TrimChromaWeight), 12)
	c.WriteN(uint64(b.TrimSaturationGain), 12)
	c.WriteN(uint64(b.MsWeight), 12)
	if b.TargetMidContrast != nil {
		c.WriteN(uint64(*b.TargetMidContrast), 12)
	}
	if b.ClipTrim != nil {
		c.WriteN(uint64(*b.ClipTrim), 12)
	}
	if b.SaturationVectors != nil {
		for _, v := range *b.SaturationVectors {
			c.WriteN(uint64(v), 8)
		}
	}
	if b.HueVectors != nil {
		for _, v := range *b.HueVectors {
			c.WriteN(uint64(v), 8)
		}
	}
}

func (b *Level8) Validate() error {
	if b.HueVectors != nil && b.SaturationVectors == nil {
		return ErrInconsistentOptionals
	}
	if b.SaturationVectors != nil && b.ClipTrim == nil {
		return ErrInconsistentOptionals
	}
	if b.ClipTrim != nil && b.TargetMidContrast == nil {
		return ErrInconsistentOptionals
	}
	// Note: this guard is on ClipTrim, not TargetMidContrast. An earlier
	// draft of this check guarded on TargetMidContrast, which rejected a
	// legal block that carries target_mid_contrast but not clip_trim.
	if b.ClipTrim != nil {
		if *b.ClipTrim < 0 || *b.ClipTrim > 4095 {
			return fieldOutOfRange("level8: clip_trim %d out of unsigned 12-bit range", *b.ClipTrim)
		}
	}
	if b.TargetMidContrast != nil && *b.TargetMidContrast > 4095 {
		return fieldOutOfRange("level8: target_mid_contrast %d exceeds 4095", *b.TargetMidContrast)
	}
	if b.MsWeight < 0 || b.MsWeight > 4095 {
		return fieldOutOfRange("level8: ms_weight %d out of unsigned 12-bit range", b.MsWeight)
	}
	for name, v := range map[string]uint16{
		"trim_slope":           b.TrimSlope,
		"trim_offset":          b.TrimOffset,
		"trim_power":           b.TrimPower,
		"trim_chroma_weight":   b.TrimChromaWeight,
		"trim_saturation_gain": b.TrimSaturationGain,
	} {
		if v > 4095 {
			return fieldOutOfRange("level8: %s %d exceeds 4095", name, v)
		}
	}
	return nil
}
