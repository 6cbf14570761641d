/*
DESCRIPTION
  st2094_10.go implements the ST 2094-10 user_data_registered_itu_t_t35
  payload bridge: the wrapper a decoder sees before an inline CM v2.9
  envelope, when one is carried as SEI rather than in the RPU itself.

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

// St2094_10Payload is the ST 2094-10 application identification header.
// When MetadataRefreshFlag is set, Envelope carries the inline CM v2.9
// composer metadata that follows it; otherwise a decoder is expected to
// keep using the most recently refreshed envelope.
type St2094_10Payload struct {
	AppIdentifier       uint64
	AppVersion          uint64
	MetadataRefreshFlag bool
	Envelope            DmData
}

// ParseSt2094_10 parses buf as an ST 2094-10 payload.
func ParseSt2094_10(buf []byte) (*St2094_10Payload, error) {
	c := bits.NewReader(buf)

	appID, err := c.GetUE()
	if err != nil {
		return nil, err
	}
	appVersion, err := c.GetUE()
	if err != nil {
		return nil, err
	}
	refresh, err := c.GetBit()
	if err != nil {
		return nil, err
	}

	p := &St2094_10Payload{
		AppIdentifier:       appID,
		AppVersion:          appVersion,
		MetadataRefreshFlag: refresh,
	}
	if !refresh {
		return p, nil
	}

	blocks, err := parseEnvelope(buf[byteOffset(c):], v29Spec)
	if err != nil {
		return nil, err
	}
	p.Envelope = &CmV29{envelope{spec: v29Spec, blocks: blocks}}
	return p, nil
}

// WriteSt2094_10 serializes p. If p.MetadataRefreshFlag is set, p.Envelope
// must be non-nil and is serialized as the inline CM v2.9 envelope.
func WriteSt2094_10(p *St2094_10Payload) ([]byte, error) {
	c := bits.NewWriter()
	c.WriteUE(p.AppIdentifier)
	c.WriteUE(p.AppVersion)
	c.WriteBit(p.MetadataRefreshFlag)

	if !p.MetadataRefreshFlag {
		return c.Bytes(), nil
	}

	if err := p.Envelope.Validate(); err != nil {
		return nil, err
	}
	for !c.IsAligned() {
		c.WriteBit(false)
	}
	writeEnvelope(c, p.Envelope.Blocks())
	return c.Bytes(), nil
}

// byteOffset rounds c's current bit position up to the next byte
// boundary and returns the byte offset, so the inline envelope (which is
// itself byte-aligned at its start) can be parsed independently.
func byteOffset(c *bits.BitCursor) int {
	pos := c.Pos()
	if pos%8 != 0 {
		pos += 8 - pos%8
	}
	return pos / 8
}
