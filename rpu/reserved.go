/*
DESCRIPTION
  reserved.go implements a pass-through block for levels this package does
  not otherwise recognize, preserving their raw payload bytes unchanged.

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

// Reserved carries the raw payload of a block level this package does
// not model; parseBlock returns one for any unrecognized level, and its
// Write emits the payload unchanged. Neither CM v2.9 nor CM v4.0 lists an
// unrecognized level among its allowed levels, so an envelope containing
// one fails to parse with ErrBlockLevelNotAllowed, and AddBlock rejects a
// Reserved block the same way.
type Reserved struct {
	LevelNum uint8
	Payload  []byte
}

func (*Reserved) sealed() {}

func (b *Reserved) Level() uint8 { return b.LevelNum }

func (b *Reserved) BytesSize() uint64 { return uint64(len(b.Payload)) }

func (b *Reserved) RequiredBits() uint64 { return uint64(len(b.Payload)) * 8 }

func (b *Reserved) PossibleBytesSize() []uint64 { return []uint64{uint64(len(b.Payload))} }

func (b *Reserved) PossibleRequiredBits() []uint64 { return []uint64{uint64(len(b.Payload)) * 8} }

func (b *Reserved) SortKey() (uint8, uint16) { return b.LevelNum, 0 }

func parseReserved(level uint8, lengthBytes uint64, c *bits.BitCursor) (ExtMetadataBlock, error) {
	payload := make([]byte, lengthBytes)
	for i := range payload {
		v, err := c.GetN(8)
		if err != nil {
			return nil, err
		}
		payload[i] = byte(v)
	}
	return &Reserved{LevelNum: level, Payload: payload}, nil
}

func (b *Reserved) Write(c *bits.BitCursor) {
	for _, v := range b.Payload {
		c.WriteN(uint64(v), 8)
	}
}

func (b *Reserved) Validate() error { return nil }
