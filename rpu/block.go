/*
DESCRIPTION
  block.go provides the ExtMetadataBlock interface implemented by every
  level-specific metadata block, and the level/version dispatch used to
  parse one out of a bit stream.

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

import (
	"fmt"

	"github.com/ausocean/dovi-rpu/bits"
	"github.com/pkg/errors"
)

// Level numbers for the supported extension metadata block kinds.
const (
	L1   uint8 = 1
	L2   uint8 = 2
	L3   uint8 = 3
	L4   uint8 = 4
	L5   uint8 = 5
	L6   uint8 = 6
	L8   uint8 = 8
	L9   uint8 = 9
	L10  uint8 = 10
	L11  uint8 = 11
	L254 uint8 = 254
)

// ExtMetadataBlock is implemented by every level-specific metadata block.
// The method set mirrors the wire-format contract: every level knows its
// own legal byte-length table, its required-bit count for its current
// field configuration, and how to order itself among its peers.
//
// sealed is unexported so that ExtMetadataBlock behaves as a closed sum
// type over the levels defined in this package, the same way the source
// format models it as an enum.
type ExtMetadataBlock interface {
	// Level returns the block's level number.
	Level() uint8

	// BytesSize returns the byte length of this block's current field
	// configuration.
	BytesSize() uint64

	// RequiredBits returns the number of payload bits this block's
	// current field configuration requires, not counting trailing
	// padding.
	RequiredBits() uint64

	// PossibleBytesSize returns every byte length this level may
	// legally declare.
	PossibleBytesSize() []uint64

	// PossibleRequiredBits returns the required-bit count for each
	// entry of PossibleBytesSize, in the same order.
	PossibleRequiredBits() []uint64

	// SortKey returns the (level, target_display_index) key blocks are
	// ordered and deduplicated by. Blocks with no notion of a target
	// display return a second component of 0.
	SortKey() (uint8, uint16)

	// Write emits this block's current field configuration. Callers
	// must call Validate first; Write does not call it implicitly so
	// that envelope writers can validate the whole block set before
	// emitting any bytes.
	Write(c *bits.BitCursor)

	// Validate checks field ranges and other level-specific invariants.
	Validate() error

	sealed()
}

// parseBlock dispatches on level to the matching level's parser. lengthBytes
// is the declared length_bytes read from the envelope header; it selects
// which optional fields a variable-length block parses.
func parseBlock(level uint8, lengthBytes uint64, c *bits.BitCursor) (ExtMetadataBlock, error) {
	switch level {
	case L1:
		return parseLevel1(c)
	case L2:
		return parseLevel2(c)
	case L3:
		return parseLevel3(c)
	case L4:
		return parseLevel4(c)
	case L5:
		return parseLevel5(c)
	case L6:
		return parseLevel6(c)
	case L8:
		return parseLevel8(lengthBytes, c)
	case L9:
		return parseLevel9(lengthBytes, c)
	case L10:
		return parseLevel10(lengthBytes, c)
	case L11:
		return parseLevel11(c)
	case L254:
		return parseLevel254(c)
	default:
		return parseReserved(level, lengthBytes, c)
	}
}

// legalLength reports whether declared lengthBytes is one of b's legal
// byte sizes, and returns the required-bit count the envelope should use
// to compute trailing padding for that declared length.
func legalLength(b ExtMetadataBlock, lengthBytes uint64) (requiredBits uint64, ok bool) {
	sizes := b.PossibleBytesSize()
	bitsTable := b.PossibleRequiredBits()
	for i, sz := range sizes {
		if sz == lengthBytes {
			return bitsTable[i], true
		}
	}
	return 0, false
}

func fieldOutOfRange(format string, args ...interface{}) error {
	return errors.Wrap(ErrFieldOutOfRange, fmt.Sprintf(format, args...))
}
