/*
DESCRIPTION
  errors.go provides the error taxonomy returned by parse, write and
  validate operations across package rpu.

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
	"errors"

	"github.com/ausocean/dovi-rpu/bits"
)

// ErrTruncatedStream is returned when a bit read runs past the end of the
// supplied buffer.
var ErrTruncatedStream = bits.ErrTruncatedStream

// Sentinel errors for the remaining error kinds. Callers should compare
// against these with errors.Is; call sites wrap them with errors.Wrap to
// add positional context.
var (
	// ErrAlignmentNonZero indicates a dm_alignment_zero_bit or
	// ext_dm_alignment_zero_bit read as 1.
	ErrAlignmentNonZero = errors.New("rpu: alignment padding bit is not zero")

	// ErrInvalidBlockLength indicates a declared length_bytes is not in
	// the codec's legal set for the level/version.
	ErrInvalidBlockLength = errors.New("rpu: invalid block length for level")

	// ErrBlockLevelNotAllowed indicates a block level not permitted in
	// this envelope version.
	ErrBlockLevelNotAllowed = errors.New("rpu: block level not allowed for this composer version")

	// ErrFieldOutOfRange indicates a validator rejected a field value.
	ErrFieldOutOfRange = errors.New("rpu: field value out of range")

	// ErrInconsistentOptionals indicates a variable-length block has an
	// outer optional field group present while an inner one is absent.
	ErrInconsistentOptionals = errors.New("rpu: outer optional field present while inner field absent")

	// ErrMissingCanvasDimensions indicates L5 aspect-ratio derivation was
	// invoked without a canvas width or height.
	ErrMissingCanvasDimensions = errors.New("rpu: missing canvas dimensions")

	// ErrDuplicateBlock indicates AddBlock would produce a forbidden
	// duplicate (same level, or same (level, target_display_index) for
	// levels that key on target display) where the level does not allow
	// multiples.
	ErrDuplicateBlock = errors.New("rpu: duplicate block for a level that does not allow multiples")
)
