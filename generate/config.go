/*
DESCRIPTION
  config.go defines Config, the declarative description of a sequence of
  RPUs that Generate composes into concrete rpu.DmData values.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package generate

import "github.com/ausocean/dovi-rpu/rpu"

// ShotFrameEdit overrides a single shot's default metadata blocks for one
// frame, identified by its offset from the shot's first frame.
type ShotFrameEdit struct {
	Offset int
	Blocks []rpu.ExtMetadataBlock
}

// VideoShot describes a contiguous run of frames sharing a default set of
// metadata blocks, with optional per-frame overrides.
type VideoShot struct {
	// StartFrame is this shot's first frame, inclusive, measured against
	// the whole sequence Generate is producing.
	StartFrame int

	// DurationFrames is the number of frames in this shot.
	DurationFrames int

	// Blocks are the default metadata blocks applied to every frame of
	// this shot, before any FrameEdits override them.
	Blocks []rpu.ExtMetadataBlock

	// FrameEdits overrides Blocks for specific frames of this shot.
	FrameEdits []ShotFrameEdit
}

// Config drives Generate. Fields left at their zero value fall back to
// a conservative default: SourceMinPQ/SourceMaxPQ are derived from an
// L6 block when omitted, and CanvasWidth/CanvasHeight are required only
// when a shot needs an L5 block derived from an aspect ratio rather than
// supplied explicitly.
type Config struct {
	// Length is the total number of frames to generate across all shots.
	Length int

	// CMVersion selects which composer metadata envelope Generate emits.
	CMVersion rpu.Version

	// SourceMinPQ and SourceMaxPQ are the source mastering display's PQ
	// range. If both are zero, they are derived from DefaultBlocks' L6
	// block via the ST 2084 inverse EOTF.
	SourceMinPQ uint16
	SourceMaxPQ uint16

	// CanvasWidth and CanvasHeight are the coded frame's dimensions, used
	// to derive an L5 block from TargetAspectRatio when a shot does not
	// supply its own L5.
	CanvasWidth  int
	CanvasHeight int

	// TargetAspectRatio is the intended display aspect ratio (width /
	// height) used to derive L5 active area offsets when a shot doesn't
	// carry an explicit L5 block.
	TargetAspectRatio float64

	// DefaultBlocks are applied to every frame that a shot does not
	// override.
	DefaultBlocks []rpu.ExtMetadataBlock

	// Shots partitions Length into contiguous runs. Shots must be sorted
	// by StartFrame and must not overlap; any frame not covered by a
	// shot uses DefaultBlocks unmodified.
	Shots []VideoShot

	// ForceMaxVariableLength, when set, makes Generate populate every
	// optional field group on variable-length blocks (L8, L9, L10) it
	// produces, so they always serialize at their maximum legal byte
	// size. This exists for compatibility with decoders that expect a
	// fixed block layout and mishandle the shorter, equally legal forms.
	ForceMaxVariableLength bool
}
