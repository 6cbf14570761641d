/*
DESCRIPTION
  generate.go implements Generate, which composes a Config into the
  per-frame sequence of rpu.DmData values it describes.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package generate composes a declarative Config into the concrete,
// per-frame sequence of RPU composer metadata envelopes it describes:
// expanding shots across their frame ranges, applying frame-level
// overrides, and deriving fields (L2 trims from L8, L5 offsets from an
// aspect ratio, source PQ from mastering luminance) that a hand-authored
// Config need not spell out itself.
package generate

import (
	"math"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/dovi-rpu/rpu"
)

// Generate composes cfg into cfg.Length rpu.DmData values, one per
// frame. log may be nil, in which case no tracing is performed.
func Generate(cfg Config, log logging.Logger) ([]rpu.DmData, error) {
	if cfg.Length <= 0 {
		return nil, nil
	}

	sourceMin, sourceMax := cfg.SourceMinPQ, cfg.SourceMaxPQ
	if sourceMin == 0 && sourceMax == 0 {
		if l6 := findLevel6(cfg.DefaultBlocks); l6 != nil {
			// min_display_mastering_luminance is in units of 0.0001 cd/m^2
			// (ST 2086); max_display_mastering_luminance is plain nits.
			sourceMin = luminanceToPQ(float64(l6.MinDisplayMasteringLuminance) * 0.0001)
			sourceMax = luminanceToPQ(float64(l6.MaxDisplayMasteringLuminance))
			logDebug(log, "derived source PQ range from default L6", "min", sourceMin, "max", sourceMax)
		}
	}

	out := make([]rpu.DmData, cfg.Length)
	for frame := 0; frame < cfg.Length; frame++ {
		shot, offset := shotForFrame(cfg.Shots, frame)

		blocks := cfg.DefaultBlocks
		if shot != nil {
			blocks = shot.Blocks
			if edit := frameEdit(shot, offset); edit != nil {
				blocks = edit.Blocks
			}
		}

		d, err := composeFrame(cfg, blocks, sourceMin, sourceMax, offset == 0)
		if err != nil {
			logDebug(log, "failed to compose frame", "frame", frame, "error", err)
			return nil, err
		}
		out[frame] = d
	}

	logDebug(log, "generated sequence", "frames", cfg.Length)
	return out, nil
}

// composeFrame builds one frame's envelope from a resolved block list,
// inserting a derived L5 (if the block list lacks one and the config sets
// TargetAspectRatio; missing canvas dimensions are then an error) and,
// for CM v4.0, deriving
// L2 trims from any L8 blocks present and defaulting L254/L11 when
// absent.
func composeFrame(cfg Config, blocks []rpu.ExtMetadataBlock, sourceMin, sourceMax uint16, sceneStart bool) (rpu.DmData, error) {
	var d rpu.DmData
	if cfg.CMVersion == rpu.V40 {
		d = rpu.NewCmV40()
	} else {
		d = rpu.NewCmV29()
	}

	haveL5 := false
	for _, b := range blocks {
		if cfg.ForceMaxVariableLength {
			b = forceMaxVariableLength(b)
		}
		if b.Level() == rpu.L5 {
			haveL5 = true
		}
		if err := d.AddBlock(b); err != nil {
			return nil, err
		}
	}

	if !haveL5 && cfg.TargetAspectRatio > 0 {
		l5, err := deriveLevel5(cfg.CanvasWidth, cfg.CanvasHeight, cfg.TargetAspectRatio)
		if err != nil {
			return nil, err
		}
		if err := d.AddBlock(l5); err != nil {
			return nil, err
		}
	}

	if cfg.CMVersion == rpu.V40 {
		if err := deriveL2FromL8(d); err != nil {
			return nil, err
		}
		if findLevel254(d.Blocks()) == nil {
			if err := d.AddBlock(&rpu.Level254{DmMode: 0, DmVersionIndex: 2}); err != nil {
				return nil, err
			}
		}
		if findLevel11(d.Blocks()) == nil {
			if err := d.AddBlock(&rpu.Level11{}); err != nil {
				return nil, err
			}
		}
	}

	if findLevel6(d.Blocks()) == nil && (sourceMin != 0 || sourceMax != 0) {
		l6 := &rpu.Level6{
			MinDisplayMasteringLuminance: uint16(math.Round(pqToLuminance(sourceMin) / 0.0001)),
			MaxDisplayMasteringLuminance: uint16(math.Round(pqToLuminance(sourceMax))),
		}
		l6.MaxContentLightLevel = l6.MaxDisplayMasteringLuminance
		if err := d.AddBlock(l6); err != nil {
			return nil, err
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// forceMaxVariableLength returns a copy of b with every optional field
// group populated with its zero value, so that L8, L9 and L10 blocks
// always serialize at their maximum legal byte size. Other block kinds
// are returned unchanged.
func forceMaxVariableLength(b rpu.ExtMetadataBlock) rpu.ExtMetadataBlock {
	switch orig := b.(type) {
	case *rpu.Level8:
		cp := *orig
		if cp.TargetMidContrast == nil {
			v := uint16(0)
			cp.TargetMidContrast = &v
		}
		if cp.ClipTrim == nil {
			v := int16(0)
			cp.ClipTrim = &v
		}
		if cp.SaturationVectors == nil {
			var v [6]uint8
			cp.SaturationVectors = &v
		}
		if cp.HueVectors == nil {
			var v [6]uint8
			cp.HueVectors = &v
		}
		return &cp
	case *rpu.Level9:
		cp := *orig
		if cp.RawPrimaries == nil {
			var v [8]uint16
			cp.RawPrimaries = &v
		}
		return &cp
	case *rpu.Level10:
		cp := *orig
		if cp.RawPrimaries == nil {
			var v [8]uint16
			cp.RawPrimaries = &v
		}
		return &cp
	default:
		return b
	}
}

// deriveL2FromL8 adds, for every L8 block in d that has no corresponding
// L2 (matched by target_display_index), an L2 block carrying the same
// trim values, with MsWeight folded in from L8's ms_weight field.
func deriveL2FromL8(d rpu.DmData) error {
	have := map[uint16]bool{}
	for _, b := range d.Blocks() {
		if l2, ok := b.(*rpu.Level2); ok {
			have[l2.TargetDisplayIndex] = true
		}
	}
	for _, b := range d.Blocks() {
		l8, ok := b.(*rpu.Level8)
		if !ok || have[l8.TargetDisplayIndex] {
			continue
		}
		l2 := &rpu.Level2{
			TargetMaxPQ:        4095,
			TrimSlope:          l8.TrimSlope,
			TrimOffset:         l8.TrimOffset,
			TrimPower:          l8.TrimPower,
			TrimChromaWeight:   l8.TrimChromaWeight,
			TrimSaturationGain: l8.TrimSaturationGain,
			MsWeight:           l8.MsWeight,
			TargetDisplayIndex: l8.TargetDisplayIndex,
		}
		if err := d.AddBlock(l2); err != nil {
			return err
		}
		have[l8.TargetDisplayIndex] = true
	}
	return nil
}

// deriveLevel5 computes the active area offsets that letterbox or
// pillarbox a canvasWidth x canvasHeight frame to targetAspectRatio
// (width / height).
func deriveLevel5(canvasWidth, canvasHeight int, targetAspectRatio float64) (*rpu.Level5, error) {
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return nil, rpu.ErrMissingCanvasDimensions
	}

	canvasAspect := float64(canvasWidth) / float64(canvasHeight)
	const epsilon = 1e-6

	switch {
	case targetAspectRatio > canvasAspect+epsilon:
		// Wider than the canvas: letterbox top and bottom.
		activeHeight := int(math.Round(float64(canvasWidth) / targetAspectRatio))
		diff := canvasHeight - activeHeight
		top := diff / 2
		bottom := diff - top
		return &rpu.Level5{ActiveAreaTopOffset: uint16(top), ActiveAreaBottomOffset: uint16(bottom)}, nil
	case targetAspectRatio < canvasAspect-epsilon:
		// Narrower than the canvas: pillarbox left and right.
		activeWidth := int(math.Round(float64(canvasHeight) * targetAspectRatio))
		diff := canvasWidth - activeWidth
		left := diff / 2
		right := diff - left
		return &rpu.Level5{ActiveAreaLeftOffset: uint16(left), ActiveAreaRightOffset: uint16(right)}, nil
	default:
		return &rpu.Level5{}, nil
	}
}

func findLevel6(blocks []rpu.ExtMetadataBlock) *rpu.Level6 {
	for _, b := range blocks {
		if l6, ok := b.(*rpu.Level6); ok {
			return l6
		}
	}
	return nil
}

func findLevel11(blocks []rpu.ExtMetadataBlock) *rpu.Level11 {
	for _, b := range blocks {
		if l, ok := b.(*rpu.Level11); ok {
			return l
		}
	}
	return nil
}

func findLevel254(blocks []rpu.ExtMetadataBlock) *rpu.Level254 {
	for _, b := range blocks {
		if l, ok := b.(*rpu.Level254); ok {
			return l
		}
	}
	return nil
}

// shotForFrame returns the shot covering frame and the frame's offset
// from that shot's start, or (nil, 0) if no shot covers it.
func shotForFrame(shots []VideoShot, frame int) (*VideoShot, int) {
	for i := range shots {
		s := &shots[i]
		if frame >= s.StartFrame && frame < s.StartFrame+s.DurationFrames {
			return s, frame - s.StartFrame
		}
	}
	return nil, 0
}

func frameEdit(shot *VideoShot, offset int) *ShotFrameEdit {
	for i := range shot.FrameEdits {
		if shot.FrameEdits[i].Offset == offset {
			return &shot.FrameEdits[i]
		}
	}
	return nil
}

func logDebug(log logging.Logger, msg string, args ...interface{}) {
	if log == nil {
		return
	}
	log.Debug(msg, args...)
}
