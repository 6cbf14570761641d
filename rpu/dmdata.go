/*
DESCRIPTION
  dmdata.go implements the CM v2.9 and CM v4.0 composer metadata
  envelopes: the container that carries an ordered, deduplicated set of
  extension metadata blocks.

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
	"sort"

	"github.com/ausocean/dovi-rpu/bits"
	"github.com/pkg/errors"
)

// Version selects which composer metadata envelope a byte buffer is
// parsed as, and which block levels that envelope may legally carry.
type Version int

const (
	V29 Version = iota
	V40
)

func (v Version) String() string {
	if v == V40 {
		return "CM v4.0"
	}
	return "CM v2.9"
}

// envelopeSpec captures what varies between composer versions: its name
// and which block levels are legal. It stands in for what would
// otherwise be a trait implemented per version. Which levels are
// variable-length is a property of the level itself (each level's own
// PossibleBytesSize), not of the envelope version, so it isn't
// duplicated here.
type envelopeSpec struct {
	name          string
	allowedLevels map[uint8]bool
}

var v29Spec = envelopeSpec{
	name: "CM v2.9",
	allowedLevels: map[uint8]bool{
		L1: true, L2: true, L3: true, L4: true, L5: true, L6: true,
	},
}

var v40Spec = envelopeSpec{
	name: "CM v4.0",
	allowedLevels: map[uint8]bool{
		L1: true, L2: true, L3: true, L4: true, L5: true, L6: true,
		L8: true, L9: true, L10: true, L11: true, L254: true,
	},
}

// singleInstanceLevels are levels that may appear at most once in an
// envelope, regardless of any per-block key.
var singleInstanceLevels = map[uint8]bool{
	L1: true, L3: true, L4: true, L5: true, L6: true, L9: true, L11: true, L254: true,
}

// DmData is the common contract of CmV29 and CmV40: an ordered,
// deduplicated set of extension metadata blocks.
type DmData interface {
	// Blocks returns the envelope's blocks, sorted by (level,
	// target_display_index).
	Blocks() []ExtMetadataBlock

	// AddBlock inserts b in sorted position, after checking for and
	// rejecting a forbidden duplicate.
	AddBlock(b ExtMetadataBlock) error

	// RemoveLevel removes every block with the given level.
	RemoveLevel(level uint8)

	// Version reports which composer version this envelope was parsed
	// as or constructed for.
	Version() Version

	// Validate checks every block's own Validate, plus the envelope's
	// allowed-level and duplicate invariants.
	Validate() error
}

// envelope is the shared implementation behind CmV29 and CmV40.
type envelope struct {
	spec   envelopeSpec
	blocks []ExtMetadataBlock
}

// CmV29 is a CM v2.9 composer metadata envelope.
type CmV29 struct{ envelope }

// CmV40 is a CM v4.0 composer metadata envelope.
type CmV40 struct{ envelope }

// NewCmV29 returns an empty CM v2.9 envelope.
func NewCmV29() *CmV29 { return &CmV29{envelope{spec: v29Spec}} }

// NewCmV40 returns an empty CM v4.0 envelope.
func NewCmV40() *CmV40 { return &CmV40{envelope{spec: v40Spec}} }

func (d *CmV29) Version() Version { return V29 }
func (d *CmV40) Version() Version { return V40 }

func (e *envelope) Blocks() []ExtMetadataBlock { return e.blocks }

func (e *envelope) RemoveLevel(level uint8) {
	out := e.blocks[:0]
	for _, b := range e.blocks {
		if b.Level() != level {
			out = append(out, b)
		}
	}
	e.blocks = out
}

func (e *envelope) AddBlock(b ExtMetadataBlock) error {
	if !e.spec.allowedLevels[b.Level()] {
		return errors.Wrapf(ErrBlockLevelNotAllowed, "%s: level %d", e.spec.name, b.Level())
	}
	level, idx := b.SortKey()
	for _, existing := range e.blocks {
		exLevel, exIdx := existing.SortKey()
		if exLevel != level {
			continue
		}
		if singleInstanceLevels[level] || exIdx == idx {
			return errors.Wrapf(ErrDuplicateBlock, "level %d, target_display_index %d", level, idx)
		}
	}
	e.blocks = append(e.blocks, b)
	sortBlocks(e.blocks)
	return nil
}

func sortBlocks(blocks []ExtMetadataBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		li, ii := blocks[i].SortKey()
		lj, ij := blocks[j].SortKey()
		if li != lj {
			return li < lj
		}
		return ii < ij
	})
}

func (e *envelope) Validate() error {
	seen := map[[2]uint16]bool{}
	for _, b := range e.blocks {
		if !e.spec.allowedLevels[b.Level()] {
			return errors.Wrapf(ErrBlockLevelNotAllowed, "%s: level %d", e.spec.name, b.Level())
		}
		level, idx := b.SortKey()
		key := [2]uint16{uint16(level), idx}
		if singleInstanceLevels[level] {
			key[1] = 0
		}
		if seen[key] {
			return errors.Wrapf(ErrDuplicateBlock, "level %d, target_display_index %d", level, idx)
		}
		seen[key] = true
		if err := b.Validate(); err != nil {
			return errors.Wrapf(err, "level %d", b.Level())
		}
	}
	return nil
}

// ParseDmData parses buf as a composer metadata envelope of the given
// version. A failed parse never returns a partially-populated value.
func ParseDmData(buf []byte, version Version) (DmData, error) {
	spec := v29Spec
	if version == V40 {
		spec = v40Spec
	}
	blocks, err := parseEnvelope(buf, spec)
	if err != nil {
		return nil, err
	}
	e := envelope{spec: spec, blocks: blocks}
	if version == V40 {
		return &CmV40{e}, nil
	}
	return &CmV29{e}, nil
}

// WriteDmData serializes d's current block set as a composer metadata
// envelope.
func WriteDmData(d DmData) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	c := bits.NewWriter()
	writeEnvelope(c, d.Blocks())
	return c.Bytes(), nil
}

func parseEnvelope(buf []byte, spec envelopeSpec) ([]ExtMetadataBlock, error) {
	c := bits.NewReader(buf)

	numBlocks, err := c.GetUE()
	if err != nil {
		return nil, err
	}

	for !c.IsAligned() {
		set, err := c.GetBit()
		if err != nil {
			return nil, err
		}
		if set {
			return nil, ErrAlignmentNonZero
		}
	}

	blocks := make([]ExtMetadataBlock, 0, numBlocks)
	for i := uint64(0); i < numBlocks; i++ {
		lengthBytes, err := c.GetUE()
		if err != nil {
			return nil, err
		}
		level, err := c.GetN(8)
		if err != nil {
			return nil, err
		}
		if !spec.allowedLevels[uint8(level)] {
			return nil, errors.Wrapf(ErrBlockLevelNotAllowed, "%s: level %d", spec.name, level)
		}

		start := c.Pos()
		b, err := parseBlock(uint8(level), lengthBytes, c)
		if err != nil {
			return nil, errors.Wrapf(err, "block %d (level %d)", i, level)
		}

		requiredBits, ok := legalLength(b, lengthBytes)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidBlockLength, "level %d: length_bytes %d", level, lengthBytes)
		}
		consumed := uint64(c.Pos() - start)
		if consumed != requiredBits {
			return nil, errors.Wrapf(ErrInvalidBlockLength, "level %d: consumed %d bits, expected %d", level, consumed, requiredBits)
		}

		paddingBits := lengthBytes*8 - requiredBits
		for j := uint64(0); j < paddingBits; j++ {
			set, err := c.GetBit()
			if err != nil {
				return nil, err
			}
			if set {
				return nil, ErrAlignmentNonZero
			}
		}

		blocks = append(blocks, b)
	}

	sortBlocks(blocks)
	return blocks, nil
}

func writeEnvelope(c *bits.BitCursor, blocks []ExtMetadataBlock) {
	c.WriteUE(uint64(len(blocks)))
	for !c.IsAligned() {
		c.WriteBit(false)
	}

	for _, b := range blocks {
		lengthBytes := b.BytesSize()
		requiredBits := b.RequiredBits()

		c.WriteUE(lengthBytes)
		c.WriteN(uint64(b.Level()), 8)
		b.Write(c)

		paddingBits := lengthBytes*8 - requiredBits
		for j := uint64(0); j < paddingBits; j++ {
			c.WriteBit(false)
		}
	}
}
