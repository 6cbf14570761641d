/*
DESCRIPTION
  dmdata_test.go provides testing for the CM v2.9 / v4.0 composer
  metadata envelope parse, write and block-set operations.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package rpu

import (
	"errors"
	"reflect"
	"testing"
)

func TestEnvelopeRoundTripV29(t *testing.T) {
	d := NewCmV29()
	if err := d.AddBlock(&Level6{
		MaxDisplayMasteringLuminance: 1000,
		MinDisplayMasteringLuminance: 1,
		MaxContentLightLevel:         1000,
		MaxFrameAverageLightLevel:    400,
	}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	if err := d.AddBlock(&Level5{}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}

	buf, err := WriteDmData(d)
	if err != nil {
		t.Fatalf("WriteDmData: %v", err)
	}

	got, err := ParseDmData(buf, V29)
	if err != nil {
		t.Fatalf("ParseDmData: %v", err)
	}
	if !reflect.DeepEqual(got.Blocks(), d.Blocks()) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got.Blocks(), d.Blocks())
	}
}

func TestEnvelopeOrdering(t *testing.T) {
	d := NewCmV40()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("AddBlock: %v", err)
		}
	}
	must(d.AddBlock(&Level8{TargetDisplayIndex: 2, TrimSlope: 1, TrimOffset: 1, TrimPower: 1, TrimChromaWeight: 1, TrimSaturationGain: 1}))
	must(d.AddBlock(&Level1{MinPQ: 0, MaxPQ: 10, AvgPQ: 5}))
	must(d.AddBlock(&Level8{TargetDisplayIndex: 0, TrimSlope: 1, TrimOffset: 1, TrimPower: 1, TrimChromaWeight: 1, TrimSaturationGain: 1}))

	blocks := d.Blocks()
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if blocks[0].Level() != L1 {
		t.Errorf("blocks[0] level = %d, want %d", blocks[0].Level(), L1)
	}
	if blocks[1].Level() != L8 || blocks[1].(*Level8).TargetDisplayIndex != 0 {
		t.Errorf("blocks[1] = %#v, want L8 target_display_index 0", blocks[1])
	}
	if blocks[2].Level() != L8 || blocks[2].(*Level8).TargetDisplayIndex != 2 {
		t.Errorf("blocks[2] = %#v, want L8 target_display_index 2", blocks[2])
	}
}

func TestEnvelopeRejectsDuplicateSingleInstanceLevel(t *testing.T) {
	d := NewCmV29()
	if err := d.AddBlock(&Level6{MaxDisplayMasteringLuminance: 1000}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	err := d.AddBlock(&Level6{MaxDisplayMasteringLuminance: 2000})
	if !errors.Is(err, ErrDuplicateBlock) {
		t.Errorf("got %v, want ErrDuplicateBlock", err)
	}
}

func TestEnvelopeRejectsDuplicateL8SameTargetDisplay(t *testing.T) {
	d := NewCmV40()
	if err := d.AddBlock(&Level8{TargetDisplayIndex: 0}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	err := d.AddBlock(&Level8{TargetDisplayIndex: 0})
	if !errors.Is(err, ErrDuplicateBlock) {
		t.Errorf("got %v, want ErrDuplicateBlock", err)
	}
}

func TestEnvelopeAllowsDistinctL8TargetDisplays(t *testing.T) {
	d := NewCmV40()
	if err := d.AddBlock(&Level8{TargetDisplayIndex: 0}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	if err := d.AddBlock(&Level8{TargetDisplayIndex: 1}); err != nil {
		t.Errorf("unexpected error for distinct target display indices: %v", err)
	}
}

func TestEnvelopeRejectsLevelNotAllowedForVersion(t *testing.T) {
	d := NewCmV29()
	err := d.AddBlock(&Level8{TargetDisplayIndex: 0})
	if !errors.Is(err, ErrBlockLevelNotAllowed) {
		t.Errorf("got %v, want ErrBlockLevelNotAllowed", err)
	}
}

func TestEnvelopeRemoveLevel(t *testing.T) {
	d := NewCmV29()
	if err := d.AddBlock(&Level6{MaxDisplayMasteringLuminance: 1000}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	if err := d.AddBlock(&Level5{}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	d.RemoveLevel(L6)
	if len(d.Blocks()) != 1 || d.Blocks()[0].Level() != L5 {
		t.Errorf("got %#v, want only the L5 block to remain", d.Blocks())
	}
}

func TestParseDmDataRejectsNonZeroPadding(t *testing.T) {
	d := NewCmV29()
	if err := d.AddBlock(&Level5{}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	buf, err := WriteDmData(d)
	if err != nil {
		t.Fatalf("WriteDmData: %v", err)
	}
	// The envelope is 79 bits long; its last 4 bits are the L5 block's
	// trailing padding. Bit 0x02 of the final byte is the last of them
	// (bit 0x01 lies past the envelope and is never read).
	buf[len(buf)-1] |= 0x02 // flip a trailing padding bit

	_, err = ParseDmData(buf, V29)
	if err == nil {
		t.Error("expected error for non-zero padding bit")
	}
}
