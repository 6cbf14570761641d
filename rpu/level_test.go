/*
DESCRIPTION
  level_test.go provides testing for the fixed- and variable-length
  extension metadata block codecs.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package rpu

import (
	"reflect"
	"testing"

	"github.com/ausocean/dovi-rpu/bits"
)

func roundTrip(t *testing.T, want ExtMetadataBlock, parse func(c *bits.BitCursor) (ExtMetadataBlock, error)) ExtMetadataBlock {
	t.Helper()
	w := bits.NewWriter()
	want.Write(w)
	if uint64(w.Pos()) != want.RequiredBits() {
		t.Fatalf("wrote %d bits, want %d", w.Pos(), want.RequiredBits())
	}
	r := bits.NewReader(w.Bytes())
	got, err := parse(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got, want)
	}
	return got
}

func TestLevel1RoundTrip(t *testing.T) {
	b := &Level1{MinPQ: 0, MaxPQ: 3079, AvgPQ: 2100}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	roundTrip(t, b, parseLevel1)
}

func TestLevel1ValidateOrdering(t *testing.T) {
	b := &Level1{MinPQ: 100, MaxPQ: 50, AvgPQ: 75}
	if err := b.Validate(); err == nil {
		t.Error("expected error for min_pq > max_pq")
	}
}

func TestLevel2RoundTrip(t *testing.T) {
	b := &Level2{
		TargetMaxPQ:        3079,
		TrimSlope:          2048,
		TrimOffset:         2048,
		TrimPower:          2048,
		TrimChromaWeight:   2048,
		TrimSaturationGain: 2048,
		MsWeight:           -1,
		TargetDisplayIndex: 1,
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	w := bits.NewWriter()
	b.Write(w)
	if uint64(w.Pos()) != b.RequiredBits() {
		t.Fatalf("wrote %d bits, want %d", w.Pos(), b.RequiredBits())
	}
	got, err := parseLevel2(bits.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := *b
	want.TargetDisplayIndex = 0
	if !reflect.DeepEqual(got, &want) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got, &want)
	}
	if got.(*Level2).TargetDisplayIndex != 0 {
		t.Errorf("expected in-memory-only TargetDisplayIndex to reset to 0 on parse, got %d", got.(*Level2).TargetDisplayIndex)
	}
}

func TestLevel3RoundTrip(t *testing.T) {
	b := &Level3{MinPQOffset: -16, MaxPQOffset: 15, AvgPQOffset: 0}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	roundTrip(t, b, parseLevel3)
}

func TestLevel5ZeroOffsetsExactBytes(t *testing.T) {
	b := &Level5{}
	w := bits.NewWriter()
	b.Write(w)
	want := []byte{0, 0, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(w.Bytes(), want) {
		t.Errorf("got %#v, want %#v", w.Bytes(), want)
	}
	if !b.zeroOffsets() {
		t.Error("expected zeroOffsets true")
	}
}

func TestLevel6RoundTrip(t *testing.T) {
	b := &Level6{
		MaxDisplayMasteringLuminance: 1000,
		MinDisplayMasteringLuminance: 1,
		MaxContentLightLevel:         1000,
		MaxFrameAverageLightLevel:    400,
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	roundTrip(t, b, parseLevel6)
}

func TestLevel8MinimumForm(t *testing.T) {
	b := &Level8{
		TargetDisplayIndex: 0,
		TrimSlope:          2048,
		TrimOffset:         2048,
		TrimPower:          2048,
		TrimChromaWeight:   2048,
		TrimSaturationGain: 2048,
		MsWeight:           2048,
	}
	if b.BytesSize() != 10 {
		t.Errorf("got byte size %d, want 10", b.BytesSize())
	}
	w := bits.NewWriter()
	b.Write(w)
	got, err := parseLevel8(10, bits.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got, b)
	}
}

func TestLevel8FullForm(t *testing.T) {
	contrast := uint16(2048)
	clip := int16(0)
	sat := [6]uint8{1, 2, 3, 4, 5, 6}
	hue := [6]uint8{6, 5, 4, 3, 2, 1}
	b := &Level8{
		TargetDisplayIndex: 2,
		TrimSlope:          2048,
		TrimOffset:         2048,
		TrimPower:          2048,
		TrimChromaWeight:   2048,
		TrimSaturationGain: 2048,
		MsWeight:           2048,
		TargetMidContrast:  &contrast,
		ClipTrim:           &clip,
		SaturationVectors:  &sat,
		HueVectors:         &hue,
	}
	if b.BytesSize() != 25 {
		t.Fatalf("got byte size %d, want 25", b.BytesSize())
	}
	w := bits.NewWriter()
	b.Write(w)
	got, err := parseLevel8(25, bits.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got, b)
	}
}

func TestLevel8ClipTrimGuardUsesClipTrimField(t *testing.T) {
	contrast := uint16(4096) // out of range, but must not be the field the guard checks
	b := &Level8{
		TargetDisplayIndex: 0,
		TargetMidContrast:  &contrast,
	}
	err := b.Validate()
	if err == nil {
		t.Fatal("expected validation error for out-of-range target_mid_contrast")
	}
	if err.Error() == "" {
		t.Fatal("expected a descriptive error")
	}
}

func TestLevel9PredefinedAndRaw(t *testing.T) {
	b := &Level9{SourcePrimaryIndex: 1}
	if b.BytesSize() != 1 {
		t.Fatalf("got byte size %d, want 1", b.BytesSize())
	}
	w := bits.NewWriter()
	b.Write(w)
	got, err := parseLevel9(1, bits.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got, b)
	}

	raw := [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}
	b2 := &Level9{SourcePrimaryIndex: 255, RawPrimaries: &raw}
	w2 := bits.NewWriter()
	b2.Write(w2)
	got2, err := parseLevel9(17, bits.NewReader(w2.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got2, b2) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got2, b2)
	}
}

func TestLevel10RejectsPresetDisplay(t *testing.T) {
	b := &Level10{TargetDisplayIndex: 1, TargetMaxPQ: 3079, TargetPrimaryIndex: 2}
	if err := b.Validate(); err == nil {
		t.Error("expected error for preset target_display_index 1")
	}
}

func TestLevel10RoundTrip(t *testing.T) {
	b := &Level10{
		TargetDisplayIndex: 3,
		TargetMaxPQ:        3079,
		TargetMinPQ:        0,
		TargetPrimaryIndex: 2,
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	roundTrip(t, b, func(c *bits.BitCursor) (ExtMetadataBlock, error) { return parseLevel10(5, c) })
}

func TestLevel11RoundTrip(t *testing.T) {
	b := &Level11{
		ContentType:         2,
		Whitepoint:          0,
		ReferenceModeFlag:   true,
		Sharpness:           1,
		NoiseReduction:      2,
		MpegNoiseReduction:  3,
		FrameRateConversion: 9,
		Brightness:          1,
		Color:               5,
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	roundTrip(t, b, parseLevel11)
}

func TestLevel254RoundTrip(t *testing.T) {
	b := &Level254{DmMode: 0, DmVersionIndex: 2}
	roundTrip(t, b, parseLevel254)
}

func TestReservedRoundTrip(t *testing.T) {
	b := &Reserved{LevelNum: 200, Payload: []byte{0xde, 0xad, 0xbe, 0xef}}
	w := bits.NewWriter()
	b.Write(w)
	got, err := parseReserved(200, 4, bits.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Errorf("round trip mismatch\ngot:  %#v\nwant: %#v", got, b)
	}
}
