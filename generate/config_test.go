/*
DESCRIPTION
  config_test.go provides testing for shot and frame-edit lookup.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package generate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShotForFrame(t *testing.T) {
	shots := []VideoShot{
		{StartFrame: 0, DurationFrames: 10},
		{StartFrame: 10, DurationFrames: 5},
	}

	tests := []struct {
		frame      int
		wantShot   int // index into shots, -1 for none
		wantOffset int
	}{
		{frame: 0, wantShot: 0, wantOffset: 0},
		{frame: 9, wantShot: 0, wantOffset: 9},
		{frame: 10, wantShot: 1, wantOffset: 0},
		{frame: 14, wantShot: 1, wantOffset: 4},
		{frame: 15, wantShot: -1},
	}

	for _, test := range tests {
		shot, offset := shotForFrame(shots, test.frame)
		if test.wantShot == -1 {
			if shot != nil {
				t.Errorf("frame %d: got a shot, want none", test.frame)
			}
			continue
		}
		if shot == nil {
			t.Fatalf("frame %d: got no shot, want shots[%d]", test.frame, test.wantShot)
		}
		if diff := cmp.Diff(&shots[test.wantShot], shot); diff != "" {
			t.Errorf("frame %d: shot mismatch (-want +got):\n%s", test.frame, diff)
		}
		if offset != test.wantOffset {
			t.Errorf("frame %d: got offset %d, want %d", test.frame, offset, test.wantOffset)
		}
	}
}

func TestFrameEditLookup(t *testing.T) {
	shot := VideoShot{
		FrameEdits: []ShotFrameEdit{
			{Offset: 3},
			{Offset: 7},
		},
	}
	if e := frameEdit(&shot, 3); e == nil || e.Offset != 3 {
		t.Errorf("got %#v, want offset 3 edit", e)
	}
	if e := frameEdit(&shot, 4); e != nil {
		t.Errorf("got %#v, want no edit at offset 4", e)
	}
}
