/*
DESCRIPTION
  st2094_10_test.go provides testing for the ST 2094-10 payload bridge.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package rpu

import "testing"

func TestSt2094_10RoundTripNoRefresh(t *testing.T) {
	p := &St2094_10Payload{AppIdentifier: 1, AppVersion: 1, MetadataRefreshFlag: false}
	buf, err := WriteSt2094_10(p)
	if err != nil {
		t.Fatalf("WriteSt2094_10: %v", err)
	}
	got, err := ParseSt2094_10(buf)
	if err != nil {
		t.Fatalf("ParseSt2094_10: %v", err)
	}
	if got.AppIdentifier != p.AppIdentifier || got.AppVersion != p.AppVersion || got.MetadataRefreshFlag {
		t.Errorf("got %#v, want %#v", got, p)
	}
	if got.Envelope != nil {
		t.Error("expected no inline envelope when MetadataRefreshFlag is false")
	}
}

func TestSt2094_10RoundTripWithRefresh(t *testing.T) {
	d := NewCmV29()
	if err := d.AddBlock(&Level6{MaxDisplayMasteringLuminance: 1000, MaxContentLightLevel: 1000}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	p := &St2094_10Payload{AppIdentifier: 1, AppVersion: 1, MetadataRefreshFlag: true, Envelope: d}

	buf, err := WriteSt2094_10(p)
	if err != nil {
		t.Fatalf("WriteSt2094_10: %v", err)
	}
	got, err := ParseSt2094_10(buf)
	if err != nil {
		t.Fatalf("ParseSt2094_10: %v", err)
	}
	if !got.MetadataRefreshFlag {
		t.Fatal("expected MetadataRefreshFlag true")
	}
	if got.Envelope == nil || len(got.Envelope.Blocks()) != 1 {
		t.Fatalf("got %#v, want one inline block", got.Envelope)
	}
}
