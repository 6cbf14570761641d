/*
DESCRIPTION
  primaries.go provides the predefined colorspace and display primaries
  tables referenced by L9 (source_primary_index) and L10
  (target_primary_index), plus the set of preset target display indices
  that L10 must reject.

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

// predefinedColorspacePrimaries holds the (Rx, Ry, Gx, Gy, Bx, By, Wx, Wy)
// chromaticity coordinate sets addressable by L9's source_primary_index
// when it is below the custom-primaries threshold.
var predefinedColorspacePrimaries = [][8]float64{
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 0: DCI-P3 D65
	{0.640, 0.330, 0.300, 0.600, 0.150, 0.060, 0.3127, 0.3290}, // 1: BT.709
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 2: DCI-P3
	{0.708, 0.292, 0.170, 0.797, 0.131, 0.046, 0.3127, 0.3290}, // 3: BT.2020
	{0.630, 0.340, 0.310, 0.595, 0.155, 0.070, 0.3127, 0.3290}, // 4: BT.601 NTSC
	{0.640, 0.330, 0.290, 0.600, 0.150, 0.060, 0.3127, 0.3290}, // 5: BT.601 PAL
	{0.7347, 0.2653, 0.0, 1.0, 0.0001, -0.077, 0.32168, 0.33767}, // 6: ACES
	{0.73, 0.28, 0.14, 0.855, 0.10, -0.05, 0.3127, 0.3290},     // 7: S-Gamut
	{0.76, 0.29, 0.225, 0.800, 0.089, -0.087, 0.3127, 0.3290},  // 8: S-Gamut3.Cine
}

// predefinedRealDevicePrimaries holds the chromaticity coordinate sets
// addressable by L10's target_primary_index for known reference display
// configurations.
var predefinedRealDevicePrimaries = [][8]float64{
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 0
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 1
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 2
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 3
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 4
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 5
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 6
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 7
	{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290}, // 8
	{0.708, 0.292, 0.170, 0.797, 0.131, 0.046, 0.3127, 0.3290}, // 9: BT.2020 reference monitor
}

// presetTargetDisplays are target_display_index values reserved for
// well-known reference display configurations. L10 blocks must not
// declare one of these, since a preset display's primaries/PQ range are
// implied by the index rather than carried on the wire.
var presetTargetDisplays = map[uint16]bool{
	1:  true,
	16: true,
	18: true,
	21: true,
	27: true,
	28: true,
	37: true,
	38: true,
	42: true,
	48: true,
	49: true,
}
