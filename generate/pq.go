/*
DESCRIPTION
  pq.go implements the SMPTE ST 2084 (PQ) transfer function, used to
  derive a source mastering display's PQ code values from its luminance
  range, and vice versa.

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

import "math"

// ST 2084 constants.
const (
	pqM1 = 2610.0 / 16384.0
	pqM2 = 2523.0 / 4096.0 * 128.0
	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 4096.0 * 32.0
	pqC3 = 2392.0 / 4096.0 * 32.0

	maxPQLuminance = 10000.0 // nits
	maxPQCodeValue = 4095
)

// luminanceToPQ converts an absolute luminance in nits to a 12-bit PQ
// code value via the ST 2084 inverse EOTF, clamped to [0, 4095].
func luminanceToPQ(nits float64) uint16 {
	if nits <= 0 {
		return 0
	}
	yp := math.Pow(nits/maxPQLuminance, pqM1)
	v := math.Pow((pqC1+pqC2*yp)/(1+pqC3*yp), pqM2)
	code := math.Round(v * maxPQCodeValue)
	if code < 0 {
		return 0
	}
	if code > maxPQCodeValue {
		return maxPQCodeValue
	}
	return uint16(code)
}

// pqToLuminance is the ST 2084 forward EOTF: it converts a 12-bit PQ
// code value back to absolute luminance in nits.
func pqToLuminance(code uint16) float64 {
	v := float64(code) / maxPQCodeValue
	vp := math.Pow(v, 1/pqM2)
	num := vp - pqC1
	if num < 0 {
		num = 0
	}
	yp := num / (pqC2 - pqC3*vp)
	if yp < 0 {
		yp = 0
	}
	return math.Pow(yp, 1/pqM1) * maxPQLuminance
}
