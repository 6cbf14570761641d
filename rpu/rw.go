/*
DESCRIPTION
  rw.go provides fieldReader, a small helper that reads fixed-width
  fields from a bits.BitCursor while latching the first error
  encountered, so a sequence of field reads can be checked once at the
  end rather than after every call.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package rpu

import "github.com/ausocean/dovi-rpu/bits"

// fieldReader reads fixed-width fields from a bits.BitCursor, latching the
// first error encountered.
type fieldReader struct {
	c *bits.BitCursor
	e error
}

func newFieldReader(c *bits.BitCursor) *fieldReader {
	return &fieldReader{c: c}
}

// n reads width bits and returns them as a uint64. Once an error has been
// latched, further calls are no-ops that return 0.
func (r *fieldReader) n(width int) uint64 {
	if r.e != nil {
		return 0
	}
	v, err := r.c.GetN(width)
	if err != nil {
		r.e = err
		return 0
	}
	return v
}

// bit reads a single bit as a bool.
func (r *fieldReader) bit() bool {
	return r.n(1) == 1
}

// signed reads width bits and interprets them as a two's-complement signed
// integer.
func (r *fieldReader) signed(width int) int32 {
	v := r.n(width)
	return signExtend(v, width)
}

// err returns the first error encountered, or nil.
func (r *fieldReader) err() error {
	return r.e
}

// signExtend interprets the low width bits of v as a two's-complement
// signed integer.
func signExtend(v uint64, width int) int32 {
	shift := 64 - uint(width)
	return int32(int64(v<<shift) >> shift)
}

// encodeSigned truncates a signed integer to its low width bits for
// writing, two's-complement.
func encodeSigned(v int32, width int) uint64 {
	mask := uint64(1)<<uint(width) - 1
	return uint64(v) & mask
}
