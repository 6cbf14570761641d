/*
DESCRIPTION
  bitcursor.go provides BitCursor, a forward bit reader/writer over a byte
  buffer with big-endian, MSB-first field semantics and unsigned
  Exp-Golomb (ue(v)) support.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides BitCursor, a bit-level reader and writer over an
// in-memory byte buffer.
package bits

import (
	"errors"
	"fmt"
	stdbits "math/bits"
)

// ErrTruncatedStream is returned when a read would consume more bits than
// remain in the underlying buffer.
var ErrTruncatedStream = errors.New("bits: truncated stream")

// BitCursor is a forward, big-endian, MSB-first bit reader and writer over
// a byte buffer. A cursor constructed with NewReader only reads; one
// constructed with NewWriter only writes. A BitCursor is not safe for
// concurrent use.
type BitCursor struct {
	buf []byte
	pos int // absolute bit offset from the start of buf
}

// NewReader returns a BitCursor that reads bits from buf, MSB-first,
// starting at the first bit of the first byte.
func NewReader(buf []byte) *BitCursor {
	return &BitCursor{buf: buf}
}

// NewWriter returns a BitCursor with an empty buffer, ready to have bits
// appended to it with WriteBit, WriteN and WriteUE.
func NewWriter() *BitCursor {
	return &BitCursor{}
}

// GetBit reads a single bit.
func (c *BitCursor) GetBit() (bool, error) {
	v, err := c.GetN(1)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// GetN reads n (1..=64) bits and returns them as the least-significant
// bits of a uint64, MSB-first.
func (c *BitCursor) GetN(n int) (uint64, error) {
	if n < 1 || n > 64 {
		panic(fmt.Sprintf("bits: GetN width %d out of range", n))
	}
	if c.pos+n > len(c.buf)*8 {
		return 0, ErrTruncatedStream
	}
	var v uint64
	for i := 0; i < n; i++ {
		byteIdx := c.pos >> 3
		shift := uint(7 - c.pos&7)
		v = v<<1 | uint64((c.buf[byteIdx]>>shift)&1)
		c.pos++
	}
	return v, nil
}

// GetUE reads an unsigned Exp-Golomb coded value: k leading zero bits
// followed by a set bit, followed by k more bits rem; the decoded value is
// 2^k - 1 + rem.
func (c *BitCursor) GetUE() (uint64, error) {
	k := 0
	for {
		b, err := c.GetBit()
		if err != nil {
			return 0, err
		}
		if b {
			break
		}
		k++
	}
	if k == 0 {
		return 0, nil
	}
	rem, err := c.GetN(k)
	if err != nil {
		return 0, err
	}
	return (uint64(1)<<uint(k))-1+rem, nil
}

// IsAligned reports whether the cursor sits at a byte boundary.
func (c *BitCursor) IsAligned() bool {
	return c.pos%8 == 0
}

// ExpectZeroBit reads one bit and reports an error if it is set. Callers
// that need a specific error kind (e.g. an alignment error distinct from
// ErrTruncatedStream) should read the bit with GetBit directly instead.
func (c *BitCursor) ExpectZeroBit() error {
	b, err := c.GetBit()
	if err != nil {
		return err
	}
	if b {
		return errors.New("bits: expected zero bit, got one")
	}
	return nil
}

// Pos returns the current bit offset from the start of the buffer.
func (c *BitCursor) Pos() int { return c.pos }

// Len returns the total number of bits in the underlying buffer.
func (c *BitCursor) Len() int { return len(c.buf) * 8 }

// WriteBit appends a single bit.
func (c *BitCursor) WriteBit(b bool) {
	byteIdx := c.pos >> 3
	for byteIdx >= len(c.buf) {
		c.buf = append(c.buf, 0)
	}
	if b {
		c.buf[byteIdx] |= 1 << uint(7-c.pos&7)
	}
	c.pos++
}

// WriteN appends the low n (1..=64) bits of v, MSB-first.
func (c *BitCursor) WriteN(v uint64, n int) {
	if n < 1 || n > 64 {
		panic(fmt.Sprintf("bits: WriteN width %d out of range", n))
	}
	for i := n - 1; i >= 0; i-- {
		c.WriteBit(v&(1<<uint(i)) != 0)
	}
}

// WriteUE appends v using the unsigned Exp-Golomb code.
func (c *BitCursor) WriteUE(v uint64) {
	x := v + 1
	nBits := stdbits.Len64(x)
	for i := 0; i < nBits-1; i++ {
		c.WriteBit(false)
	}
	c.WriteN(x, nBits)
}

// Bytes returns the accumulated buffer of a writer cursor.
func (c *BitCursor) Bytes() []byte { return c.buf }
