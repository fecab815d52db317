//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package twofish

import (
	"encoding/binary"
	"math/bits"
)

// BlockSize is the Twofish block size in bytes.
const BlockSize = 16

// Cipher implements the crypto/cipher.Block interface with a Twofish
// key schedule.
type Cipher struct {
	sched Schedule
}

// NewCipher creates a new cipher for the key. The key must be 16, 24,
// or 32 bytes long.
func NewCipher(key []byte) (*Cipher, error) {
	c := new(Cipher)
	if err := c.sched.Derive(key); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCipherFromSchedule creates a new cipher from a precomputed key
// schedule. The schedule is copied.
func NewCipherFromSchedule(s *Schedule) *Cipher {
	return &Cipher{
		sched: *s,
	}
}

// Schedule returns the cipher's key schedule.
func (c *Cipher) Schedule() *Schedule {
	return &c.sched
}

// Clear overwrites the cipher's key schedule with zeros.
func (c *Cipher) Clear() {
	c.sched.Clear()
}

// BlockSize returns the cipher block size.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

func (s *Schedule) g(x uint32) uint32 {
	return s.s[0][byte(x)] ^ s.s[1][byte(x>>8)] ^ s.s[2][byte(x>>16)] ^
		s.s[3][byte(x>>24)]
}

// Encrypt encrypts the first block of src into dst. Dst and src may
// overlap.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("twofish: input not full block")
	}
	if len(dst) < BlockSize {
		panic("twofish: output not full block")
	}
	s := &c.sched

	a := binary.LittleEndian.Uint32(src[0:]) ^ s.k[0]
	b := binary.LittleEndian.Uint32(src[4:]) ^ s.k[1]
	cc := binary.LittleEndian.Uint32(src[8:]) ^ s.k[2]
	d := binary.LittleEndian.Uint32(src[12:]) ^ s.k[3]

	for r := 0; r < 8; r++ {
		k := s.k[8+4*r : 12+4*r]

		t2 := s.g(bits.RotateLeft32(b, 8))
		t1 := s.g(a) + t2
		cc = bits.RotateLeft32(cc^(t1+k[0]), -1)
		d = bits.RotateLeft32(d, 1) ^ (t2 + t1 + k[1])

		t2 = s.g(bits.RotateLeft32(d, 8))
		t1 = s.g(cc) + t2
		a = bits.RotateLeft32(a^(t1+k[2]), -1)
		b = bits.RotateLeft32(b, 1) ^ (t2 + t1 + k[3])
	}

	// The last round does not swap the halves.
	binary.LittleEndian.PutUint32(dst[0:], cc^s.k[4])
	binary.LittleEndian.PutUint32(dst[4:], d^s.k[5])
	binary.LittleEndian.PutUint32(dst[8:], a^s.k[6])
	binary.LittleEndian.PutUint32(dst[12:], b^s.k[7])
}

// Decrypt decrypts the first block of src into dst. Dst and src may
// overlap.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("twofish: input not full block")
	}
	if len(dst) < BlockSize {
		panic("twofish: output not full block")
	}
	s := &c.sched

	cc := binary.LittleEndian.Uint32(src[0:]) ^ s.k[4]
	d := binary.LittleEndian.Uint32(src[4:]) ^ s.k[5]
	a := binary.LittleEndian.Uint32(src[8:]) ^ s.k[6]
	b := binary.LittleEndian.Uint32(src[12:]) ^ s.k[7]

	for r := 7; r >= 0; r-- {
		k := s.k[8+4*r : 12+4*r]

		t2 := s.g(bits.RotateLeft32(d, 8))
		t1 := s.g(cc) + t2
		a = bits.RotateLeft32(a, 1) ^ (t1 + k[2])
		b = bits.RotateLeft32(b^(t2+t1+k[3]), -1)

		t2 = s.g(bits.RotateLeft32(b, 8))
		t1 = s.g(a) + t2
		cc = bits.RotateLeft32(cc, 1) ^ (t1 + k[0])
		d = bits.RotateLeft32(d^(t2+t1+k[1]), -1)
	}

	binary.LittleEndian.PutUint32(dst[0:], a^s.k[0])
	binary.LittleEndian.PutUint32(dst[4:], b^s.k[1])
	binary.LittleEndian.PutUint32(dst[8:], cc^s.k[2])
	binary.LittleEndian.PutUint32(dst[12:], d^s.k[3])
}
