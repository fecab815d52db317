//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package twofish

import (
	"encoding/binary"
	"unsafe"
)

const (
	// MaxScheduleBytes is the size budget of the key schedule shared
	// with all language bindings. Bindings allocate this many bytes
	// for an opaque schedule.
	MaxScheduleBytes = 4256

	// ScheduleSize is the size of the serialized key schedule.
	ScheduleSize = (NumSBoxes*SBoxEntries + NumRoundKeys) * 4
)

// Schedule holds the Twofish key schedule: the key-dependent
// substitution tables and the round subkeys. The field order matches
// the C Twofish_key structure.
type Schedule struct {
	s [NumSBoxes][SBoxEntries]uint32
	k [NumRoundKeys]uint32
}

// Compile-time checks. A negative array length fails the build if the
// in-memory or the serialized schedule ever exceeds MaxScheduleBytes
// on the target architecture.
var (
	_ [MaxScheduleBytes - unsafe.Sizeof(Schedule{})]struct{}
	_ [MaxScheduleBytes - ScheduleSize]struct{}
)

// RoundKey returns the round subkey i, 0 <= i < NumRoundKeys.
func (s *Schedule) RoundKey(i int) uint32 {
	return s.k[i]
}

// SBox returns the entry x of the substitution table i, 0 <= i <
// NumSBoxes.
func (s *Schedule) SBox(i int, x byte) uint32 {
	return s.s[i][x]
}

// Equal tests if the schedules are equal.
func (s *Schedule) Equal(o *Schedule) bool {
	return *s == *o
}

// Clear overwrites the schedule with zeros.
func (s *Schedule) Clear() {
	*s = Schedule{}
}

// Bytes returns the serialized schedule. The result is a copy and
// modifying it does not affect the schedule.
func (s *Schedule) Bytes() [ScheduleSize]byte {
	var result [ScheduleSize]byte
	s.put(result[:])
	return result
}

// AppendBinary implements the encoding.BinaryAppender interface.
func (s *Schedule) AppendBinary(b []byte) ([]byte, error) {
	ofs := len(b)
	b = append(b, make([]byte, ScheduleSize)...)
	s.put(b[ofs:])
	return b, nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (s *Schedule) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, ScheduleSize))
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler
// interface. The data must be exactly ScheduleSize bytes long.
func (s *Schedule) UnmarshalBinary(data []byte) error {
	if len(data) != ScheduleSize {
		return ErrInvalidScheduleLength
	}
	var ofs int
	for i := range s.s {
		for j := range s.s[i] {
			s.s[i][j] = binary.LittleEndian.Uint32(data[ofs:])
			ofs += 4
		}
	}
	for i := range s.k {
		s.k[i] = binary.LittleEndian.Uint32(data[ofs:])
		ofs += 4
	}
	return nil
}

func (s *Schedule) put(b []byte) {
	var ofs int
	for i := range s.s {
		for _, v := range s.s[i] {
			binary.LittleEndian.PutUint32(b[ofs:], v)
			ofs += 4
		}
	}
	for _, v := range s.k {
		binary.LittleEndian.PutUint32(b[ofs:], v)
		ofs += 4
	}
}
