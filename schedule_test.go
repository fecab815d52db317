//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package twofish

import (
	"encoding"
	"encoding/binary"
	"errors"
	"testing"
	"unsafe"
)

var (
	_ encoding.BinaryMarshaler   = &Schedule{}
	_ encoding.BinaryUnmarshaler = &Schedule{}
	_ encoding.BinaryAppender    = &Schedule{}
)

func TestScheduleSize(t *testing.T) {
	if ScheduleSize != MaxScheduleBytes {
		t.Errorf("ScheduleSize=%d, MaxScheduleBytes=%d",
			ScheduleSize, MaxScheduleBytes)
	}
	if size := unsafe.Sizeof(Schedule{}); size > MaxScheduleBytes {
		t.Errorf("sizeof(Schedule)=%d > %d", size, MaxScheduleBytes)
	}
}

func TestScheduleClear(t *testing.T) {
	s, err := Derive([]byte("0123456789abcdef01234567"))
	if err != nil {
		t.Fatal(err)
	}
	s.Clear()
	data := s.Bytes()
	if len(data) != ScheduleSize {
		t.Fatalf("Bytes() returned %d bytes", len(data))
	}
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d is %02x after Clear", i, b)
		}
	}
}

func TestScheduleBytes(t *testing.T) {
	s, err := Derive(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	data := s.Bytes()

	// Tables first, round keys last, little-endian.
	if v := binary.LittleEndian.Uint32(data[0:]); v != s.SBox(0, 0) {
		t.Errorf("S0[0]: got %08x, expected %08x", v, s.SBox(0, 0))
	}
	ofs := 4 * (3*SBoxEntries + 255)
	if v := binary.LittleEndian.Uint32(data[ofs:]); v != s.SBox(3, 255) {
		t.Errorf("S3[255]: got %08x, expected %08x", v, s.SBox(3, 255))
	}
	ofs = 4 * NumSBoxes * SBoxEntries
	for i := 0; i < NumRoundKeys; i++ {
		v := binary.LittleEndian.Uint32(data[ofs+4*i:])
		if v != s.RoundKey(i) {
			t.Errorf("K[%d]: got %08x, expected %08x", i, v, s.RoundKey(i))
		}
	}

	// The projection is a copy.
	data[0] ^= 0xff
	if again := s.Bytes(); again[0] == data[0] {
		t.Errorf("Bytes() aliases the schedule")
	}
}

func TestScheduleBinary(t *testing.T) {
	s, err := Derive([]byte("a 32-byte key for binary testing"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := s.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if arr := s.Bytes(); string(arr[:]) != string(data) {
		t.Errorf("MarshalBinary and Bytes differ")
	}

	prefix := []byte("hdr")
	appended, err := s.AppendBinary(prefix)
	if err != nil {
		t.Fatal(err)
	}
	if string(appended[:3]) != "hdr" || string(appended[3:]) != string(data) {
		t.Errorf("AppendBinary produced unexpected data")
	}

	var parsed Schedule
	if err := parsed.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !parsed.Equal(s) {
		t.Errorf("parsed schedule differs")
	}

	for _, l := range []int{0, ScheduleSize - 1, ScheduleSize + 1} {
		err := parsed.UnmarshalBinary(make([]byte, l))
		if !errors.Is(err, ErrInvalidScheduleLength) {
			t.Errorf("UnmarshalBinary(%d): unexpected error %v", l, err)
		}
	}
	if !parsed.Equal(s) {
		t.Errorf("failed UnmarshalBinary modified the schedule")
	}
}
