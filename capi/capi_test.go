//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build cgo

package capi

import (
	"bytes"
	"testing"

	"github.com/markkurossi/twofish"
)

func TestDerive(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	out := make([]byte, twofish.MaxScheduleBytes)

	if ret := derive(key, out); ret != OK {
		t.Fatalf("derive: %d", ret)
	}
	sched, err := twofish.Derive(key)
	if err != nil {
		t.Fatal(err)
	}
	expected := sched.Bytes()
	if !bytes.Equal(out, expected[:]) {
		t.Errorf("exported schedule differs from Schedule.Bytes")
	}

	var parsed twofish.Schedule
	if err := parsed.UnmarshalBinary(out); err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(sched) {
		t.Errorf("exported schedule does not parse back")
	}

	if ret := clearSchedule(out); ret != OK {
		t.Fatalf("clear: %d", ret)
	}
	if !bytes.Equal(out, make([]byte, len(out))) {
		t.Errorf("clear did not zero the schedule")
	}
}

func TestDeriveErrors(t *testing.T) {
	out := bytes.Repeat([]byte{0xaa}, twofish.MaxScheduleBytes)
	orig := bytes.Clone(out)

	for _, l := range []int{0, 15, 20, 33} {
		if ret := derive(make([]byte, l), out); ret != InvalidKeyLen {
			t.Errorf("key length %d: got %d", l, ret)
		}
	}
	if ret := derive(make([]byte, 16), out[:twofish.ScheduleSize-1]); ret != BufferTooSmall {
		t.Errorf("short buffer: got %d", ret)
	}
	if ret := clearSchedule(out[:10]); ret != BufferTooSmall {
		t.Errorf("clear short buffer: got %d", ret)
	}
	if !bytes.Equal(out, orig) {
		t.Errorf("failed calls modified the buffer")
	}
}

func TestScheduleSize(t *testing.T) {
	if int(twofish_schedule_size()) != twofish.ScheduleSize {
		t.Errorf("twofish_schedule_size()=%d", twofish_schedule_size())
	}
}
