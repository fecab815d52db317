//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build cgo

package capi

/*
#include <stdint.h>

#define TWOFISH_MAX_SCHEDULE_BYTES 4256

#define TWOFISH_OK               0
#define TWOFISH_INVALID_KEY_LEN  (-1)
#define TWOFISH_BUFFER_TOO_SMALL (-2)

typedef struct {
	uint32_t s[4][256];
	uint32_t k[40];
} twofish_schedule;

_Static_assert(sizeof(twofish_schedule) <= TWOFISH_MAX_SCHEDULE_BYTES,
	"twofish_schedule size is broken on this platform");
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/markkurossi/twofish"
)

// Result codes.
const (
	OK             = C.TWOFISH_OK
	InvalidKeyLen  = C.TWOFISH_INVALID_KEY_LEN
	BufferTooSmall = C.TWOFISH_BUFFER_TOO_SMALL
)

// The C and Go representations must agree on the size budget and both
// must fit in it.
var (
	_ [twofish.MaxScheduleBytes - C.TWOFISH_MAX_SCHEDULE_BYTES]struct{}
	_ [C.TWOFISH_MAX_SCHEDULE_BYTES - twofish.MaxScheduleBytes]struct{}
	_ [twofish.MaxScheduleBytes - unsafe.Sizeof(C.twofish_schedule{})]struct{}
)

//export twofish_schedule_size
func twofish_schedule_size() C.int {
	return C.int(twofish.ScheduleSize)
}

//export twofish_derive
func twofish_derive(key *C.uchar, keylen C.int, out *C.uchar, outlen C.int) C.int {
	return C.int(derive(cBytes(key, keylen), cBytes(out, outlen)))
}

//export twofish_clear
func twofish_clear(out *C.uchar, outlen C.int) C.int {
	return C.int(clearSchedule(cBytes(out, outlen)))
}

func cBytes(ptr *C.uchar, length C.int) []byte {
	if ptr == nil || length <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(length))
}

// derive derives the schedule for key into out. Out is not modified
// on error.
func derive(key, out []byte) int {
	if len(out) < twofish.ScheduleSize {
		return BufferTooSmall
	}
	var sched twofish.Schedule
	defer sched.Clear()

	if err := sched.Derive(key); err != nil {
		if errors.Is(err, twofish.ErrInvalidKeyLength) {
			return InvalidKeyLen
		}
		panic(err)
	}
	data := sched.Bytes()
	copy(out, data[:])
	clear(data[:])

	return OK
}

// clearSchedule zeroes the schedule in out.
func clearSchedule(out []byte) int {
	if len(out) < twofish.ScheduleSize {
		return BufferTooSmall
	}
	clear(out[:twofish.ScheduleSize])
	return OK
}
