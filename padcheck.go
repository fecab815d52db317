//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build twofish_padcheck

package twofish

import (
	"unsafe"
)

// paddedSchedule is a schedule representation that stores the key
// length next to the tables. It is larger than MaxScheduleBytes on
// every architecture and the size check below must break the build.
// The twofish_padcheck tag exists only to verify that it does.
type paddedSchedule struct {
	Schedule
	keyLen int
}

var _ [MaxScheduleBytes - unsafe.Sizeof(paddedSchedule{})]struct{}
