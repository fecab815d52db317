//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package twofish

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidKeyLength is returned, wrapped in a KeySizeError,
	// when the key is not 16, 24, or 32 bytes long.
	ErrInvalidKeyLength = errors.New("twofish: invalid key length")

	// ErrInvalidScheduleLength is returned when a serialized schedule
	// is not ScheduleSize bytes long.
	ErrInvalidScheduleLength = errors.New("twofish: invalid schedule length")
)

// KeySizeError reports an invalid key length.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "twofish: invalid key size " + strconv.Itoa(int(k))
}

// Is reports whether target is ErrInvalidKeyLength.
func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}
