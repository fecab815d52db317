//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global configuration for the key schedule
// tools and the password safe preamble.
package env

import (
	"crypto/rand"
	"io"
)

// DefaultIterations is the default key stretching iteration count for
// new password safe preambles.
const DefaultIterations = 2048 << 2

// Config defines the global configuration. Config must not be
// modified after being passed to any module. It is safe for
// concurrent use by multiple modules as they do not modify it.
type Config struct {
	// Rand is the source of entropy for salts, keys, and IVs.
	Rand io.Reader

	// Iterations is the key stretching iteration count. Zero selects
	// DefaultIterations.
	Iterations uint32
}

// GetRandom returns the source of entropy for key generation.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetIterations returns the key stretching iteration count.
func (config *Config) GetIterations() uint32 {
	if config != nil && config.Iterations != 0 {
		return config.Iterations
	}
	return DefaultIterations
}
