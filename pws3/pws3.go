//
// pws3.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//
// Password Safe V3 database preamble:
//  - https://github.com/pwsafe/pwsafe/blob/master/docs/formatV3.txt

// Package pws3 implements the key handling of the Password Safe V3
// database format. It parses and creates the unencrypted preamble,
// verifies the password, and unwraps the record encryption key K and
// the HMAC key L with Twofish.
package pws3

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/markkurossi/twofish"
	"github.com/markkurossi/twofish/env"
)

const (
	// PreambleSize is the size of the encoded preamble in bytes.
	PreambleSize = 152

	// MinIterations is the minimum key stretching iteration count.
	MinIterations = 2048

	// SaltSize is the size of the password salt.
	SaltSize = sha256.Size

	// KeySize is the size of the keys K and L.
	KeySize = 32
)

// Tag is the file tag that starts the preamble.
var Tag = [4]byte{'P', 'W', 'S', '3'}

// Errors.
var (
	ErrInvalidTag            = errors.New("pws3: invalid database tag")
	ErrInvalidIterationCount = errors.New("pws3: iteration count is too low")
	ErrInvalidSalt           = errors.New("pws3: salt is too short")
	ErrWrongPassword         = errors.New("pws3: wrong password")
)

// Preamble defines the unencrypted beginning of a database file.
type Preamble struct {
	Salt       [SaltSize]byte
	Iterations uint32
	// PasswordHash is H(P'), the SHA-256 hash of the stretched
	// password.
	PasswordHash [sha256.Size]byte
	// B1..B4 contain K and L encrypted with the stretched password.
	B  [4][twofish.BlockSize]byte
	IV [twofish.BlockSize]byte
}

// Keys contain the unwrapped database keys.
type Keys struct {
	// K is the record encryption cipher.
	K *twofish.Cipher
	// L is the HMAC key.
	L  [KeySize]byte
	IV [twofish.BlockSize]byte
}

// NewHMAC returns a HMAC-SHA256 instance keyed with L.
func (keys *Keys) NewHMAC() hash.Hash {
	return hmac.New(sha256.New, keys.L[:])
}

// Clear overwrites all key material with zeros.
func (keys *Keys) Clear() {
	if keys.K != nil {
		keys.K.Clear()
	}
	keys.L = [KeySize]byte{}
	keys.IV = [twofish.BlockSize]byte{}
}

// Stretch computes the stretched password P' from the password and
// salt: X = SHA256(password|salt), followed by iter rounds of
// X = SHA256(X).
func Stretch(salt, password []byte, iter uint32) ([sha256.Size]byte, error) {
	var x [sha256.Size]byte

	if len(salt) < SaltSize {
		return x, ErrInvalidSalt
	}
	if iter < MinIterations {
		return x, ErrInvalidIterationCount
	}
	h := sha256.New()
	h.Write(password)
	h.Write(salt)
	h.Sum(x[:0])

	for i := uint32(0); i < iter; i++ {
		x = sha256.Sum256(x[:])
	}
	return x, nil
}

// ParsePreamble reads the preamble from r.
func ParsePreamble(r io.Reader) (*Preamble, error) {
	var buf [PreambleSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("pws3: failed to read preamble: %w", err)
	}
	p := new(Preamble)
	if err := p.UnmarshalBinary(buf[:]); err != nil {
		return nil, err
	}
	return p, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler
// interface.
func (p *Preamble) UnmarshalBinary(data []byte) error {
	if len(data) < PreambleSize {
		return fmt.Errorf("pws3: preamble too short: %d < %d",
			len(data), PreambleSize)
	}
	if !bytes.Equal(data[:len(Tag)], Tag[:]) {
		return ErrInvalidTag
	}
	ofs := len(Tag)

	iter := binary.LittleEndian.Uint32(data[ofs+SaltSize:])
	if iter < MinIterations {
		return ErrInvalidIterationCount
	}

	ofs += copy(p.Salt[:], data[ofs:])
	p.Iterations = iter
	ofs += 4
	ofs += copy(p.PasswordHash[:], data[ofs:])
	for i := range p.B {
		ofs += copy(p.B[i][:], data[ofs:])
	}
	copy(p.IV[:], data[ofs:])

	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (p *Preamble) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, PreambleSize)
	data = append(data, Tag[:]...)
	data = append(data, p.Salt[:]...)
	data = binary.LittleEndian.AppendUint32(data, p.Iterations)
	data = append(data, p.PasswordHash[:]...)
	for i := range p.B {
		data = append(data, p.B[i][:]...)
	}
	data = append(data, p.IV[:]...)
	return data, nil
}

// Unlock verifies the password and unwraps the database keys.
func (p *Preamble) Unlock(password []byte) (*Keys, error) {
	stretched, err := Stretch(p.Salt[:], password, p.Iterations)
	if err != nil {
		return nil, err
	}
	defer clear(stretched[:])

	hp := sha256.Sum256(stretched[:])
	if subtle.ConstantTimeCompare(hp[:], p.PasswordHash[:]) != 1 {
		return nil, ErrWrongPassword
	}

	unwrap, err := twofish.NewCipher(stretched[:])
	if err != nil {
		return nil, err
	}
	defer unwrap.Clear()

	var k [KeySize]byte
	defer clear(k[:])

	keys := &Keys{
		IV: p.IV,
	}
	unwrap.Decrypt(k[:twofish.BlockSize], p.B[0][:])
	unwrap.Decrypt(k[twofish.BlockSize:], p.B[1][:])
	unwrap.Decrypt(keys.L[:twofish.BlockSize], p.B[2][:])
	unwrap.Decrypt(keys.L[twofish.BlockSize:], p.B[3][:])

	keys.K, err = twofish.NewCipher(k[:])
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Open reads the preamble from r and unlocks it with the password.
func Open(r io.Reader, password []byte) (*Preamble, *Keys, error) {
	p, err := ParsePreamble(r)
	if err != nil {
		return nil, nil, err
	}
	keys, err := p.Unlock(password)
	if err != nil {
		return nil, nil, err
	}
	return p, keys, nil
}

// NewPreamble creates a preamble for a new database. The salt, keys,
// and IV are generated from the configuration's random source.
func NewPreamble(config *env.Config, password []byte) (
	*Preamble, *Keys, error) {

	rand := config.GetRandom()

	p := &Preamble{
		Iterations: config.GetIterations(),
	}
	var k, l [KeySize]byte
	defer clear(k[:])
	defer clear(l[:])

	for _, buf := range [][]byte{p.Salt[:], k[:], l[:], p.IV[:]} {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, nil, fmt.Errorf("pws3: random source: %w", err)
		}
	}

	stretched, err := Stretch(p.Salt[:], password, p.Iterations)
	if err != nil {
		return nil, nil, err
	}
	defer clear(stretched[:])
	p.PasswordHash = sha256.Sum256(stretched[:])

	wrap, err := twofish.NewCipher(stretched[:])
	if err != nil {
		return nil, nil, err
	}
	defer wrap.Clear()

	wrap.Encrypt(p.B[0][:], k[:twofish.BlockSize])
	wrap.Encrypt(p.B[1][:], k[twofish.BlockSize:])
	wrap.Encrypt(p.B[2][:], l[:twofish.BlockSize])
	wrap.Encrypt(p.B[3][:], l[twofish.BlockSize:])

	keys := &Keys{
		L:  l,
		IV: p.IV,
	}
	keys.K, err = twofish.NewCipher(k[:])
	if err != nil {
		return nil, nil, err
	}
	return p, keys, nil
}
