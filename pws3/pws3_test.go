//
// pws3_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package pws3

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/markkurossi/twofish"
	"github.com/markkurossi/twofish/env"
)

func testConfig() *env.Config {
	return &env.Config{
		Rand:       rand.NewChaCha8([32]byte{'p', 'w', 's', '3'}),
		Iterations: MinIterations,
	}
}

func newTestDB(t *testing.T, password string) ([]byte, *Keys) {
	t.Helper()
	p, keys, err := NewPreamble(testConfig(), []byte(password))
	if err != nil {
		t.Fatalf("NewPreamble: %v", err)
	}
	data, err := p.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != PreambleSize {
		t.Fatalf("preamble is %d bytes, expected %d", len(data), PreambleSize)
	}
	return data, keys
}

func TestStretch(t *testing.T) {
	salt := make([]byte, SaltSize)
	x, err := Stretch(salt, []byte("test"), MinIterations)
	if err != nil {
		t.Fatal(err)
	}

	expected := sha256.Sum256(append([]byte("test"), salt...))
	for i := 0; i < MinIterations; i++ {
		expected = sha256.Sum256(expected[:])
	}
	if x != expected {
		t.Errorf("Stretch=%x, expected %x", x, expected)
	}

	if _, err := Stretch(salt[:SaltSize-1], nil, MinIterations); !errors.Is(err, ErrInvalidSalt) {
		t.Errorf("short salt: unexpected error %v", err)
	}
	if _, err := Stretch(salt, nil, MinIterations-1); !errors.Is(err, ErrInvalidIterationCount) {
		t.Errorf("low iterations: unexpected error %v", err)
	}
}

func TestOpen(t *testing.T) {
	data, created := newTestDB(t, "test")

	p, keys, err := Open(bytes.NewReader(data), []byte("test"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.Iterations != MinIterations {
		t.Errorf("Iterations=%d", p.Iterations)
	}
	if keys.L != created.L {
		t.Errorf("L=%x, expected %x", keys.L, created.L)
	}
	if keys.IV != created.IV {
		t.Errorf("IV=%x, expected %x", keys.IV, created.IV)
	}
	if !keys.K.Schedule().Equal(created.K.Schedule()) {
		t.Errorf("K schedules differ")
	}

	var b1, b2 [twofish.BlockSize]byte
	keys.K.Encrypt(b1[:], keys.IV[:])
	created.K.Encrypt(b2[:], created.IV[:])
	if b1 != b2 {
		t.Errorf("K ciphers differ: %x != %x", b1, b2)
	}

	m1 := keys.NewHMAC()
	m1.Write([]byte("record"))
	m2 := created.NewHMAC()
	m2.Write([]byte("record"))
	if !bytes.Equal(m1.Sum(nil), m2.Sum(nil)) {
		t.Errorf("HMAC keys differ")
	}

	keys.Clear()
	var zero twofish.Schedule
	if !keys.K.Schedule().Equal(&zero) || keys.L != [KeySize]byte{} {
		t.Errorf("Clear did not zero the keys")
	}
}

func TestOpenWrongPassword(t *testing.T) {
	data, _ := newTestDB(t, "test")
	_, _, err := Open(bytes.NewReader(data), []byte("wrongpass"))
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestOpenInvalidTag(t *testing.T) {
	data, _ := newTestDB(t, "test")
	data[3] = '2'
	_, _, err := Open(bytes.NewReader(data), []byte("test"))
	if !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestOpenInvalidIterations(t *testing.T) {
	data, _ := newTestDB(t, "test")
	copy(data[len(Tag)+SaltSize:], []byte{0xff, 0x07, 0x00, 0x00})
	_, _, err := Open(bytes.NewReader(data), []byte("test"))
	if !errors.Is(err, ErrInvalidIterationCount) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestOpenTooSmall(t *testing.T) {
	data, _ := newTestDB(t, "test")
	for _, l := range []int{0, 4, PreambleSize - 1} {
		_, _, err := Open(bytes.NewReader(data[:l]), []byte("test"))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%d bytes: unexpected error %v", l, err)
		}
	}
}

func TestPreambleLayout(t *testing.T) {
	data, _ := newTestDB(t, "test")
	if string(data[:4]) != "PWS3" {
		t.Errorf("invalid tag %q", data[:4])
	}
	var p Preamble
	if err := p.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[PreambleSize-twofish.BlockSize:], p.IV[:]) {
		t.Errorf("IV at wrong offset: %s", hex.EncodeToString(p.IV[:]))
	}
	again, err := p.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, data) {
		t.Errorf("re-encoded preamble differs")
	}
}
