//
// passphrase.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/markkurossi/twofish/pws3"
	"golang.org/x/crypto/argon2"
	"golang.org/x/term"
)

// Argon2id defaults for passphrase keys.
const (
	Argon2Time    = 3
	Argon2Memory  = 64 * 1024
	Argon2Threads = 4
	Argon2KeyLen  = 32
	SaltLen       = 16
)

// PassphraseEnvVar can hold the passphrase for non-interactive use.
const PassphraseEnvVar = "TFSCHED_PASSPHRASE"

func readPassword(prompt string) ([]byte, error) {
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		return []byte(env), nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal, set %s",
			PassphraseEnvVar)
	}
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(pw, "\r\n"), nil
}

func passphraseKey(saltHex string, time, memory uint32) ([]byte, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return nil, fmt.Errorf("invalid salt: %w", err)
	}
	if len(salt) < SaltLen {
		return nil, fmt.Errorf("salt too short: %d < %d", len(salt), SaltLen)
	}
	pw, err := readPassword("Enter passphrase: ")
	if err != nil {
		return nil, err
	}
	defer clear(pw)
	if len(pw) == 0 {
		return nil, errors.New("passphrase cannot be empty")
	}
	return argon2.IDKey(pw, salt, time, memory, Argon2Threads,
		Argon2KeyLen), nil
}

func verifyPWS3(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	pw, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	defer clear(pw)

	p, keys, err := pws3.Open(f, pw)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	defer keys.Clear()

	fmt.Printf("%s: password OK, %d iterations\n", file, p.Iterations)
	if verbose {
		fmt.Printf("IV: %x\n", keys.IV)
	}
	return nil
}
