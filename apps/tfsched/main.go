//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/twofish"
	"github.com/markkurossi/twofish/env"
)

var (
	verbose = false
)

func main() {
	keyHex := flag.String("key", "", "Twofish key in hex (16, 24, or 32 bytes)")
	passphrase := flag.Bool("passphrase", false,
		"derive a 256-bit key from a passphrase")
	saltHex := flag.String("salt", "", "passphrase salt in hex")
	argonTime := flag.Uint("argon2-time", Argon2Time, "Argon2id iterations")
	argonMemory := flag.Uint("argon2-memory", Argon2Memory,
		"Argon2id memory in kB")
	dump := flag.Bool("dump", false, "dump the key schedule")
	layout := flag.Bool("layout", false, "print the schedule layout")
	out := flag.String("o", "", "write the serialized schedule to file")
	bench := flag.Int("bench", 0, "benchmark derivation with random keys")
	pwsFile := flag.String("pws3", "", "verify Password Safe V3 password")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)
	verbose = *fVerbose

	config := &env.Config{}

	if *layout {
		printLayout(os.Stdout)
	}
	if *bench > 0 {
		if err := benchmark(config, *bench); err != nil {
			log.Fatal(err)
		}
	}
	if len(*pwsFile) > 0 {
		if err := verifyPWS3(*pwsFile); err != nil {
			log.Fatal(err)
		}
	}

	var key []byte
	var err error
	if *passphrase {
		key, err = passphraseKey(*saltHex, uint32(*argonTime),
			uint32(*argonMemory))
	} else if len(*keyHex) > 0 {
		key, err = hex.DecodeString(*keyHex)
	} else {
		if !*layout && *bench == 0 && len(*pwsFile) == 0 {
			fmt.Printf("no key specified\n")
			os.Exit(1)
		}
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	defer clear(key)

	sched, err := twofish.Derive(key)
	if err != nil {
		var kse twofish.KeySizeError
		if errors.As(err, &kse) {
			log.Fatalf("invalid key: %d bytes, expected 16, 24, or 32",
				int(kse))
		}
		log.Fatal(err)
	}
	defer sched.Clear()

	if *dump {
		dumpSchedule(os.Stdout, sched)
	}
	if len(*out) > 0 {
		if err := writeSchedule(*out, sched); err != nil {
			log.Fatal(err)
		}
	}
}

func writeSchedule(file string, sched *twofish.Schedule) error {
	data, err := sched.MarshalBinary()
	if err != nil {
		return err
	}
	defer clear(data)

	if err := os.WriteFile(file, data, 0600); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("wrote %d bytes to %s\n", len(data), file)
	}
	return nil
}
