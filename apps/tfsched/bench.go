//
// bench.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/twofish"
	"github.com/markkurossi/twofish/env"
	"github.com/markkurossi/twofish/timing"
)

func benchmark(config *env.Config, count int) error {
	rand := config.GetRandom()
	keys := make([][]byte, count)
	for i := range keys {
		keys[i] = make([]byte, 16+8*(i%3))
		if _, err := io.ReadFull(rand, keys[i]); err != nil {
			return err
		}
	}
	defer func() {
		for _, key := range keys {
			clear(key)
		}
	}()

	t := timing.New()

	var sched twofish.Schedule
	for _, key := range keys {
		if err := sched.Derive(key); err != nil {
			return err
		}
	}
	t.Sample("Derive", count, timing.ByteSize(count*twofish.ScheduleSize))

	c := twofish.NewCipherFromSchedule(&sched)
	sched.Clear()
	defer c.Clear()

	var block [twofish.BlockSize]byte
	for i := 0; i < count; i++ {
		c.Encrypt(block[:], block[:])
	}
	t.Sample("Encrypt", count, timing.ByteSize(count*twofish.BlockSize))

	for i := 0; i < count; i++ {
		c.Decrypt(block[:], block[:])
	}
	t.Sample("Decrypt", count, timing.ByteSize(count*twofish.BlockSize))

	if block != [twofish.BlockSize]byte{} {
		return fmt.Errorf("decrypt did not invert encrypt: %x", block)
	}

	t.Print(os.Stdout)
	return nil
}
