//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package twofish implements the Twofish key schedule and a
// binding-stable container for it.
//
// The key schedule consists of 40 round subkeys and four fully keyed
// substitution tables of 256 words each. It is derived once per key
// and then reused for any number of block transforms:
//
//	sched, err := twofish.Derive(key)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sched.Clear()
//	block := twofish.NewCipherFromSchedule(sched)
//
// The serialized schedule is exactly ScheduleSize bytes and it never
// exceeds MaxScheduleBytes. The bound is shared with foreign-language
// bindings that allocate the schedule as an opaque buffer; every
// representation of the schedule in this module asserts it at compile
// time. The serialized form stores all words in little-endian byte
// order: the tables s[0]...s[3] followed by the round keys k[0]...k[39].
//
// A Schedule is immutable after derivation and it may be shared by
// concurrent readers. Clear, Derive and UnmarshalBinary modify the
// schedule and require exclusive ownership.
package twofish
