//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package capi exports the Twofish key schedule to C callers. The
// caller allocates twofish_schedule_size() bytes, which is never more
// than TWOFISH_MAX_SCHEDULE_BYTES, and treats the buffer as an opaque
// schedule:
//
//	unsigned char sched[TWOFISH_MAX_SCHEDULE_BYTES];
//	if (twofish_derive(key, 32, sched, sizeof(sched)) != 0) {
//		abort();
//	}
//	...
//	twofish_clear(sched, sizeof(sched));
//
// The buffer holds the serialized schedule of the twofish package.
// Both the C and the Go side assert the size contract at compile
// time. The package requires cgo.
package capi
