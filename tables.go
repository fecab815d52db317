//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//
// Fixed permutations and matrices of the Twofish paper:
//  - https://www.schneier.com/wp-content/uploads/2016/02/paper-twofish-paper.pdf

package twofish

const (
	mdsPolynomial = 0x169 // x^8 + x^6 + x^5 + x^3 + 1
	rsPolynomial  = 0x14d // x^8 + x^6 + x^3 + x^2 + 1
)

// qt holds the 4-bit t-tables t0...t3 of the permutations q0 and q1
// (Section 4.3.5).
var qt = [2][4][16]byte{
	{
		{0x8, 0x1, 0x7, 0xD, 0x6, 0xF, 0x3, 0x2, 0x0, 0xB, 0x5, 0x9, 0xE, 0xC, 0xA, 0x4},
		{0xE, 0xC, 0xB, 0x8, 0x1, 0x2, 0x3, 0x5, 0xF, 0x4, 0xA, 0x6, 0x7, 0x0, 0x9, 0xD},
		{0xB, 0xA, 0x5, 0xE, 0x6, 0xD, 0x9, 0x0, 0xC, 0x8, 0xF, 0x3, 0x2, 0x4, 0x7, 0x1},
		{0xD, 0x7, 0xF, 0x4, 0x1, 0x2, 0x6, 0xE, 0x9, 0xB, 0x3, 0x0, 0x8, 0x5, 0xC, 0xA},
	},
	{
		{0x2, 0x8, 0xB, 0xD, 0xF, 0x7, 0x6, 0xE, 0x3, 0x1, 0x9, 0x4, 0x0, 0xA, 0xC, 0x5},
		{0x1, 0xE, 0x2, 0xB, 0x4, 0xC, 0x3, 0x7, 0x6, 0xD, 0xA, 0x5, 0xF, 0x9, 0x0, 0x8},
		{0x4, 0xC, 0x7, 0x5, 0x1, 0x6, 0x9, 0xA, 0x0, 0xE, 0xD, 0x8, 0x2, 0xB, 0x3, 0xF},
		{0xB, 0x9, 0x5, 0x1, 0xC, 0x3, 0xD, 0xE, 0x6, 0x4, 0x7, 0xF, 0x2, 0x0, 0x8, 0xA},
	},
}

// The MDS matrix (Section 4.2).
var mdsMatrix = [4][4]byte{
	{0x01, 0xEF, 0x5B, 0x5B},
	{0x5B, 0xEF, 0xEF, 0x01},
	{0xEF, 0x5B, 0x01, 0xEF},
	{0xEF, 0x01, 0xEF, 0x5B},
}

// The RS matrix (Section 4.3).
var rsMatrix = [4][8]byte{
	{0x01, 0xA4, 0x55, 0x87, 0x5A, 0x58, 0xDB, 0x9E},
	{0xA4, 0x56, 0x82, 0xF3, 0x1E, 0xC6, 0x68, 0xE5},
	{0x02, 0xA1, 0xFC, 0xC1, 0x47, 0xAE, 0x3D, 0x19},
	{0xA4, 0x55, 0x87, 0x5A, 0x58, 0xDB, 0x9E, 0x03},
}

var (
	// q holds the byte permutations q0 and q1.
	q = [2][256]byte{makeQ(&qt[0]), makeQ(&qt[1])}

	// mds[col][x] is column col of the MDS matrix multiplied by x,
	// packed as a little-endian word.
	mds = makeMDS()
)

func ror4(x byte) byte {
	return ((x >> 1) | (x << 3)) & 0xf
}

func makeQ(t *[4][16]byte) [256]byte {
	var result [256]byte
	for i := range result {
		a := byte(i) >> 4
		b := byte(i) & 0xf

		a, b = a^b, (a^ror4(b)^(a<<3))&0xf
		a, b = t[0][a], t[1][b]
		a, b = a^b, (a^ror4(b)^(a<<3))&0xf
		a, b = t[2][a], t[3][b]

		result[i] = b<<4 | a
	}
	return result
}

func makeMDS() [4][256]uint32 {
	var result [4][256]uint32
	for col := range result {
		for x := range result[col] {
			var v uint32
			for row := 0; row < 4; row++ {
				v |= uint32(gfMult(byte(x), mdsMatrix[row][col], mdsPolynomial)) <<
					(8 * row)
			}
			result[col][x] = v
		}
	}
	return result
}

// gfMult returns a·b in GF(2^8) modulo the polynomial p.
func gfMult(a, b byte, p uint16) byte {
	var result byte
	aa := uint16(a)
	for ; b != 0; b >>= 1 {
		if b&1 != 0 {
			result ^= byte(aa)
		}
		aa <<= 1
		if aa&0x100 != 0 {
			aa ^= p
		}
	}
	return result
}
