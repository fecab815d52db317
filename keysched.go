//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package twofish

import (
	"math/bits"
)

const (
	// NumRoundKeys is the number of 32-bit round subkeys: 8
	// whitening words and 2 words for each of the 16 rounds.
	NumRoundKeys = 40

	// NumSBoxes is the number of key-dependent substitution tables.
	NumSBoxes = 4

	// SBoxEntries is the number of words in each substitution table.
	SBoxEntries = 256

	rho = 0x01010101
)

// qOrder lists, for each MDS column, the permutations applied by the
// function h. The first four entries are the key stages from the
// 256-bit key stage inwards; the last entry is the final permutation
// before the MDS multiplication. Shorter keys skip the leading stages.
var qOrder = [4][5]int{
	{1, 1, 0, 0, 1},
	{0, 1, 1, 0, 0},
	{0, 0, 0, 1, 1},
	{1, 0, 1, 1, 0},
}

// keyWords returns the number of 64-bit words in a key of length
// keyLen bytes.
func keyWords(keyLen int) (int, error) {
	switch keyLen {
	case 16, 24, 32:
		return keyLen / 8, nil
	default:
		return 0, KeySizeError(keyLen)
	}
}

// Derive computes the key schedule for key. The key must be 16, 24,
// or 32 bytes long. Derive does not retain key.
func Derive(key []byte) (*Schedule, error) {
	s := new(Schedule)
	if err := s.Derive(key); err != nil {
		return nil, err
	}
	return s, nil
}

// Derive computes the key schedule for key into s. If the key length
// is invalid, Derive returns a KeySizeError and s is not modified.
func (s *Schedule) Derive(key []byte) error {
	n, err := keyWords(len(key))
	if err != nil {
		return err
	}

	// Key words for h, stage t uses the 64-bit key word n-1-t.
	var me, mo, sv [4][4]byte
	for t := 0; t < n; t++ {
		ofs := 8 * (n - 1 - t)
		copy(me[t][:], key[ofs:ofs+4])
		copy(mo[t][:], key[ofs+4:ofs+8])
	}

	// The S vector: S[i] = RS · key[8i:8i+8].
	for i := 0; i < n; i++ {
		for row := range rsMatrix {
			var v byte
			for col, r := range rsMatrix[row] {
				v ^= gfMult(key[8*i+col], r, rsPolynomial)
			}
			sv[i][row] = v
		}
	}

	for i := 0; i < NumRoundKeys/2; i++ {
		a := h(uint32(2*i)*rho, &me, n)
		b := bits.RotateLeft32(h(uint32(2*i+1)*rho, &mo, n), 8)

		s.k[2*i] = a + b
		s.k[2*i+1] = bits.RotateLeft32(a+2*b, 9)
	}

	for col := range s.s {
		for x := range s.s[col] {
			s.s[col][x] = hColumn(byte(x), col, &sv, n)
		}
	}

	me = [4][4]byte{}
	mo = [4][4]byte{}
	sv = [4][4]byte{}

	return nil
}

// h implements the function h of the Twofish paper (Section 4.3.2)
// with the word list l of n words.
func h(x uint32, l *[4][4]byte, n int) uint32 {
	var result uint32
	for col := 0; col < 4; col++ {
		result ^= hColumn(byte(x>>(8*col)), col, l, n)
	}
	return result
}

// hColumn computes the contribution of the input byte x in column col
// to the output of h.
func hColumn(x byte, col int, l *[4][4]byte, n int) uint32 {
	order := qOrder[col][4-n:]

	y := x
	for t := 0; t < n; t++ {
		y = q[order[t]][y] ^ l[t][col]
	}
	return mds[col][q[order[n]][y]]
}
