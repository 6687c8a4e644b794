// SPDX-License-Identifier: MIT
// Package alphabet_test contains shared fixtures for the alphabet tests.
//
// packedSeq stands in for a packed bit-level storage collaborator: it keeps
// fixed-width codes inside uint32 words sized with BitsPerSymbol, and
// implements seqview.Indexer and seqview.Storer over them.

package alphabet_test

import "github.com/katalvlaran/lvbio/alphabet"

const wordBits = 32

type packedSeq struct {
	width uint32
	per   int
	words []uint32
}

func newPackedSeq(k alphabet.Kind, n int) *packedSeq {
	per := alphabet.SymbolsPerWord(k, wordBits)

	return &packedSeq{
		width: alphabet.BitsPerSymbol(k),
		per:   per,
		words: make([]uint32, (n+per-1)/per),
	}
}

func (p *packedSeq) At(i int) uint8 {
	shift := uint32(i%p.per) * p.width
	mask := uint32(1)<<p.width - 1

	return uint8(p.words[i/p.per] >> shift & mask)
}

func (p *packedSeq) Set(i int, v uint8) {
	shift := uint32(i%p.per) * p.width
	mask := uint32(1)<<p.width - 1
	w := &p.words[i/p.per]
	*w = *w&^(mask<<shift) | (uint32(v)&mask)<<shift
}

// allCodes returns every valid code of k in order.
func allCodes(k alphabet.Kind) []uint8 {
	tr, _ := alphabet.TraitsOf(k)
	out := make([]uint8, tr.SymbolCount)
	for i := range out {
		out[i] = uint8(i)
	}

	return out
}

// cyclicCodes returns n codes cycling through the alphabet of k.
func cyclicCodes(k alphabet.Kind, n int) []uint8 {
	tr, _ := alphabet.TraitsOf(k)
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(uint32(i*7+3) % tr.SymbolCount)
	}

	return out
}
