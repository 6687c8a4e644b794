// SPDX-License-Identifier: MIT

package alphabet_test

import (
	"testing"

	"github.com/katalvlaran/lvbio/alphabet"
	"github.com/katalvlaran/lvbio/seqview"
	"github.com/stretchr/testify/assert"
)

// TestAsChars_MatchesScalar checks view.At(i) == ToChar(src[i]) for every
// alphabet, over slice and packed sources.
func TestAsChars_MatchesScalar(t *testing.T) {
	for _, k := range alphabet.Kinds() {
		c := alphabet.MustCodec(k)
		codes := cyclicCodes(k, 100)

		v := c.AsChars(seqview.Slice[uint8](codes))
		assert.Equal(t, len(codes), v.Len())
		for i, code := range codes {
			assert.Equal(t, c.ToChar(code), v.At(i), "%s pos %d", k, i)
		}

		packed := newPackedSeq(k, len(codes))
		for i, code := range codes {
			packed.Set(i, code)
		}
		pv := c.AsChars(packed)
		assert.Equal(t, -1, pv.Len(), "packed source reports no extent")
		for i, code := range codes {
			assert.Equal(t, c.ToChar(code), pv.At(i), "%s packed pos %d", k, i)
		}
	}
}

// TestAsSymbols_MatchesScalar is the symmetric check for decoding views.
func TestAsSymbols_MatchesScalar(t *testing.T) {
	text := []byte("ACGTNacgtn=RYKMX*-")
	for _, k := range alphabet.Kinds() {
		c := alphabet.MustCodec(k)
		v := c.AsSymbols(seqview.Slice[byte](text))
		for i, ch := range text {
			assert.Equal(t, c.FromChar(ch), v.At(i), "%s pos %d", k, i)
		}
	}
}

// TestLazy_RestartableCursors shows independent cursors over one source and
// a full round trip through two stacked views.
func TestLazy_RestartableCursors(t *testing.T) {
	c := alphabet.DNACodec
	src := seqview.Slice[uint8]{0, 1, 2, 3, 0}
	chars := c.AsChars(src)

	a, b := chars, chars.Shift(2)
	assert.Equal(t, byte('A'), a.At(0))
	assert.Equal(t, byte('G'), b.At(0))
	assert.Equal(t, byte('A'), a.At(0), "reading b must not move a")

	var s []byte
	for ch := range chars.Values(chars.Len()) {
		s = append(s, ch)
	}
	assert.Equal(t, "ACGTA", string(s))

	// symbols -> chars -> symbols without materializing anything in between
	back := c.AsSymbols(chars)
	assert.Equal(t, []uint8(src), seqview.Collect[uint8](back, len(src)))
}

// TestLazy_NoCopy verifies the view observes later writes to its source.
func TestLazy_NoCopy(t *testing.T) {
	src := seqview.Slice[uint8]{0, 0}
	v := alphabet.DNACodec.AsChars(src)
	src.Set(1, 3)
	assert.Equal(t, byte('T'), v.At(1))
}
