// SPDX-License-Identifier: MIT

package alphabet

import "github.com/katalvlaran/lvbio/seqview"

// ToString writes the letters of the first n codes of src into dst[0:n].
// No terminator is appended.
//
// The caller guarantees len(dst) >= n and that src holds at least n codes.
// Complexity: O(n), no allocation.
func (c Codec) ToString(dst []byte, src seqview.Indexer[uint8], n int) {
	t := c.t
	if s, ok := src.(seqview.Slice[uint8]); ok {
		for i, code := range s[:n] {
			dst[i] = t.toChar[code]
		}

		return
	}
	for i := 0; i < n; i++ {
		dst[i] = t.toChar[src.At(i)]
	}
}

// ToStringRange writes the letters of src[begin:end) into dst[0:end-begin].
// An empty or inverted range writes nothing.
func (c Codec) ToStringRange(dst []byte, src seqview.Indexer[uint8], begin, end int) {
	t := c.t
	for i := begin; i < end; i++ {
		dst[i-begin] = t.toChar[src.At(i)]
	}
}

// FromString writes the codes of src[begin:end) into dst positions
// 0..end-begin-1. An empty or inverted range writes nothing.
//
// dst may be any Storer: a plain slice, or a packed container that sizes
// its words with BitsPerSymbol.
func (c Codec) FromString(dst seqview.Storer[uint8], src []byte, begin, end int) {
	t := c.t
	if d, ok := dst.(seqview.Slice[uint8]); ok {
		for i, ch := range src[begin:max(begin, end)] {
			d[i] = t.fromChar[ch]
		}

		return
	}
	for i := begin; i < end; i++ {
		dst.Set(i-begin, t.fromChar[src[i]])
	}
}

// FromCString decodes src up to, not including, the first NUL byte, or to
// the end of src if it has none. It returns the number of codes written,
// which equals the terminator's offset.
func (c Codec) FromCString(dst seqview.Storer[uint8], src []byte) int {
	t := c.t
	n := 0
	for ; n < len(src) && src[n] != 0; n++ {
		dst.Set(n, t.fromChar[src[n]])
	}

	return n
}

// Encode writes the letters of src into dst and returns the number written,
// min(len(dst), len(src)).
func (c Codec) Encode(dst []byte, src []uint8) int {
	n := min(len(dst), len(src))
	t := c.t
	for i, code := range src[:n] {
		dst[i] = t.toChar[code]
	}

	return n
}

// Decode writes the codes of src into dst and returns the number written,
// min(len(dst), len(src)).
func (c Codec) Decode(dst []uint8, src []byte) int {
	n := min(len(dst), len(src))
	t := c.t
	for i, ch := range src[:n] {
		dst[i] = t.fromChar[ch]
	}

	return n
}

// EncodeString returns the letters of src as a new string.
func (c Codec) EncodeString(src []uint8) string {
	buf := make([]byte, len(src))
	c.Encode(buf, src)

	return string(buf)
}

// DecodeString returns the codes of s in a newly allocated slice.
func (c Codec) DecodeString(s string) []uint8 {
	out := make([]uint8, len(s))
	t := c.t
	for i := 0; i < len(s); i++ {
		out[i] = t.fromChar[s[i]]
	}

	return out
}
