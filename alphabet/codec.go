// SPDX-License-Identifier: MIT

package alphabet

import "fmt"

// Codec converts between codes and ASCII letters of a single alphabet.
//
// A Codec is selected once, at a call boundary, from a runtime Kind; all of
// its methods then reduce to direct table lookups with no dispatch. Codec
// values are small and immutable; copy them freely. The zero Codec is not
// usable: obtain one from CodecOf, MustCodec or the predefined variables.
type Codec struct {
	t *table
}

// Predefined codecs for each alphabet.
var (
	DNACodec      = Codec{t: &tables[DNA]}
	DNANCodec     = Codec{t: &tables[DNAN]}
	DNAIUPACCodec = Codec{t: &tables[DNAIUPAC]}
	ProteinCodec  = Codec{t: &tables[Protein]}
)

// CodecOf returns the codec for k, or ErrUnknownKind.
func CodecOf(k Kind) (Codec, error) {
	if !k.Valid() {
		return Codec{}, fmt.Errorf("codec for %s: %w", k, ErrUnknownKind)
	}

	return Codec{t: &tables[k]}, nil
}

// MustCodec is like CodecOf but panics on an unknown kind.
func MustCodec(k Kind) Codec {
	c, err := CodecOf(k)
	if err != nil {
		panic(err)
	}

	return c
}

// Kind reports which alphabet c converts.
func (c Codec) Kind() Kind { return c.t.kind }

// Traits returns the bit width and symbol count of c's alphabet.
func (c Codec) Traits() Traits { return kindTraits[c.t.kind] }

// Letters returns the alphabet's letters in code order.
func (c Codec) Letters() string { return c.t.letters }

// Sentinel is the code FromChar yields for bytes outside the alphabet.
func (c Codec) Sentinel() uint8 { return c.t.sentinel }

// ToChar returns the letter for code.
//
// Precondition: code < SymbolCount. It is not checked; an out-of-range code
// returns an unspecified byte.
func (c Codec) ToChar(code uint8) byte {
	return c.t.toChar[code]
}

// FromChar returns the code for ch. Lowercase letters fold to uppercase;
// bytes outside the alphabet yield Sentinel().
func (c Codec) FromChar(ch byte) uint8 {
	return c.t.fromChar[ch]
}

// Valid reports whether ch is a letter of the alphabet in either case.
// Unlike FromChar it distinguishes a genuine sentinel letter from junk.
func (c Codec) Valid(ch byte) bool {
	return c.t.member[ch]
}

// ToCharFunc returns ToChar as a plain function value.
func (c Codec) ToCharFunc() func(uint8) byte {
	t := c.t

	return func(code uint8) byte { return t.toChar[code] }
}

// FromCharFunc returns FromChar as a plain function value.
func (c Codec) FromCharFunc() func(byte) uint8 {
	t := c.t

	return func(ch byte) uint8 { return t.fromChar[ch] }
}

// String implements fmt.Stringer.
func (c Codec) String() string {
	return "alphabet.Codec(" + c.t.kind.String() + ")"
}

// ToChar converts a single code of alphabet k. It dispatches on every call;
// for loops, select a Codec once instead. Unknown kinds yield '?'.
func ToChar(k Kind, code uint8) byte {
	if !k.Valid() {
		return unmappedChar
	}

	return tables[k].toChar[code]
}

// FromChar converts a single letter of alphabet k. It dispatches on every
// call; for loops, select a Codec once instead. Unknown kinds yield 0.
func FromChar(k Kind, ch byte) uint8 {
	if !k.Valid() {
		return 0
	}

	return tables[k].fromChar[ch]
}
