// SPDX-License-Identifier: MIT

// Package alphabet encodes biological sequence symbols: it fixes a small
// closed set of alphabets, the bit width each one needs per symbol, and the
// conversion between compact numeric codes and their ASCII letters.
//
// 🚀 Alphabets:
//
//	Kind       Width  Count  Letters (code order)
//	DNA        2      4      A C G T
//	DNAN       4      5      A C G T N
//	DNAIUPAC   4      16     = A C M G R S V T W Y H K D B N
//	Protein    8      24     A C D E F G H I K L M N O P Q R S T V W Y B Z X
//
// Kind values 0..3 are stable and may be stored in files and headers.
//
// ✨ Three granularities:
//   - scalar: Codec.ToChar / Codec.FromChar, one table lookup each
//   - bulk:   Codec.ToString, ToStringRange, FromString, FromCString, Encode, Decode
//   - lazy:   Codec.AsChars / Codec.AsSymbols, zero-copy seqview.Mapped views
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvbio/alphabet"
//
//	// choose the alphabet once, outside the hot loop
//	c, err := alphabet.CodecOf(kind)
//	if err != nil {
//	  // handle ErrUnknownKind
//	}
//	codes := make([]uint8, len(line))
//	c.Decode(codes, line)
//
// Decoding policy:
//
//	FromChar is total over all 256 byte values. Lowercase letters fold to the
//	code of their uppercase form. Any byte outside the alphabet folds to the
//	alphabet's sentinel code (Codec.Sentinel):
//	  DNA → 0 ('A'), DNAN → 4 ('N'), DNAIUPAC → 15 ('N'), Protein → 23 ('X').
//
// Encoding policy:
//
//	ToChar requires code < SymbolCount and does not check it. Out-of-range
//	codes never panic but produce an unspecified byte.
//
// Concurrency:
//
//	All lookup tables are built once at package init and never written again.
//	Every function here is pure and safe for concurrent use; concurrent bulk
//	writers must target disjoint destination ranges.
package alphabet
