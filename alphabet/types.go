// SPDX-License-Identifier: MIT

package alphabet

import "errors"

// Kind identifies one of the supported alphabets. The numeric values are
// stable and part of the on-disk contract of any format that stores them.
type Kind uint8

const (
	// DNA is the 4-letter alphabet { A,C,G,T }.
	DNA Kind = 0

	// DNAN is the 5-letter alphabet { A,C,G,T,N }.
	DNAN Kind = 1

	// DNAIUPAC is the 16-letter IUPAC ambiguity alphabet { =,A,C,M,G,R,S,V,T,W,Y,H,K,D,B,N }.
	DNAIUPAC Kind = 2

	// Protein is the 24-letter amino-acid alphabet, ambiguity codes B,Z,X included.
	Protein Kind = 3
)

// Compile-time traits, usable in constant expressions (array sizes, shifts).
const (
	DNASymbolSize  = 2
	DNASymbolCount = 4

	DNANSymbolSize  = 4
	DNANSymbolCount = 5

	DNAIUPACSymbolSize  = 4
	DNAIUPACSymbolCount = 16

	ProteinSymbolSize  = 8
	ProteinSymbolCount = 24
)

// DefaultSymbolSize is the width BitsPerSymbol reports for an unknown Kind.
const DefaultSymbolSize = 8

// Traits describes the storage shape of an alphabet.
type Traits struct {
	// SymbolSize is the number of bits needed to store one code.
	SymbolSize uint32

	// SymbolCount is the number of distinct codes; valid codes are [0, SymbolCount).
	SymbolCount uint32
}

// Sentinel errors.
var (
	// ErrUnknownKind is returned when a Kind value or name is not one of the four alphabets.
	ErrUnknownKind = errors.New("alphabet: unknown alphabet kind")
)
