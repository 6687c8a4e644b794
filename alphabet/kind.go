// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"strconv"
	"strings"
)

var kindNames = [...]string{
	DNA:      "DNA",
	DNAN:     "DNA_N",
	DNAIUPAC: "DNA_IUPAC",
	Protein:  "PROTEIN",
}

var kindTraits = [...]Traits{
	DNA:      {SymbolSize: DNASymbolSize, SymbolCount: DNASymbolCount},
	DNAN:     {SymbolSize: DNANSymbolSize, SymbolCount: DNANSymbolCount},
	DNAIUPAC: {SymbolSize: DNAIUPACSymbolSize, SymbolCount: DNAIUPACSymbolCount},
	Protein:  {SymbolSize: ProteinSymbolSize, SymbolCount: ProteinSymbolCount},
}

// Kinds returns all supported alphabets in identifier order.
func Kinds() []Kind {
	return []Kind{DNA, DNAN, DNAIUPAC, Protein}
}

// Valid reports whether k is one of the four supported alphabets.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// String returns the canonical upper-case name, e.g. "DNA_IUPAC".
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// MarshalText encodes k by its canonical name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshal %d: %w", uint8(k), ErrUnknownKind)
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a name accepted by ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// ParseKind resolves an alphabet name, as found in a file header or a
// configuration value. Matching ignores case, and '-' is treated as '_',
// so "dna-iupac" and "DNA_IUPAC" are equivalent.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for k, n := range kindNames {
		if n == norm {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("parse %q: %w", name, ErrUnknownKind)
}

// TraitsOf returns the traits of k, or ErrUnknownKind.
func TraitsOf(k Kind) (Traits, error) {
	if !k.Valid() {
		return Traits{}, ErrUnknownKind
	}

	return kindTraits[k], nil
}

// BitsPerSymbol is the runtime counterpart of the SymbolSize constants.
// It never fails: an unknown kind reports DefaultSymbolSize.
func BitsPerSymbol(k Kind) uint32 {
	switch k {
	case DNA:
		return DNASymbolSize
	case DNAN:
		return DNANSymbolSize
	case DNAIUPAC:
		return DNAIUPACSymbolSize
	case Protein:
		return ProteinSymbolSize
	}

	return DefaultSymbolSize
}

// SymbolsPerWord reports how many codes of alphabet k fit in a storage word
// of wordBits bits. Non-positive widths yield 0.
func SymbolsPerWord(k Kind, wordBits int) int {
	if wordBits <= 0 {
		return 0
	}

	return wordBits / int(BitsPerSymbol(k))
}
